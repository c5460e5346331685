package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningPath is a named, ordered sequence of challenges targeting a
// skill set. Looked up by (title, language) on create.
type LearningPath struct {
	ent.Schema
}

func (LearningPath) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Comment("UUID assigned at creation"),
		field.String("title").
			NotEmpty(),
		field.Text("description"),
		field.Int("difficulty").
			Default(2),
		field.Int("lang_id"),
		field.Text("ordering").
			Default("[]").
			Comment("Legacy ordering metadata; position on the items is authoritative"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (LearningPath) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("title", "lang_id"),
	}
}
