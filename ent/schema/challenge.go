package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Challenge is a generated coding challenge. The solution field is
// filled lazily the first time scoring needs it and never regenerated.
type Challenge struct {
	ent.Schema
}

func (Challenge) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Comment("UUID assigned at creation"),
		field.String("title").
			NotEmpty(),
		field.Text("description").
			NotEmpty(),
		field.Text("enhanced_prompt"),
		field.Int("difficulty").
			Min(1).
			Max(5).
			Default(2),
		field.Int("lang_id"),
		field.Text("solution").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Challenge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lang_id"),
		index.Fields("difficulty"),
	}
}
