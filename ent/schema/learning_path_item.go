package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningPathItem is ordered membership of a challenge in a path.
type LearningPathItem struct {
	ent.Schema
}

func (LearningPathItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("path_id").
			NotEmpty(),
		field.String("challenge_id").
			NotEmpty(),
		field.Int("position").
			Min(0),
	}
}

func (LearningPathItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("path_id", "challenge_id").
			Unique(),
		index.Fields("path_id", "position"),
	}
}
