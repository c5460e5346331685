package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt is one scored submission of code against a challenge.
// Immutable once written except for the successful flag, which
// FinalizeIfPassing may set after scoring.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Comment("UUID assigned at insert"),
		field.String("user_id").
			NotEmpty(),
		field.String("challenge_id").
			NotEmpty(),
		field.Text("code"),
		field.Text("feedback"),
		field.Float("score").
			Optional().
			Nillable().
			Comment("Similarity score in [0,1]; nil when scoring was skipped"),
		field.Int("time_spent").
			Default(0).
			Comment("Elapsed seconds"),
		field.Int("attempt_number").
			Min(1).
			Comment("1-based per (user, challenge), derived from a count query"),
		field.Bool("successful").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "challenge_id"),
		index.Fields("user_id", "created_at"),
	}
}
