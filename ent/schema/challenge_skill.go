package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChallengeSkill maps a challenge to a skill with an oracle-estimated
// relevance weight in [0,1]. At most one row per (challenge, skill);
// re-insertion replaces the relevance.
type ChallengeSkill struct {
	ent.Schema
}

func (ChallengeSkill) Fields() []ent.Field {
	return []ent.Field{
		field.String("challenge_id").
			NotEmpty(),
		field.Int("skill_id"),
		field.Float("relevance"),
	}
}

func (ChallengeSkill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("challenge_id", "skill_id").
			Unique(),
		index.Fields("skill_id"),
	}
}
