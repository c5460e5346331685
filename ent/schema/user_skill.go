package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserSkill is the stored proficiency estimate for one (user, skill)
// pair. Created on the first attempt touching the skill, updated in
// place by the moving-average rule, never deleted. Proficiency is not
// clamped to [0,1].
type UserSkill struct {
	ent.Schema
}

func (UserSkill) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.Int("skill_id"),
		field.Float("proficiency"),
		field.Time("last_updated").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (UserSkill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_id").
			Unique(),
		index.Fields("user_id", "proficiency"),
	}
}
