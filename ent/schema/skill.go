package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Skill is a programming skill or concept tracked per user. Skills come
// from the seeded default catalog or are created lazily (auto_detected
// category) the first time the oracle names a skill we have not seen.
// The name is the de-duplication key; phrasing variance from the oracle
// can grow near-duplicates, which is accepted.
type Skill struct {
	ent.Schema
}

func (Skill) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique(),
		field.String("category").
			NotEmpty(),
	}
}
