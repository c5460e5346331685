package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// User is a registered learner account.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Comment("UUID assigned at registration"),
		field.String("username").
			NotEmpty().
			Unique(),
		field.String("password_hash").
			NotEmpty().
			Sensitive(),
		field.String("email").
			Optional().
			Unique(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_login").
			Optional(),
	}
}
