package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Language is a supported programming language. The catalog is seeded
// once at initialization with insert-if-absent semantics.
type Language struct {
	ent.Schema
}

func (Language) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique(),
	}
}
