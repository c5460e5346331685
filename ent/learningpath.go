// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/learningpath"
)

// LearningPath is the model entity for the LearningPath schema.
type LearningPath struct {
	config `json:"-"`
	// ID of the ent.
	// UUID assigned at creation
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty int `json:"difficulty,omitempty"`
	// LangID holds the value of the "lang_id" field.
	LangID int `json:"lang_id,omitempty"`
	// Legacy ordering metadata; position on the items is authoritative
	Ordering string `json:"ordering,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearningPath) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learningpath.FieldDifficulty, learningpath.FieldLangID:
			values[i] = new(sql.NullInt64)
		case learningpath.FieldID, learningpath.FieldTitle, learningpath.FieldDescription, learningpath.FieldOrdering:
			values[i] = new(sql.NullString)
		case learningpath.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearningPath fields.
func (_m *LearningPath) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learningpath.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case learningpath.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case learningpath.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case learningpath.FieldDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = int(value.Int64)
			}
		case learningpath.FieldLangID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lang_id", values[i])
			} else if value.Valid {
				_m.LangID = int(value.Int64)
			}
		case learningpath.FieldOrdering:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ordering", values[i])
			} else if value.Valid {
				_m.Ordering = value.String
			}
		case learningpath.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearningPath.
// This includes values selected through modifiers, order, etc.
func (_m *LearningPath) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearningPath.
// Note that you need to call LearningPath.Unwrap() before calling this method if this LearningPath
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearningPath) Update() *LearningPathUpdateOne {
	return NewLearningPathClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearningPath entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearningPath) Unwrap() *LearningPath {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearningPath is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearningPath) String() string {
	var builder strings.Builder
	builder.WriteString("LearningPath(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("lang_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LangID))
	builder.WriteString(", ")
	builder.WriteString("ordering=")
	builder.WriteString(_m.Ordering)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearningPaths is a parsable slice of LearningPath.
type LearningPaths []*LearningPath
