// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/userskill"
)

// UserSkill is the model entity for the UserSkill schema.
type UserSkill struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID int `json:"skill_id,omitempty"`
	// Proficiency holds the value of the "proficiency" field.
	Proficiency float64 `json:"proficiency,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated  time.Time `json:"last_updated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserSkill) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userskill.FieldProficiency:
			values[i] = new(sql.NullFloat64)
		case userskill.FieldID, userskill.FieldSkillID:
			values[i] = new(sql.NullInt64)
		case userskill.FieldUserID:
			values[i] = new(sql.NullString)
		case userskill.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserSkill fields.
func (_m *UserSkill) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userskill.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case userskill.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case userskill.FieldSkillID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = int(value.Int64)
			}
		case userskill.FieldProficiency:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field proficiency", values[i])
			} else if value.Valid {
				_m.Proficiency = value.Float64
			}
		case userskill.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				_m.LastUpdated = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserSkill.
// This includes values selected through modifiers, order, etc.
func (_m *UserSkill) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserSkill.
// Note that you need to call UserSkill.Unwrap() before calling this method if this UserSkill
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserSkill) Update() *UserSkillUpdateOne {
	return NewUserSkillClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserSkill entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserSkill) Unwrap() *UserSkill {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserSkill is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserSkill) String() string {
	var builder strings.Builder
	builder.WriteString("UserSkill(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkillID))
	builder.WriteString(", ")
	builder.WriteString("proficiency=")
	builder.WriteString(fmt.Sprintf("%v", _m.Proficiency))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserSkills is a parsable slice of UserSkill.
type UserSkills []*UserSkill
