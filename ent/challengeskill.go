// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/challengeskill"
)

// ChallengeSkill is the model entity for the ChallengeSkill schema.
type ChallengeSkill struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ChallengeID holds the value of the "challenge_id" field.
	ChallengeID string `json:"challenge_id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID int `json:"skill_id,omitempty"`
	// Relevance holds the value of the "relevance" field.
	Relevance    float64 `json:"relevance,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChallengeSkill) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case challengeskill.FieldRelevance:
			values[i] = new(sql.NullFloat64)
		case challengeskill.FieldID, challengeskill.FieldSkillID:
			values[i] = new(sql.NullInt64)
		case challengeskill.FieldChallengeID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChallengeSkill fields.
func (_m *ChallengeSkill) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case challengeskill.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case challengeskill.FieldChallengeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field challenge_id", values[i])
			} else if value.Valid {
				_m.ChallengeID = value.String
			}
		case challengeskill.FieldSkillID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = int(value.Int64)
			}
		case challengeskill.FieldRelevance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field relevance", values[i])
			} else if value.Valid {
				_m.Relevance = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChallengeSkill.
// This includes values selected through modifiers, order, etc.
func (_m *ChallengeSkill) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ChallengeSkill.
// Note that you need to call ChallengeSkill.Unwrap() before calling this method if this ChallengeSkill
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChallengeSkill) Update() *ChallengeSkillUpdateOne {
	return NewChallengeSkillClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChallengeSkill entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChallengeSkill) Unwrap() *ChallengeSkill {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChallengeSkill is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChallengeSkill) String() string {
	var builder strings.Builder
	builder.WriteString("ChallengeSkill(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("challenge_id=")
	builder.WriteString(_m.ChallengeID)
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkillID))
	builder.WriteString(", ")
	builder.WriteString("relevance=")
	builder.WriteString(fmt.Sprintf("%v", _m.Relevance))
	builder.WriteByte(')')
	return builder.String()
}

// ChallengeSkills is a parsable slice of ChallengeSkill.
type ChallengeSkills []*ChallengeSkill
