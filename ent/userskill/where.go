// Code generated by ent, DO NOT EDIT.

package userskill

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldEQ(FieldUserID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v int) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldEQ(FieldSkillID, v))
}

// Proficiency applies equality check predicate on the "proficiency" field. It's identical to ProficiencyEQ.
func Proficiency(v float64) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldEQ(FieldProficiency, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldEQ(FieldLastUpdated, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldContainsFold(FieldUserID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v int) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v int) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...int) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...int) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v int) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v int) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v int) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v int) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldLTE(FieldSkillID, v))
}

// ProficiencyEQ applies the EQ predicate on the "proficiency" field.
func ProficiencyEQ(v float64) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldEQ(FieldProficiency, v))
}

// ProficiencyNEQ applies the NEQ predicate on the "proficiency" field.
func ProficiencyNEQ(v float64) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldNEQ(FieldProficiency, v))
}

// ProficiencyIn applies the In predicate on the "proficiency" field.
func ProficiencyIn(vs ...float64) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldIn(FieldProficiency, vs...))
}

// ProficiencyNotIn applies the NotIn predicate on the "proficiency" field.
func ProficiencyNotIn(vs ...float64) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldNotIn(FieldProficiency, vs...))
}

// ProficiencyGT applies the GT predicate on the "proficiency" field.
func ProficiencyGT(v float64) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldGT(FieldProficiency, v))
}

// ProficiencyGTE applies the GTE predicate on the "proficiency" field.
func ProficiencyGTE(v float64) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldGTE(FieldProficiency, v))
}

// ProficiencyLT applies the LT predicate on the "proficiency" field.
func ProficiencyLT(v float64) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldLT(FieldProficiency, v))
}

// ProficiencyLTE applies the LTE predicate on the "proficiency" field.
func ProficiencyLTE(v float64) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldLTE(FieldProficiency, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.UserSkill {
	return predicate.UserSkill(sql.FieldLTE(FieldLastUpdated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserSkill) predicate.UserSkill {
	return predicate.UserSkill(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserSkill) predicate.UserSkill {
	return predicate.UserSkill(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserSkill) predicate.UserSkill {
	return predicate.UserSkill(sql.NotPredicates(p))
}
