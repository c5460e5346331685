// Code generated by ent, DO NOT EDIT.

package challengeskill

import (
	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldLTE(FieldID, id))
}

// ChallengeID applies equality check predicate on the "challenge_id" field. It's identical to ChallengeIDEQ.
func ChallengeID(v string) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldEQ(FieldChallengeID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v int) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldEQ(FieldSkillID, v))
}

// Relevance applies equality check predicate on the "relevance" field. It's identical to RelevanceEQ.
func Relevance(v float64) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldEQ(FieldRelevance, v))
}

// ChallengeIDEQ applies the EQ predicate on the "challenge_id" field.
func ChallengeIDEQ(v string) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldEQ(FieldChallengeID, v))
}

// ChallengeIDNEQ applies the NEQ predicate on the "challenge_id" field.
func ChallengeIDNEQ(v string) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldNEQ(FieldChallengeID, v))
}

// ChallengeIDIn applies the In predicate on the "challenge_id" field.
func ChallengeIDIn(vs ...string) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldIn(FieldChallengeID, vs...))
}

// ChallengeIDNotIn applies the NotIn predicate on the "challenge_id" field.
func ChallengeIDNotIn(vs ...string) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldNotIn(FieldChallengeID, vs...))
}

// ChallengeIDGT applies the GT predicate on the "challenge_id" field.
func ChallengeIDGT(v string) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldGT(FieldChallengeID, v))
}

// ChallengeIDGTE applies the GTE predicate on the "challenge_id" field.
func ChallengeIDGTE(v string) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldGTE(FieldChallengeID, v))
}

// ChallengeIDLT applies the LT predicate on the "challenge_id" field.
func ChallengeIDLT(v string) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldLT(FieldChallengeID, v))
}

// ChallengeIDLTE applies the LTE predicate on the "challenge_id" field.
func ChallengeIDLTE(v string) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldLTE(FieldChallengeID, v))
}

// ChallengeIDContains applies the Contains predicate on the "challenge_id" field.
func ChallengeIDContains(v string) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldContains(FieldChallengeID, v))
}

// ChallengeIDHasPrefix applies the HasPrefix predicate on the "challenge_id" field.
func ChallengeIDHasPrefix(v string) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldHasPrefix(FieldChallengeID, v))
}

// ChallengeIDHasSuffix applies the HasSuffix predicate on the "challenge_id" field.
func ChallengeIDHasSuffix(v string) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldHasSuffix(FieldChallengeID, v))
}

// ChallengeIDEqualFold applies the EqualFold predicate on the "challenge_id" field.
func ChallengeIDEqualFold(v string) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldEqualFold(FieldChallengeID, v))
}

// ChallengeIDContainsFold applies the ContainsFold predicate on the "challenge_id" field.
func ChallengeIDContainsFold(v string) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldContainsFold(FieldChallengeID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v int) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v int) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...int) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...int) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v int) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v int) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v int) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v int) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldLTE(FieldSkillID, v))
}

// RelevanceEQ applies the EQ predicate on the "relevance" field.
func RelevanceEQ(v float64) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldEQ(FieldRelevance, v))
}

// RelevanceNEQ applies the NEQ predicate on the "relevance" field.
func RelevanceNEQ(v float64) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldNEQ(FieldRelevance, v))
}

// RelevanceIn applies the In predicate on the "relevance" field.
func RelevanceIn(vs ...float64) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldIn(FieldRelevance, vs...))
}

// RelevanceNotIn applies the NotIn predicate on the "relevance" field.
func RelevanceNotIn(vs ...float64) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldNotIn(FieldRelevance, vs...))
}

// RelevanceGT applies the GT predicate on the "relevance" field.
func RelevanceGT(v float64) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldGT(FieldRelevance, v))
}

// RelevanceGTE applies the GTE predicate on the "relevance" field.
func RelevanceGTE(v float64) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldGTE(FieldRelevance, v))
}

// RelevanceLT applies the LT predicate on the "relevance" field.
func RelevanceLT(v float64) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldLT(FieldRelevance, v))
}

// RelevanceLTE applies the LTE predicate on the "relevance" field.
func RelevanceLTE(v float64) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.FieldLTE(FieldRelevance, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChallengeSkill) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChallengeSkill) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChallengeSkill) predicate.ChallengeSkill {
	return predicate.ChallengeSkill(sql.NotPredicates(p))
}
