// Code generated by ent, DO NOT EDIT.

package learningpathitem

import (
	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldLTE(FieldID, id))
}

// PathID applies equality check predicate on the "path_id" field. It's identical to PathIDEQ.
func PathID(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldEQ(FieldPathID, v))
}

// ChallengeID applies equality check predicate on the "challenge_id" field. It's identical to ChallengeIDEQ.
func ChallengeID(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldEQ(FieldChallengeID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldEQ(FieldPosition, v))
}

// PathIDEQ applies the EQ predicate on the "path_id" field.
func PathIDEQ(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldEQ(FieldPathID, v))
}

// PathIDNEQ applies the NEQ predicate on the "path_id" field.
func PathIDNEQ(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldNEQ(FieldPathID, v))
}

// PathIDIn applies the In predicate on the "path_id" field.
func PathIDIn(vs ...string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldIn(FieldPathID, vs...))
}

// PathIDNotIn applies the NotIn predicate on the "path_id" field.
func PathIDNotIn(vs ...string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldNotIn(FieldPathID, vs...))
}

// PathIDGT applies the GT predicate on the "path_id" field.
func PathIDGT(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldGT(FieldPathID, v))
}

// PathIDGTE applies the GTE predicate on the "path_id" field.
func PathIDGTE(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldGTE(FieldPathID, v))
}

// PathIDLT applies the LT predicate on the "path_id" field.
func PathIDLT(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldLT(FieldPathID, v))
}

// PathIDLTE applies the LTE predicate on the "path_id" field.
func PathIDLTE(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldLTE(FieldPathID, v))
}

// PathIDContains applies the Contains predicate on the "path_id" field.
func PathIDContains(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldContains(FieldPathID, v))
}

// PathIDHasPrefix applies the HasPrefix predicate on the "path_id" field.
func PathIDHasPrefix(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldHasPrefix(FieldPathID, v))
}

// PathIDHasSuffix applies the HasSuffix predicate on the "path_id" field.
func PathIDHasSuffix(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldHasSuffix(FieldPathID, v))
}

// PathIDEqualFold applies the EqualFold predicate on the "path_id" field.
func PathIDEqualFold(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldEqualFold(FieldPathID, v))
}

// PathIDContainsFold applies the ContainsFold predicate on the "path_id" field.
func PathIDContainsFold(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldContainsFold(FieldPathID, v))
}

// ChallengeIDEQ applies the EQ predicate on the "challenge_id" field.
func ChallengeIDEQ(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldEQ(FieldChallengeID, v))
}

// ChallengeIDNEQ applies the NEQ predicate on the "challenge_id" field.
func ChallengeIDNEQ(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldNEQ(FieldChallengeID, v))
}

// ChallengeIDIn applies the In predicate on the "challenge_id" field.
func ChallengeIDIn(vs ...string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldIn(FieldChallengeID, vs...))
}

// ChallengeIDNotIn applies the NotIn predicate on the "challenge_id" field.
func ChallengeIDNotIn(vs ...string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldNotIn(FieldChallengeID, vs...))
}

// ChallengeIDGT applies the GT predicate on the "challenge_id" field.
func ChallengeIDGT(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldGT(FieldChallengeID, v))
}

// ChallengeIDGTE applies the GTE predicate on the "challenge_id" field.
func ChallengeIDGTE(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldGTE(FieldChallengeID, v))
}

// ChallengeIDLT applies the LT predicate on the "challenge_id" field.
func ChallengeIDLT(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldLT(FieldChallengeID, v))
}

// ChallengeIDLTE applies the LTE predicate on the "challenge_id" field.
func ChallengeIDLTE(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldLTE(FieldChallengeID, v))
}

// ChallengeIDContains applies the Contains predicate on the "challenge_id" field.
func ChallengeIDContains(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldContains(FieldChallengeID, v))
}

// ChallengeIDHasPrefix applies the HasPrefix predicate on the "challenge_id" field.
func ChallengeIDHasPrefix(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldHasPrefix(FieldChallengeID, v))
}

// ChallengeIDHasSuffix applies the HasSuffix predicate on the "challenge_id" field.
func ChallengeIDHasSuffix(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldHasSuffix(FieldChallengeID, v))
}

// ChallengeIDEqualFold applies the EqualFold predicate on the "challenge_id" field.
func ChallengeIDEqualFold(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldEqualFold(FieldChallengeID, v))
}

// ChallengeIDContainsFold applies the ContainsFold predicate on the "challenge_id" field.
func ChallengeIDContainsFold(v string) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldContainsFold(FieldChallengeID, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.FieldLTE(FieldPosition, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningPathItem) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningPathItem) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningPathItem) predicate.LearningPathItem {
	return predicate.LearningPathItem(sql.NotPredicates(p))
}
