// Code generated by ent, DO NOT EDIT.

package learningpath

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldDescription, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldDifficulty, v))
}

// LangID applies equality check predicate on the "lang_id" field. It's identical to LangIDEQ.
func LangID(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldLangID, v))
}

// Ordering applies equality check predicate on the "ordering" field. It's identical to OrderingEQ.
func Ordering(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldOrdering, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldCreatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldContainsFold(FieldDescription, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldDifficulty, v))
}

// LangIDEQ applies the EQ predicate on the "lang_id" field.
func LangIDEQ(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldLangID, v))
}

// LangIDNEQ applies the NEQ predicate on the "lang_id" field.
func LangIDNEQ(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldLangID, v))
}

// LangIDIn applies the In predicate on the "lang_id" field.
func LangIDIn(vs ...int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldLangID, vs...))
}

// LangIDNotIn applies the NotIn predicate on the "lang_id" field.
func LangIDNotIn(vs ...int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldLangID, vs...))
}

// LangIDGT applies the GT predicate on the "lang_id" field.
func LangIDGT(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldLangID, v))
}

// LangIDGTE applies the GTE predicate on the "lang_id" field.
func LangIDGTE(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldLangID, v))
}

// LangIDLT applies the LT predicate on the "lang_id" field.
func LangIDLT(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldLangID, v))
}

// LangIDLTE applies the LTE predicate on the "lang_id" field.
func LangIDLTE(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldLangID, v))
}

// OrderingEQ applies the EQ predicate on the "ordering" field.
func OrderingEQ(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldOrdering, v))
}

// OrderingNEQ applies the NEQ predicate on the "ordering" field.
func OrderingNEQ(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldOrdering, v))
}

// OrderingIn applies the In predicate on the "ordering" field.
func OrderingIn(vs ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldOrdering, vs...))
}

// OrderingNotIn applies the NotIn predicate on the "ordering" field.
func OrderingNotIn(vs ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldOrdering, vs...))
}

// OrderingGT applies the GT predicate on the "ordering" field.
func OrderingGT(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldOrdering, v))
}

// OrderingGTE applies the GTE predicate on the "ordering" field.
func OrderingGTE(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldOrdering, v))
}

// OrderingLT applies the LT predicate on the "ordering" field.
func OrderingLT(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldOrdering, v))
}

// OrderingLTE applies the LTE predicate on the "ordering" field.
func OrderingLTE(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldOrdering, v))
}

// OrderingContains applies the Contains predicate on the "ordering" field.
func OrderingContains(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldContains(FieldOrdering, v))
}

// OrderingHasPrefix applies the HasPrefix predicate on the "ordering" field.
func OrderingHasPrefix(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldHasPrefix(FieldOrdering, v))
}

// OrderingHasSuffix applies the HasSuffix predicate on the "ordering" field.
func OrderingHasSuffix(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldHasSuffix(FieldOrdering, v))
}

// OrderingEqualFold applies the EqualFold predicate on the "ordering" field.
func OrderingEqualFold(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEqualFold(FieldOrdering, v))
}

// OrderingContainsFold applies the ContainsFold predicate on the "ordering" field.
func OrderingContainsFold(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldContainsFold(FieldOrdering, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningPath) predicate.LearningPath {
	return predicate.LearningPath(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningPath) predicate.LearningPath {
	return predicate.LearningPath(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningPath) predicate.LearningPath {
	return predicate.LearningPath(sql.NotPredicates(p))
}
