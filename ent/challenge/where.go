// Code generated by ent, DO NOT EDIT.

package challenge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldDescription, v))
}

// EnhancedPrompt applies equality check predicate on the "enhanced_prompt" field. It's identical to EnhancedPromptEQ.
func EnhancedPrompt(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldEnhancedPrompt, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldDifficulty, v))
}

// LangID applies equality check predicate on the "lang_id" field. It's identical to LangIDEQ.
func LangID(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldLangID, v))
}

// Solution applies equality check predicate on the "solution" field. It's identical to SolutionEQ.
func Solution(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldSolution, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldCreatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContainsFold(FieldDescription, v))
}

// EnhancedPromptEQ applies the EQ predicate on the "enhanced_prompt" field.
func EnhancedPromptEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldEnhancedPrompt, v))
}

// EnhancedPromptNEQ applies the NEQ predicate on the "enhanced_prompt" field.
func EnhancedPromptNEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldEnhancedPrompt, v))
}

// EnhancedPromptIn applies the In predicate on the "enhanced_prompt" field.
func EnhancedPromptIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldEnhancedPrompt, vs...))
}

// EnhancedPromptNotIn applies the NotIn predicate on the "enhanced_prompt" field.
func EnhancedPromptNotIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldEnhancedPrompt, vs...))
}

// EnhancedPromptGT applies the GT predicate on the "enhanced_prompt" field.
func EnhancedPromptGT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldEnhancedPrompt, v))
}

// EnhancedPromptGTE applies the GTE predicate on the "enhanced_prompt" field.
func EnhancedPromptGTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldEnhancedPrompt, v))
}

// EnhancedPromptLT applies the LT predicate on the "enhanced_prompt" field.
func EnhancedPromptLT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldEnhancedPrompt, v))
}

// EnhancedPromptLTE applies the LTE predicate on the "enhanced_prompt" field.
func EnhancedPromptLTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldEnhancedPrompt, v))
}

// EnhancedPromptContains applies the Contains predicate on the "enhanced_prompt" field.
func EnhancedPromptContains(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContains(FieldEnhancedPrompt, v))
}

// EnhancedPromptHasPrefix applies the HasPrefix predicate on the "enhanced_prompt" field.
func EnhancedPromptHasPrefix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasPrefix(FieldEnhancedPrompt, v))
}

// EnhancedPromptHasSuffix applies the HasSuffix predicate on the "enhanced_prompt" field.
func EnhancedPromptHasSuffix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasSuffix(FieldEnhancedPrompt, v))
}

// EnhancedPromptEqualFold applies the EqualFold predicate on the "enhanced_prompt" field.
func EnhancedPromptEqualFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEqualFold(FieldEnhancedPrompt, v))
}

// EnhancedPromptContainsFold applies the ContainsFold predicate on the "enhanced_prompt" field.
func EnhancedPromptContainsFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContainsFold(FieldEnhancedPrompt, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldDifficulty, v))
}

// LangIDEQ applies the EQ predicate on the "lang_id" field.
func LangIDEQ(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldLangID, v))
}

// LangIDNEQ applies the NEQ predicate on the "lang_id" field.
func LangIDNEQ(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldLangID, v))
}

// LangIDIn applies the In predicate on the "lang_id" field.
func LangIDIn(vs ...int) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldLangID, vs...))
}

// LangIDNotIn applies the NotIn predicate on the "lang_id" field.
func LangIDNotIn(vs ...int) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldLangID, vs...))
}

// LangIDGT applies the GT predicate on the "lang_id" field.
func LangIDGT(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldLangID, v))
}

// LangIDGTE applies the GTE predicate on the "lang_id" field.
func LangIDGTE(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldLangID, v))
}

// LangIDLT applies the LT predicate on the "lang_id" field.
func LangIDLT(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldLangID, v))
}

// LangIDLTE applies the LTE predicate on the "lang_id" field.
func LangIDLTE(v int) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldLangID, v))
}

// SolutionEQ applies the EQ predicate on the "solution" field.
func SolutionEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldSolution, v))
}

// SolutionNEQ applies the NEQ predicate on the "solution" field.
func SolutionNEQ(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldSolution, v))
}

// SolutionIn applies the In predicate on the "solution" field.
func SolutionIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldSolution, vs...))
}

// SolutionNotIn applies the NotIn predicate on the "solution" field.
func SolutionNotIn(vs ...string) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldSolution, vs...))
}

// SolutionGT applies the GT predicate on the "solution" field.
func SolutionGT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldSolution, v))
}

// SolutionGTE applies the GTE predicate on the "solution" field.
func SolutionGTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldSolution, v))
}

// SolutionLT applies the LT predicate on the "solution" field.
func SolutionLT(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldSolution, v))
}

// SolutionLTE applies the LTE predicate on the "solution" field.
func SolutionLTE(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldSolution, v))
}

// SolutionContains applies the Contains predicate on the "solution" field.
func SolutionContains(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContains(FieldSolution, v))
}

// SolutionHasPrefix applies the HasPrefix predicate on the "solution" field.
func SolutionHasPrefix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasPrefix(FieldSolution, v))
}

// SolutionHasSuffix applies the HasSuffix predicate on the "solution" field.
func SolutionHasSuffix(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldHasSuffix(FieldSolution, v))
}

// SolutionIsNil applies the IsNil predicate on the "solution" field.
func SolutionIsNil() predicate.Challenge {
	return predicate.Challenge(sql.FieldIsNull(FieldSolution))
}

// SolutionNotNil applies the NotNil predicate on the "solution" field.
func SolutionNotNil() predicate.Challenge {
	return predicate.Challenge(sql.FieldNotNull(FieldSolution))
}

// SolutionEqualFold applies the EqualFold predicate on the "solution" field.
func SolutionEqualFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldEqualFold(FieldSolution, v))
}

// SolutionContainsFold applies the ContainsFold predicate on the "solution" field.
func SolutionContainsFold(v string) predicate.Challenge {
	return predicate.Challenge(sql.FieldContainsFold(FieldSolution, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Challenge {
	return predicate.Challenge(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Challenge) predicate.Challenge {
	return predicate.Challenge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Challenge) predicate.Challenge {
	return predicate.Challenge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Challenge) predicate.Challenge {
	return predicate.Challenge(sql.NotPredicates(p))
}
