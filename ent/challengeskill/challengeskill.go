// Code generated by ent, DO NOT EDIT.

package challengeskill

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the challengeskill type in the database.
	Label = "challenge_skill"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldChallengeID holds the string denoting the challenge_id field in the database.
	FieldChallengeID = "challenge_id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldRelevance holds the string denoting the relevance field in the database.
	FieldRelevance = "relevance"
	// Table holds the table name of the challengeskill in the database.
	Table = "challenge_skills"
)

// Columns holds all SQL columns for challengeskill fields.
var Columns = []string{
	FieldID,
	FieldChallengeID,
	FieldSkillID,
	FieldRelevance,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	ChallengeIDValidator func(string) error
)

// OrderOption defines the ordering options for the ChallengeSkill queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChallengeID orders the results by the challenge_id field.
func ByChallengeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChallengeID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByRelevance orders the results by the relevance field.
func ByRelevance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelevance, opts...).ToFunc()
}
