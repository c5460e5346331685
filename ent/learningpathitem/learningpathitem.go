// Code generated by ent, DO NOT EDIT.

package learningpathitem

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learningpathitem type in the database.
	Label = "learning_path_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPathID holds the string denoting the path_id field in the database.
	FieldPathID = "path_id"
	// FieldChallengeID holds the string denoting the challenge_id field in the database.
	FieldChallengeID = "challenge_id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// Table holds the table name of the learningpathitem in the database.
	Table = "learning_path_items"
)

// Columns holds all SQL columns for learningpathitem fields.
var Columns = []string{
	FieldID,
	FieldPathID,
	FieldChallengeID,
	FieldPosition,
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
	// PathIDValidator is a validator for the "path_id" field. It is called by the builders before save.
	PathIDValidator func(string) error
	// ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	ChallengeIDValidator func(string) error
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
)

// OrderOption defines the ordering options for the LearningPathItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPathID orders the results by the path_id field.
func ByPathID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPathID, opts...).ToFunc()
}

// ByChallengeID orders the results by the challenge_id field.
func ByChallengeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChallengeID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}
