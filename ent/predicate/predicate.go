// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// Challenge is the predicate function for challenge builders.
type Challenge func(*sql.Selector)

// ChallengeSkill is the predicate function for challengeskill builders.
type ChallengeSkill func(*sql.Selector)

// Language is the predicate function for language builders.
type Language func(*sql.Selector)

// LearningPath is the predicate function for learningpath builders.
type LearningPath func(*sql.Selector)

// LearningPathItem is the predicate function for learningpathitem builders.
type LearningPathItem func(*sql.Selector)

// Skill is the predicate function for skill builders.
type Skill func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserSkill is the predicate function for userskill builders.
type UserSkill func(*sql.Selector)
