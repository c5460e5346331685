// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/praxislabs/praxis/ent/attempt"
	"github.com/praxislabs/praxis/ent/challenge"
	"github.com/praxislabs/praxis/ent/challengeskill"
	"github.com/praxislabs/praxis/ent/language"
	"github.com/praxislabs/praxis/ent/learningpath"
	"github.com/praxislabs/praxis/ent/learningpathitem"
	"github.com/praxislabs/praxis/ent/schema"
	"github.com/praxislabs/praxis/ent/skill"
	"github.com/praxislabs/praxis/ent/user"
	"github.com/praxislabs/praxis/ent/userskill"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescUserID is the schema descriptor for user_id field.
	attemptDescUserID := attemptFields[1].Descriptor()
	// attempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attempt.UserIDValidator = attemptDescUserID.Validators[0].(func(string) error)
	// attemptDescChallengeID is the schema descriptor for challenge_id field.
	attemptDescChallengeID := attemptFields[2].Descriptor()
	// attempt.ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	attempt.ChallengeIDValidator = attemptDescChallengeID.Validators[0].(func(string) error)
	// attemptDescTimeSpent is the schema descriptor for time_spent field.
	attemptDescTimeSpent := attemptFields[6].Descriptor()
	// attempt.DefaultTimeSpent holds the default value on creation for the time_spent field.
	attempt.DefaultTimeSpent = attemptDescTimeSpent.Default.(int)
	// attemptDescAttemptNumber is the schema descriptor for attempt_number field.
	attemptDescAttemptNumber := attemptFields[7].Descriptor()
	// attempt.AttemptNumberValidator is a validator for the "attempt_number" field. It is called by the builders before save.
	attempt.AttemptNumberValidator = attemptDescAttemptNumber.Validators[0].(func(int) error)
	// attemptDescSuccessful is the schema descriptor for successful field.
	attemptDescSuccessful := attemptFields[8].Descriptor()
	// attempt.DefaultSuccessful holds the default value on creation for the successful field.
	attempt.DefaultSuccessful = attemptDescSuccessful.Default.(bool)
	// attemptDescCreatedAt is the schema descriptor for created_at field.
	attemptDescCreatedAt := attemptFields[9].Descriptor()
	// attempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	attempt.DefaultCreatedAt = attemptDescCreatedAt.Default.(func() time.Time)
	challengeFields := schema.Challenge{}.Fields()
	_ = challengeFields
	// challengeDescTitle is the schema descriptor for title field.
	challengeDescTitle := challengeFields[1].Descriptor()
	// challenge.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	challenge.TitleValidator = challengeDescTitle.Validators[0].(func(string) error)
	// challengeDescDescription is the schema descriptor for description field.
	challengeDescDescription := challengeFields[2].Descriptor()
	// challenge.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	challenge.DescriptionValidator = challengeDescDescription.Validators[0].(func(string) error)
	// challengeDescDifficulty is the schema descriptor for difficulty field.
	challengeDescDifficulty := challengeFields[4].Descriptor()
	// challenge.DefaultDifficulty holds the default value on creation for the difficulty field.
	challenge.DefaultDifficulty = challengeDescDifficulty.Default.(int)
	// challenge.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	challenge.DifficultyValidator = func() func(int) error {
		validators := challengeDescDifficulty.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(difficulty int) error {
			for _, fn := range fns {
				if err := fn(difficulty); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// challengeDescCreatedAt is the schema descriptor for created_at field.
	challengeDescCreatedAt := challengeFields[7].Descriptor()
	// challenge.DefaultCreatedAt holds the default value on creation for the created_at field.
	challenge.DefaultCreatedAt = challengeDescCreatedAt.Default.(func() time.Time)
	challengeskillFields := schema.ChallengeSkill{}.Fields()
	_ = challengeskillFields
	// challengeskillDescChallengeID is the schema descriptor for challenge_id field.
	challengeskillDescChallengeID := challengeskillFields[0].Descriptor()
	// challengeskill.ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	challengeskill.ChallengeIDValidator = challengeskillDescChallengeID.Validators[0].(func(string) error)
	languageFields := schema.Language{}.Fields()
	_ = languageFields
	// languageDescName is the schema descriptor for name field.
	languageDescName := languageFields[0].Descriptor()
	// language.NameValidator is a validator for the "name" field. It is called by the builders before save.
	language.NameValidator = languageDescName.Validators[0].(func(string) error)
	learningpathFields := schema.LearningPath{}.Fields()
	_ = learningpathFields
	// learningpathDescTitle is the schema descriptor for title field.
	learningpathDescTitle := learningpathFields[1].Descriptor()
	// learningpath.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	learningpath.TitleValidator = learningpathDescTitle.Validators[0].(func(string) error)
	// learningpathDescDifficulty is the schema descriptor for difficulty field.
	learningpathDescDifficulty := learningpathFields[3].Descriptor()
	// learningpath.DefaultDifficulty holds the default value on creation for the difficulty field.
	learningpath.DefaultDifficulty = learningpathDescDifficulty.Default.(int)
	// learningpathDescOrdering is the schema descriptor for ordering field.
	learningpathDescOrdering := learningpathFields[5].Descriptor()
	// learningpath.DefaultOrdering holds the default value on creation for the ordering field.
	learningpath.DefaultOrdering = learningpathDescOrdering.Default.(string)
	// learningpathDescCreatedAt is the schema descriptor for created_at field.
	learningpathDescCreatedAt := learningpathFields[6].Descriptor()
	// learningpath.DefaultCreatedAt holds the default value on creation for the created_at field.
	learningpath.DefaultCreatedAt = learningpathDescCreatedAt.Default.(func() time.Time)
	learningpathitemFields := schema.LearningPathItem{}.Fields()
	_ = learningpathitemFields
	// learningpathitemDescPathID is the schema descriptor for path_id field.
	learningpathitemDescPathID := learningpathitemFields[0].Descriptor()
	// learningpathitem.PathIDValidator is a validator for the "path_id" field. It is called by the builders before save.
	learningpathitem.PathIDValidator = learningpathitemDescPathID.Validators[0].(func(string) error)
	// learningpathitemDescChallengeID is the schema descriptor for challenge_id field.
	learningpathitemDescChallengeID := learningpathitemFields[1].Descriptor()
	// learningpathitem.ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	learningpathitem.ChallengeIDValidator = learningpathitemDescChallengeID.Validators[0].(func(string) error)
	// learningpathitemDescPosition is the schema descriptor for position field.
	learningpathitemDescPosition := learningpathitemFields[2].Descriptor()
	// learningpathitem.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	learningpathitem.PositionValidator = learningpathitemDescPosition.Validators[0].(func(int) error)
	skillFields := schema.Skill{}.Fields()
	_ = skillFields
	// skillDescName is the schema descriptor for name field.
	skillDescName := skillFields[0].Descriptor()
	// skill.NameValidator is a validator for the "name" field. It is called by the builders before save.
	skill.NameValidator = skillDescName.Validators[0].(func(string) error)
	// skillDescCategory is the schema descriptor for category field.
	skillDescCategory := skillFields[1].Descriptor()
	// skill.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	skill.CategoryValidator = skillDescCategory.Validators[0].(func(string) error)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	userskillFields := schema.UserSkill{}.Fields()
	_ = userskillFields
	// userskillDescUserID is the schema descriptor for user_id field.
	userskillDescUserID := userskillFields[0].Descriptor()
	// userskill.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userskill.UserIDValidator = userskillDescUserID.Validators[0].(func(string) error)
	// userskillDescLastUpdated is the schema descriptor for last_updated field.
	userskillDescLastUpdated := userskillFields[3].Descriptor()
	// userskill.DefaultLastUpdated holds the default value on creation for the last_updated field.
	userskill.DefaultLastUpdated = userskillDescLastUpdated.Default.(func() time.Time)
	// userskill.UpdateDefaultLastUpdated holds the default value on update for the last_updated field.
	userskill.UpdateDefaultLastUpdated = userskillDescLastUpdated.UpdateDefault.(func() time.Time)
}
