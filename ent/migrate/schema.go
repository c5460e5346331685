// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "challenge_id", Type: field.TypeString},
		{Name: "code", Type: field.TypeString, Size: 2147483647},
		{Name: "feedback", Type: field.TypeString, Size: 2147483647},
		{Name: "score", Type: field.TypeFloat64, Nullable: true},
		{Name: "time_spent", Type: field.TypeInt, Default: 0},
		{Name: "attempt_number", Type: field.TypeInt},
		{Name: "successful", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_user_id_challenge_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1], AttemptsColumns[2]},
			},
			{
				Name:    "attempt_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1], AttemptsColumns[9]},
			},
		},
	}
	// ChallengesColumns holds the columns for the "challenges" table.
	ChallengesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "enhanced_prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "difficulty", Type: field.TypeInt, Default: 2},
		{Name: "lang_id", Type: field.TypeInt},
		{Name: "solution", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ChallengesTable holds the schema information for the "challenges" table.
	ChallengesTable = &schema.Table{
		Name:       "challenges",
		Columns:    ChallengesColumns,
		PrimaryKey: []*schema.Column{ChallengesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "challenge_lang_id",
				Unique:  false,
				Columns: []*schema.Column{ChallengesColumns[5]},
			},
			{
				Name:    "challenge_difficulty",
				Unique:  false,
				Columns: []*schema.Column{ChallengesColumns[4]},
			},
		},
	}
	// ChallengeSkillsColumns holds the columns for the "challenge_skills" table.
	ChallengeSkillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "challenge_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeInt},
		{Name: "relevance", Type: field.TypeFloat64},
	}
	// ChallengeSkillsTable holds the schema information for the "challenge_skills" table.
	ChallengeSkillsTable = &schema.Table{
		Name:       "challenge_skills",
		Columns:    ChallengeSkillsColumns,
		PrimaryKey: []*schema.Column{ChallengeSkillsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "challengeskill_challenge_id_skill_id",
				Unique:  true,
				Columns: []*schema.Column{ChallengeSkillsColumns[1], ChallengeSkillsColumns[2]},
			},
			{
				Name:    "challengeskill_skill_id",
				Unique:  false,
				Columns: []*schema.Column{ChallengeSkillsColumns[2]},
			},
		},
	}
	// LanguagesColumns holds the columns for the "languages" table.
	LanguagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
	}
	// LanguagesTable holds the schema information for the "languages" table.
	LanguagesTable = &schema.Table{
		Name:       "languages",
		Columns:    LanguagesColumns,
		PrimaryKey: []*schema.Column{LanguagesColumns[0]},
	}
	// LearningPathsColumns holds the columns for the "learning_paths" table.
	LearningPathsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "difficulty", Type: field.TypeInt, Default: 2},
		{Name: "lang_id", Type: field.TypeInt},
		{Name: "ordering", Type: field.TypeString, Size: 2147483647, Default: "[]"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LearningPathsTable holds the schema information for the "learning_paths" table.
	LearningPathsTable = &schema.Table{
		Name:       "learning_paths",
		Columns:    LearningPathsColumns,
		PrimaryKey: []*schema.Column{LearningPathsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningpath_title_lang_id",
				Unique:  false,
				Columns: []*schema.Column{LearningPathsColumns[1], LearningPathsColumns[4]},
			},
		},
	}
	// LearningPathItemsColumns holds the columns for the "learning_path_items" table.
	LearningPathItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "path_id", Type: field.TypeString},
		{Name: "challenge_id", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
	}
	// LearningPathItemsTable holds the schema information for the "learning_path_items" table.
	LearningPathItemsTable = &schema.Table{
		Name:       "learning_path_items",
		Columns:    LearningPathItemsColumns,
		PrimaryKey: []*schema.Column{LearningPathItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningpathitem_path_id_challenge_id",
				Unique:  true,
				Columns: []*schema.Column{LearningPathItemsColumns[1], LearningPathItemsColumns[2]},
			},
			{
				Name:    "learningpathitem_path_id_position",
				Unique:  false,
				Columns: []*schema.Column{LearningPathItemsColumns[1], LearningPathItemsColumns[3]},
			},
		},
	}
	// SkillsColumns holds the columns for the "skills" table.
	SkillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "category", Type: field.TypeString},
	}
	// SkillsTable holds the schema information for the "skills" table.
	SkillsTable = &schema.Table{
		Name:       "skills",
		Columns:    SkillsColumns,
		PrimaryKey: []*schema.Column{SkillsColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_login", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// UserSkillsColumns holds the columns for the "user_skills" table.
	UserSkillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeInt},
		{Name: "proficiency", Type: field.TypeFloat64},
		{Name: "last_updated", Type: field.TypeTime},
	}
	// UserSkillsTable holds the schema information for the "user_skills" table.
	UserSkillsTable = &schema.Table{
		Name:       "user_skills",
		Columns:    UserSkillsColumns,
		PrimaryKey: []*schema.Column{UserSkillsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userskill_user_id_skill_id",
				Unique:  true,
				Columns: []*schema.Column{UserSkillsColumns[1], UserSkillsColumns[2]},
			},
			{
				Name:    "userskill_user_id_proficiency",
				Unique:  false,
				Columns: []*schema.Column{UserSkillsColumns[1], UserSkillsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		ChallengesTable,
		ChallengeSkillsTable,
		LanguagesTable,
		LearningPathsTable,
		LearningPathItemsTable,
		SkillsTable,
		UsersTable,
		UserSkillsTable,
	}
)

func init() {
}
