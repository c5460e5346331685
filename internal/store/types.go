package store

import "time"

// User is an account row. PasswordHash is never exposed here; the auth
// package reads it through UserRepo.CredentialsByUsername.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	LastLogin time.Time `json:"last_login,omitzero"`
}

// Credentials carries what the auth layer needs to verify a login.
type Credentials struct {
	UserID       string
	Username     string
	PasswordHash string
}

// Challenge is a generated coding exercise.
type Challenge struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	EnhancedPrompt string    `json:"enhanced_prompt"`
	Difficulty     int       `json:"difficulty"`
	Language       string    `json:"language"`
	Solution       string    `json:"solution,omitempty"`
	HasSolution    bool      `json:"has_solution"`
	CreatedAt      time.Time `json:"created_at"`
}

// Attempt is one submission of code against a challenge.
type Attempt struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	ChallengeID   string    `json:"challenge_id"`
	Code          string    `json:"code"`
	Feedback      string    `json:"feedback"`
	Score         *float64  `json:"score"`
	TimeSpent     int       `json:"time_spent"`
	AttemptNumber int       `json:"attempt_number"`
	Successful    bool      `json:"successful"`
	CreatedAt     time.Time `json:"created_at"`
}

// SkillProficiency is a user's current standing on one skill.
type SkillProficiency struct {
	SkillID     int       `json:"skill_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Proficiency float64   `json:"proficiency"`
	LastUpdated time.Time `json:"last_updated"`
}

// SkillWeight maps a skill name to its relevance for a challenge.
type SkillWeight struct {
	SkillID   int     `json:"skill_id"`
	Name      string  `json:"name"`
	Relevance float64 `json:"relevance"`
}

// LearningPath is an ordered curriculum of challenges.
type LearningPath struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  int    `json:"difficulty"`
	Language    string `json:"language"`
}

// PathChallenge is a challenge with its position inside a path.
type PathChallenge struct {
	Challenge
	Position int `json:"position"`
}
