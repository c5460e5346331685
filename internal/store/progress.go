package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/praxislabs/praxis/ent"
)

// ProgressSummary is the headline numbers for a user's dashboard.
type ProgressSummary struct {
	TotalAttempts       int     `json:"total_attempts"`
	CompletedChallenges int     `json:"completed_challenges"`
	AverageScore        float64 `json:"average_score"`
	SkillsTracked       int     `json:"skills_tracked"`
	AverageProficiency  float64 `json:"average_proficiency"`
}

// ActivityBucket is one point in an activity series. Label is a date,
// hour or weekday name depending on the query.
type ActivityBucket struct {
	Label        string  `json:"label"`
	Attempts     int     `json:"attempts"`
	AverageScore float64 `json:"average_score"`
}

// DifficultyStats aggregates performance at one difficulty level.
type DifficultyStats struct {
	Difficulty   int     `json:"difficulty"`
	Attempts     int     `json:"attempts"`
	AverageScore float64 `json:"average_score"`
	Completions  int     `json:"completions"`
}

// CategoryStats aggregates proficiency across one skill category.
type CategoryStats struct {
	Category           string  `json:"category"`
	SkillsTracked      int     `json:"skills_tracked"`
	AverageProficiency float64 `json:"average_proficiency"`
}

// ChallengeStats aggregates a user's attempts against one challenge.
type ChallengeStats struct {
	ChallengeID string  `json:"challenge_id"`
	Title       string  `json:"title"`
	Difficulty  int     `json:"difficulty"`
	Attempts    int     `json:"attempts"`
	BestScore   float64 `json:"best_score"`
	AverageTime float64 `json:"average_time"`
	Completed   bool    `json:"completed"`
}

// ScorePoint is one scored attempt in a skill's history.
type ScorePoint struct {
	Score     float64   `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}

// ProgressRepo provides aggregated analytics over attempts and skills.
type ProgressRepo interface {
	// Summary returns the headline progress numbers for a user.
	Summary(ctx context.Context, userID string) (*ProgressSummary, error)

	// DailyActivity buckets a user's attempts by calendar day over the
	// trailing window.
	DailyActivity(ctx context.Context, userID string, days int) ([]ActivityBucket, error)

	// HourlyActivity buckets a user's attempts by hour of day (00-23).
	HourlyActivity(ctx context.Context, userID string) ([]ActivityBucket, error)

	// WeekdayActivity buckets a user's attempts by day of week,
	// Sunday first.
	WeekdayActivity(ctx context.Context, userID string) ([]ActivityBucket, error)

	// DifficultyPerformance aggregates scores per difficulty level.
	DifficultyPerformance(ctx context.Context, userID string) ([]DifficultyStats, error)

	// ChallengeBreakdown aggregates a user's attempts per challenge,
	// most recently attempted first.
	ChallengeBreakdown(ctx context.Context, userID string) ([]ChallengeStats, error)

	// SkillsByCategory aggregates a user's proficiencies per category.
	SkillsByCategory(ctx context.Context, userID string) ([]CategoryStats, error)

	// SkillHistory returns the scored attempts that touched one skill,
	// oldest first.
	SkillHistory(ctx context.Context, userID string, skillID int) ([]ScorePoint, error)
}

type progressRepo struct {
	client *ent.Client
	db     *sql.DB
}

func (r *progressRepo) Summary(ctx context.Context, userID string) (*ProgressSummary, error) {
	var s ProgressSummary

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(DISTINCT CASE WHEN successful THEN challenge_id END),
		       COALESCE(AVG(score), 0)
		FROM attempts
		WHERE user_id = ?`, userID).
		Scan(&s.TotalAttempts, &s.CompletedChallenges, &s.AverageScore)
	if err != nil {
		return nil, fmt.Errorf("aggregate attempts: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(AVG(proficiency), 0)
		FROM user_skills
		WHERE user_id = ?`, userID).
		Scan(&s.SkillsTracked, &s.AverageProficiency)
	if err != nil {
		return nil, fmt.Errorf("aggregate skills: %w", err)
	}

	return &s, nil
}

func (r *progressRepo) DailyActivity(ctx context.Context, userID string, days int) ([]ActivityBucket, error) {
	since := time.Now().AddDate(0, 0, -days)
	return r.activitySeries(ctx, `
		SELECT date(created_at), COUNT(*), COALESCE(AVG(score), 0)
		FROM attempts
		WHERE user_id = ? AND created_at >= ?
		GROUP BY date(created_at)
		ORDER BY date(created_at)`, userID, since)
}

func (r *progressRepo) HourlyActivity(ctx context.Context, userID string) ([]ActivityBucket, error) {
	return r.activitySeries(ctx, `
		SELECT strftime('%H', created_at), COUNT(*), COALESCE(AVG(score), 0)
		FROM attempts
		WHERE user_id = ?
		GROUP BY strftime('%H', created_at)
		ORDER BY strftime('%H', created_at)`, userID)
}

func (r *progressRepo) WeekdayActivity(ctx context.Context, userID string) ([]ActivityBucket, error) {
	buckets, err := r.activitySeries(ctx, `
		SELECT strftime('%w', created_at), COUNT(*), COALESCE(AVG(score), 0)
		FROM attempts
		WHERE user_id = ?
		GROUP BY strftime('%w', created_at)
		ORDER BY strftime('%w', created_at)`, userID)
	if err != nil {
		return nil, err
	}
	for i := range buckets {
		buckets[i].Label = weekdayName(buckets[i].Label)
	}
	return buckets, nil
}

func (r *progressRepo) activitySeries(ctx context.Context, query string, args ...any) ([]ActivityBucket, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query activity: %w", err)
	}
	defer rows.Close()

	out := []ActivityBucket{}
	for rows.Next() {
		var b ActivityBucket
		if err := rows.Scan(&b.Label, &b.Attempts, &b.AverageScore); err != nil {
			return nil, fmt.Errorf("scan activity bucket: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *progressRepo) DifficultyPerformance(ctx context.Context, userID string) ([]DifficultyStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.difficulty, COUNT(*), COALESCE(AVG(a.score), 0),
		       COUNT(DISTINCT CASE WHEN a.successful THEN a.challenge_id END)
		FROM attempts a
		JOIN challenges c ON c.id = a.challenge_id
		WHERE a.user_id = ?
		GROUP BY c.difficulty
		ORDER BY c.difficulty`, userID)
	if err != nil {
		return nil, fmt.Errorf("query difficulty performance: %w", err)
	}
	defer rows.Close()

	out := []DifficultyStats{}
	for rows.Next() {
		var d DifficultyStats
		if err := rows.Scan(&d.Difficulty, &d.Attempts, &d.AverageScore, &d.Completions); err != nil {
			return nil, fmt.Errorf("scan difficulty stats: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *progressRepo) ChallengeBreakdown(ctx context.Context, userID string) ([]ChallengeStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.title, c.difficulty, COUNT(*),
		       COALESCE(MAX(a.score), 0), COALESCE(AVG(a.time_spent), 0),
		       MAX(a.successful)
		FROM attempts a
		JOIN challenges c ON c.id = a.challenge_id
		WHERE a.user_id = ?
		GROUP BY c.id, c.title, c.difficulty
		ORDER BY MAX(a.created_at) DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query challenge breakdown: %w", err)
	}
	defer rows.Close()

	out := []ChallengeStats{}
	for rows.Next() {
		var c ChallengeStats
		if err := rows.Scan(&c.ChallengeID, &c.Title, &c.Difficulty, &c.Attempts,
			&c.BestScore, &c.AverageTime, &c.Completed); err != nil {
			return nil, fmt.Errorf("scan challenge stats: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *progressRepo) SkillsByCategory(ctx context.Context, userID string) ([]CategoryStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.category, COUNT(*), COALESCE(AVG(us.proficiency), 0)
		FROM user_skills us
		JOIN skills s ON s.id = us.skill_id
		WHERE us.user_id = ?
		GROUP BY s.category
		ORDER BY s.category`, userID)
	if err != nil {
		return nil, fmt.Errorf("query skill categories: %w", err)
	}
	defer rows.Close()

	out := []CategoryStats{}
	for rows.Next() {
		var c CategoryStats
		if err := rows.Scan(&c.Category, &c.SkillsTracked, &c.AverageProficiency); err != nil {
			return nil, fmt.Errorf("scan category stats: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *progressRepo) SkillHistory(ctx context.Context, userID string, skillID int) ([]ScorePoint, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT a.score, a.created_at
		FROM attempts a
		JOIN challenge_skills cs ON cs.challenge_id = a.challenge_id
		WHERE a.user_id = ? AND cs.skill_id = ? AND a.score IS NOT NULL
		ORDER BY a.created_at`, userID, skillID)
	if err != nil {
		return nil, fmt.Errorf("query skill history: %w", err)
	}
	defer rows.Close()

	out := []ScorePoint{}
	for rows.Next() {
		var p ScorePoint
		if err := rows.Scan(&p.Score, &p.Timestamp); err != nil {
			return nil, fmt.Errorf("scan score point: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func weekdayName(w string) string {
	names := map[string]string{
		"0": "Sunday", "1": "Monday", "2": "Tuesday", "3": "Wednesday",
		"4": "Thursday", "5": "Friday", "6": "Saturday",
	}
	if name, ok := names[w]; ok {
		return name
	}
	return w
}
