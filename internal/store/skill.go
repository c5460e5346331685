package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/praxislabs/praxis/ent"
	entcs "github.com/praxislabs/praxis/ent/challengeskill"
	entskill "github.com/praxislabs/praxis/ent/skill"
	entuserskill "github.com/praxislabs/praxis/ent/userskill"
	"github.com/praxislabs/praxis/internal/proficiency"
)

// SkillRepo provides access to the skill catalog and per-user
// proficiency tracking.
type SkillRepo interface {
	// List returns the full skill catalog.
	List(ctx context.Context) ([]SkillWeight, error)

	// ApplyAttempt folds an attempt score into the user's proficiency
	// for every skill mapped to the challenge. Skills the challenge does
	// not exercise are left untouched.
	ApplyAttempt(ctx context.Context, userID, challengeID string, score float64) error

	// Proficiencies returns the user's tracked skills, strongest first.
	Proficiencies(ctx context.Context, userID string) ([]SkillProficiency, error)

	// Weakest returns the user's n lowest-proficiency skills. A user
	// with no tracked skills gets an empty slice.
	Weakest(ctx context.Context, userID string, n int) ([]SkillProficiency, error)

	// Strongest returns the user's n highest-proficiency skills.
	Strongest(ctx context.Context, userID string, n int) ([]SkillProficiency, error)

	// Recommend returns unattempted challenges that exercise the user's
	// three weakest skills, easiest first. Empty for users with no
	// proficiency history.
	Recommend(ctx context.Context, userID string, limit int) ([]*Challenge, error)
}

type skillRepo struct {
	client *ent.Client
	db     *sql.DB
}

func (r *skillRepo) List(ctx context.Context) ([]SkillWeight, error) {
	rows, err := r.client.Skill.Query().
		Order(ent.Asc(entskill.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}
	out := make([]SkillWeight, len(rows))
	for i, row := range rows {
		out[i] = SkillWeight{SkillID: row.ID, Name: row.Name}
	}
	return out, nil
}

func (r *skillRepo) ApplyAttempt(ctx context.Context, userID, challengeID string, score float64) error {
	mappings, err := r.client.ChallengeSkill.Query().
		Where(entcs.ChallengeID(challengeID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query challenge skills: %w", err)
	}

	for _, m := range mappings {
		existing, err := r.client.UserSkill.Query().
			Where(
				entuserskill.UserID(userID),
				entuserskill.SkillID(m.SkillID),
			).
			Only(ctx)
		switch {
		case err == nil:
			updated := proficiency.Update(existing.Proficiency, score, m.Relevance)
			if err := r.client.UserSkill.UpdateOne(existing).
				SetProficiency(updated).
				SetLastUpdated(time.Now()).
				Exec(ctx); err != nil {
				return fmt.Errorf("update proficiency for skill %d: %w", m.SkillID, err)
			}
		case ent.IsNotFound(err):
			if _, err := r.client.UserSkill.Create().
				SetUserID(userID).
				SetSkillID(m.SkillID).
				SetProficiency(proficiency.Initial(score, m.Relevance)).
				Save(ctx); err != nil {
				return fmt.Errorf("create proficiency for skill %d: %w", m.SkillID, err)
			}
		default:
			return fmt.Errorf("query user skill: %w", err)
		}
	}
	return nil
}

func (r *skillRepo) Proficiencies(ctx context.Context, userID string) ([]SkillProficiency, error) {
	return r.rankedSkills(ctx, userID, "DESC", 0)
}

func (r *skillRepo) Weakest(ctx context.Context, userID string, n int) ([]SkillProficiency, error) {
	return r.rankedSkills(ctx, userID, "ASC", n)
}

func (r *skillRepo) Strongest(ctx context.Context, userID string, n int) ([]SkillProficiency, error) {
	return r.rankedSkills(ctx, userID, "DESC", n)
}

// rankedSkills joins user_skills with the catalog, ordered by
// proficiency. limit <= 0 means no limit.
func (r *skillRepo) rankedSkills(ctx context.Context, userID, dir string, limit int) ([]SkillProficiency, error) {
	q := fmt.Sprintf(`
		SELECT s.id, s.name, s.category, us.proficiency, us.last_updated
		FROM user_skills us
		JOIN skills s ON s.id = us.skill_id
		WHERE us.user_id = ?
		ORDER BY us.proficiency %s, s.name ASC`, dir)
	args := []any{userID}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query user skills: %w", err)
	}
	defer rows.Close()

	out := []SkillProficiency{}
	for rows.Next() {
		var sp SkillProficiency
		if err := rows.Scan(&sp.SkillID, &sp.Name, &sp.Category, &sp.Proficiency, &sp.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan user skill: %w", err)
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

func (r *skillRepo) Recommend(ctx context.Context, userID string, limit int) ([]*Challenge, error) {
	weakest, err := r.Weakest(ctx, userID, 3)
	if err != nil {
		return nil, err
	}
	if len(weakest) == 0 {
		return []*Challenge{}, nil
	}

	placeholders := make([]string, len(weakest))
	args := make([]any, 0, len(weakest)+2)
	for i, sp := range weakest {
		placeholders[i] = "?"
		args = append(args, sp.SkillID)
	}
	args = append(args, userID, limit)

	q := fmt.Sprintf(`
		SELECT DISTINCT c.id, c.title, c.description, c.enhanced_prompt,
		       c.difficulty, l.name, c.solution, c.created_at
		FROM challenges c
		JOIN challenge_skills cs ON cs.challenge_id = c.id
		JOIN languages l ON l.id = c.lang_id
		WHERE cs.skill_id IN (%s)
		  AND c.id NOT IN (SELECT challenge_id FROM attempts WHERE user_id = ?)
		ORDER BY c.difficulty ASC, c.created_at ASC
		LIMIT ?`, strings.Join(placeholders, ", "))

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query recommendations: %w", err)
	}
	defer rows.Close()

	out := []*Challenge{}
	for rows.Next() {
		var c Challenge
		var solution sql.NullString
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.EnhancedPrompt,
			&c.Difficulty, &c.Language, &solution, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recommendation: %w", err)
		}
		if solution.Valid {
			c.Solution = solution.String
			c.HasSolution = true
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
