package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/praxislabs/praxis/ent"
	entcs "github.com/praxislabs/praxis/ent/challengeskill"
	entlanguage "github.com/praxislabs/praxis/ent/language"
	entskill "github.com/praxislabs/praxis/ent/skill"
	"github.com/praxislabs/praxis/internal/skills"
)

// ChallengeRepo provides access to challenges and their skill mappings.
type ChallengeRepo interface {
	// Create inserts a new challenge for the named language. Returns
	// ErrUnknownLanguage when the language is not in the catalog.
	Create(ctx context.Context, p CreateChallengeParams) (*Challenge, error)

	// ByID fetches a challenge by id. Returns ErrNotFound when absent.
	ByID(ctx context.Context, id string) (*Challenge, error)

	// SetSolution stores the reference solution. It is a plain write;
	// callers decide whether a solution already exists via ByID.
	SetSolution(ctx context.Context, id, solution string) error

	// MapSkills associates skills with a challenge, creating unknown
	// skills on the fly under the auto_detected category. Re-mapping an
	// existing pair overwrites its relevance.
	MapSkills(ctx context.Context, challengeID string, weights map[string]float64) error

	// SkillWeights returns the skills mapped to a challenge.
	SkillWeights(ctx context.Context, challengeID string) ([]SkillWeight, error)
}

// CreateChallengeParams holds the fields for a new challenge.
type CreateChallengeParams struct {
	Title          string
	Description    string
	EnhancedPrompt string
	Difficulty     int
	Language       string
}

type challengeRepo struct {
	client *ent.Client
}

func (r *challengeRepo) Create(ctx context.Context, p CreateChallengeParams) (*Challenge, error) {
	lang, err := r.client.Language.Query().
		Where(entlanguage.Name(p.Language)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("language %q: %w", p.Language, ErrUnknownLanguage)
		}
		return nil, fmt.Errorf("query language: %w", err)
	}

	row, err := r.client.Challenge.Create().
		SetID(uuid.NewString()).
		SetTitle(p.Title).
		SetDescription(p.Description).
		SetEnhancedPrompt(p.EnhancedPrompt).
		SetDifficulty(p.Difficulty).
		SetLangID(lang.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create challenge: %w", err)
	}
	return challengeFromEnt(row, lang.Name), nil
}

func (r *challengeRepo) ByID(ctx context.Context, id string) (*Challenge, error) {
	row, err := r.client.Challenge.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("challenge %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get challenge: %w", err)
	}
	lang, err := r.client.Language.Get(ctx, row.LangID)
	if err != nil {
		return nil, fmt.Errorf("get language %d: %w", row.LangID, err)
	}
	return challengeFromEnt(row, lang.Name), nil
}

func (r *challengeRepo) SetSolution(ctx context.Context, id, solution string) error {
	err := r.client.Challenge.UpdateOneID(id).
		SetSolution(solution).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("challenge %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("set solution: %w", err)
	}
	return nil
}

func (r *challengeRepo) MapSkills(ctx context.Context, challengeID string, weights map[string]float64) error {
	for name, relevance := range weights {
		skillID, err := r.ensureSkill(ctx, name)
		if err != nil {
			return err
		}

		existing, err := r.client.ChallengeSkill.Query().
			Where(
				entcs.ChallengeID(challengeID),
				entcs.SkillID(skillID),
			).
			Only(ctx)
		switch {
		case err == nil:
			if err := r.client.ChallengeSkill.UpdateOne(existing).
				SetRelevance(relevance).
				Exec(ctx); err != nil {
				return fmt.Errorf("update relevance for skill %q: %w", name, err)
			}
		case ent.IsNotFound(err):
			if _, err := r.client.ChallengeSkill.Create().
				SetChallengeID(challengeID).
				SetSkillID(skillID).
				SetRelevance(relevance).
				Save(ctx); err != nil {
				return fmt.Errorf("map skill %q: %w", name, err)
			}
		default:
			return fmt.Errorf("query challenge skill: %w", err)
		}
	}
	return nil
}

func (r *challengeRepo) SkillWeights(ctx context.Context, challengeID string) ([]SkillWeight, error) {
	rows, err := r.client.ChallengeSkill.Query().
		Where(entcs.ChallengeID(challengeID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query challenge skills: %w", err)
	}

	weights := make([]SkillWeight, 0, len(rows))
	for _, row := range rows {
		sk, err := r.client.Skill.Get(ctx, row.SkillID)
		if err != nil {
			return nil, fmt.Errorf("get skill %d: %w", row.SkillID, err)
		}
		weights = append(weights, SkillWeight{
			SkillID:   sk.ID,
			Name:      sk.Name,
			Relevance: row.Relevance,
		})
	}
	return weights, nil
}

// ensureSkill returns the id of the named skill, creating it under the
// auto_detected category if it's not in the catalog. Lookup is by exact
// name; "recursion" and "Recursion" are distinct skills.
func (r *challengeRepo) ensureSkill(ctx context.Context, name string) (int, error) {
	sk, err := r.client.Skill.Query().
		Where(entskill.Name(name)).
		Only(ctx)
	if err == nil {
		return sk.ID, nil
	}
	if !ent.IsNotFound(err) {
		return 0, fmt.Errorf("query skill %q: %w", name, err)
	}

	created, err := r.client.Skill.Create().
		SetName(name).
		SetCategory(string(skills.CategoryAutoDetected)).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("create skill %q: %w", name, err)
	}
	return created.ID, nil
}

func challengeFromEnt(row *ent.Challenge, language string) *Challenge {
	c := &Challenge{
		ID:             row.ID,
		Title:          row.Title,
		Description:    row.Description,
		EnhancedPrompt: row.EnhancedPrompt,
		Difficulty:     row.Difficulty,
		Language:       language,
		CreatedAt:      row.CreatedAt,
	}
	if row.Solution != nil {
		c.Solution = *row.Solution
		c.HasSolution = true
	}
	return c
}
