package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/praxislabs/praxis/ent"
	entlanguage "github.com/praxislabs/praxis/ent/language"
	entpath "github.com/praxislabs/praxis/ent/learningpath"
	entitem "github.com/praxislabs/praxis/ent/learningpathitem"
)

// PathRepo provides access to learning paths.
type PathRepo interface {
	// GetOrCreate returns the existing path with the same title and
	// language, or creates a new one. Re-requesting a path never
	// duplicates it.
	GetOrCreate(ctx context.Context, p CreatePathParams) (*LearningPath, error)

	// AddChallenge places a challenge at a position within a path.
	// Re-adding an existing pair updates its position.
	AddChallenge(ctx context.Context, pathID, challengeID string, position int) error

	// Challenges returns a path's challenges in position order.
	Challenges(ctx context.Context, pathID string) ([]PathChallenge, error)

	// ByLanguage lists paths for a language, easiest first.
	ByLanguage(ctx context.Context, language string) ([]*LearningPath, error)
}

// CreatePathParams holds the fields for a new learning path.
type CreatePathParams struct {
	Title       string
	Description string
	Difficulty  int
	Language    string
}

type pathRepo struct {
	client *ent.Client
	db     *sql.DB
}

func (r *pathRepo) GetOrCreate(ctx context.Context, p CreatePathParams) (*LearningPath, error) {
	lang, err := r.client.Language.Query().
		Where(entlanguage.Name(p.Language)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("language %q: %w", p.Language, ErrUnknownLanguage)
		}
		return nil, fmt.Errorf("query language: %w", err)
	}

	existing, err := r.client.LearningPath.Query().
		Where(
			entpath.Title(p.Title),
			entpath.LangID(lang.ID),
		).
		Only(ctx)
	if err == nil {
		return pathFromEnt(existing, lang.Name), nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query learning path: %w", err)
	}

	row, err := r.client.LearningPath.Create().
		SetID(uuid.NewString()).
		SetTitle(p.Title).
		SetDescription(p.Description).
		SetDifficulty(p.Difficulty).
		SetLangID(lang.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create learning path: %w", err)
	}
	return pathFromEnt(row, lang.Name), nil
}

func (r *pathRepo) AddChallenge(ctx context.Context, pathID, challengeID string, position int) error {
	existing, err := r.client.LearningPathItem.Query().
		Where(
			entitem.PathID(pathID),
			entitem.ChallengeID(challengeID),
		).
		Only(ctx)
	switch {
	case err == nil:
		if err := r.client.LearningPathItem.UpdateOne(existing).
			SetPosition(position).
			Exec(ctx); err != nil {
			return fmt.Errorf("update path item: %w", err)
		}
		return nil
	case ent.IsNotFound(err):
		if _, err := r.client.LearningPathItem.Create().
			SetPathID(pathID).
			SetChallengeID(challengeID).
			SetPosition(position).
			Save(ctx); err != nil {
			return fmt.Errorf("add path item: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("query path item: %w", err)
	}
}

func (r *pathRepo) Challenges(ctx context.Context, pathID string) ([]PathChallenge, error) {
	q := `
		SELECT c.id, c.title, c.description, c.enhanced_prompt,
		       c.difficulty, l.name, c.solution, c.created_at, i.position
		FROM learning_path_items i
		JOIN challenges c ON c.id = i.challenge_id
		JOIN languages l ON l.id = c.lang_id
		WHERE i.path_id = ?
		ORDER BY i.position ASC`

	rows, err := r.db.QueryContext(ctx, q, pathID)
	if err != nil {
		return nil, fmt.Errorf("query path challenges: %w", err)
	}
	defer rows.Close()

	out := []PathChallenge{}
	for rows.Next() {
		var pc PathChallenge
		var solution sql.NullString
		if err := rows.Scan(&pc.ID, &pc.Title, &pc.Description, &pc.EnhancedPrompt,
			&pc.Difficulty, &pc.Language, &solution, &pc.CreatedAt, &pc.Position); err != nil {
			return nil, fmt.Errorf("scan path challenge: %w", err)
		}
		if solution.Valid {
			pc.Solution = solution.String
			pc.HasSolution = true
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}

func (r *pathRepo) ByLanguage(ctx context.Context, language string) ([]*LearningPath, error) {
	lang, err := r.client.Language.Query().
		Where(entlanguage.Name(language)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("language %q: %w", language, ErrUnknownLanguage)
		}
		return nil, fmt.Errorf("query language: %w", err)
	}

	rows, err := r.client.LearningPath.Query().
		Where(entpath.LangID(lang.ID)).
		Order(ent.Asc(entpath.FieldDifficulty), ent.Asc(entpath.FieldTitle)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query learning paths: %w", err)
	}

	out := make([]*LearningPath, len(rows))
	for i, row := range rows {
		out[i] = pathFromEnt(row, lang.Name)
	}
	return out, nil
}

func pathFromEnt(row *ent.LearningPath, language string) *LearningPath {
	return &LearningPath{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Difficulty:  row.Difficulty,
		Language:    language,
	}
}
