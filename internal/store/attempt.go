package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/praxislabs/praxis/ent"
	entattempt "github.com/praxislabs/praxis/ent/attempt"
)

// SuccessThreshold is the score above which an attempt counts as a
// completed challenge. Strictly greater: a score of exactly 0.8 does
// not pass.
const SuccessThreshold = 0.8

// AttemptRepo provides access to code submissions.
type AttemptRepo interface {
	// Record inserts a new attempt. The attempt number is derived from
	// the count of prior attempts for the same user and challenge, so
	// callers never supply it.
	Record(ctx context.Context, p RecordAttemptParams) (*Attempt, error)

	// FinalizeIfPassing marks the user's best attempt at a challenge as
	// successful when its score clears SuccessThreshold. Returns whether
	// the challenge is now passed. Unscored attempts are ignored.
	FinalizeIfPassing(ctx context.Context, userID, challengeID string) (bool, error)

	// ForChallenge returns a user's attempts at one challenge, oldest first.
	ForChallenge(ctx context.Context, userID, challengeID string) ([]*Attempt, error)

	// Recent returns a user's latest attempts across all challenges,
	// newest first.
	Recent(ctx context.Context, userID string, limit int) ([]*Attempt, error)
}

// RecordAttemptParams holds the fields for a new attempt. Score is nil
// when the oracle could not produce one.
type RecordAttemptParams struct {
	UserID      string
	ChallengeID string
	Code        string
	Feedback    string
	Score       *float64
	TimeSpent   int
}

type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Record(ctx context.Context, p RecordAttemptParams) (*Attempt, error) {
	prior, err := r.client.Attempt.Query().
		Where(
			entattempt.UserID(p.UserID),
			entattempt.ChallengeID(p.ChallengeID),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count prior attempts: %w", err)
	}

	create := r.client.Attempt.Create().
		SetID(uuid.NewString()).
		SetUserID(p.UserID).
		SetChallengeID(p.ChallengeID).
		SetCode(p.Code).
		SetFeedback(p.Feedback).
		SetTimeSpent(p.TimeSpent).
		SetAttemptNumber(prior + 1)
	if p.Score != nil {
		create = create.SetScore(*p.Score)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}
	return attemptFromEnt(row), nil
}

func (r *attemptRepo) FinalizeIfPassing(ctx context.Context, userID, challengeID string) (bool, error) {
	best, err := r.client.Attempt.Query().
		Where(
			entattempt.UserID(userID),
			entattempt.ChallengeID(challengeID),
			entattempt.ScoreNotNil(),
		).
		Order(ent.Desc(entattempt.FieldScore)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("query best attempt: %w", err)
	}

	if best.Score == nil || *best.Score <= SuccessThreshold {
		return false, nil
	}
	if best.Successful {
		return true, nil
	}

	if err := r.client.Attempt.UpdateOne(best).
		SetSuccessful(true).
		Exec(ctx); err != nil {
		return false, fmt.Errorf("mark attempt successful: %w", err)
	}
	return true, nil
}

func (r *attemptRepo) ForChallenge(ctx context.Context, userID, challengeID string) ([]*Attempt, error) {
	rows, err := r.client.Attempt.Query().
		Where(
			entattempt.UserID(userID),
			entattempt.ChallengeID(challengeID),
		).
		Order(ent.Asc(entattempt.FieldAttemptNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	return attemptsFromEnt(rows), nil
}

func (r *attemptRepo) Recent(ctx context.Context, userID string, limit int) ([]*Attempt, error) {
	rows, err := r.client.Attempt.Query().
		Where(entattempt.UserID(userID)).
		Order(ent.Desc(entattempt.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}
	return attemptsFromEnt(rows), nil
}

func attemptFromEnt(row *ent.Attempt) *Attempt {
	return &Attempt{
		ID:            row.ID,
		UserID:        row.UserID,
		ChallengeID:   row.ChallengeID,
		Code:          row.Code,
		Feedback:      row.Feedback,
		Score:         row.Score,
		TimeSpent:     row.TimeSpent,
		AttemptNumber: row.AttemptNumber,
		Successful:    row.Successful,
		CreatedAt:     row.CreatedAt,
	}
}

func attemptsFromEnt(rows []*ent.Attempt) []*Attempt {
	out := make([]*Attempt, len(rows))
	for i, row := range rows {
		out[i] = attemptFromEnt(row)
	}
	return out
}
