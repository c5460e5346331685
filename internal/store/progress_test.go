package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// seedActivity records a few scored attempts across two challenges of
// different difficulty so every aggregation has data.
func seedActivity(t *testing.T, s *Store) (userID string, skillID int) {
	t.Helper()
	ctx := context.Background()

	u := mustCreateUser(t, s, "harry")
	easy := mustCreateChallenge(t, s, "Two sum", 1)
	hard := mustCreateChallenge(t, s, "Dijkstra", 4)

	require.NoError(t, s.Challenges().MapSkills(ctx, easy.ID, map[string]float64{"Graphs": 0.6}))
	require.NoError(t, s.Challenges().MapSkills(ctx, hard.ID, map[string]float64{"Graphs": 1.0}))

	for _, a := range []struct {
		challenge string
		score     float64
	}{
		{easy.ID, 0.9},
		{easy.ID, 0.95},
		{hard.ID, 0.4},
	} {
		_, err := s.Attempts().Record(ctx, RecordAttemptParams{
			UserID: u.ID, ChallengeID: a.challenge, Code: "code", Feedback: "fb",
			Score: floatPtr(a.score), TimeSpent: 60,
		})
		require.NoError(t, err)
	}
	_, err := s.Attempts().FinalizeIfPassing(ctx, u.ID, easy.ID)
	require.NoError(t, err)

	weights, err := s.Challenges().SkillWeights(ctx, easy.ID)
	require.NoError(t, err)
	require.Len(t, weights, 1)
	return u.ID, weights[0].SkillID
}

func TestDailyActivity(t *testing.T) {
	s := openSeededStore(t)
	userID, _ := seedActivity(t, s)

	series, err := s.Progress().DailyActivity(context.Background(), userID, 7)
	require.NoError(t, err)
	require.Len(t, series, 1, "all attempts happened today")
	require.Equal(t, 3, series[0].Attempts)
	require.InDelta(t, 0.75, series[0].AverageScore, 1e-9)
}

func TestHourlyAndWeekdayActivity(t *testing.T) {
	s := openSeededStore(t)
	userID, _ := seedActivity(t, s)
	ctx := context.Background()

	hourly, err := s.Progress().HourlyActivity(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, hourly)
	total := 0
	for _, b := range hourly {
		total += b.Attempts
	}
	require.Equal(t, 3, total)

	weekday, err := s.Progress().WeekdayActivity(ctx, userID)
	require.NoError(t, err)
	require.Len(t, weekday, 1)
	require.Contains(t, []string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	}, weekday[0].Label)
}

func TestDifficultyPerformance(t *testing.T) {
	s := openSeededStore(t)
	userID, _ := seedActivity(t, s)

	stats, err := s.Progress().DifficultyPerformance(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	require.Equal(t, 1, stats[0].Difficulty)
	require.Equal(t, 2, stats[0].Attempts)
	require.Equal(t, 1, stats[0].Completions)

	require.Equal(t, 4, stats[1].Difficulty)
	require.Equal(t, 1, stats[1].Attempts)
	require.Equal(t, 0, stats[1].Completions)
}

func TestChallengeBreakdown(t *testing.T) {
	s := openSeededStore(t)
	userID, _ := seedActivity(t, s)

	stats, err := s.Progress().ChallengeBreakdown(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	byTitle := map[string]ChallengeStats{}
	for _, c := range stats {
		byTitle[c.Title] = c
	}

	easy := byTitle["Two sum"]
	require.Equal(t, 2, easy.Attempts)
	require.InDelta(t, 0.95, easy.BestScore, 1e-9)
	require.InDelta(t, 60, easy.AverageTime, 1e-9)
	require.True(t, easy.Completed)

	hard := byTitle["Dijkstra"]
	require.Equal(t, 1, hard.Attempts)
	require.InDelta(t, 0.4, hard.BestScore, 1e-9)
	require.False(t, hard.Completed)
}

func TestSkillsByCategory(t *testing.T) {
	s := openSeededStore(t)
	userID, _ := seedActivity(t, s)
	ctx := context.Background()

	// Fold one attempt into proficiency so a category shows up.
	easyAttempts, err := s.Attempts().Recent(ctx, userID, 1)
	require.NoError(t, err)
	require.NotEmpty(t, easyAttempts)
	require.NoError(t, s.Skills().ApplyAttempt(ctx, userID, easyAttempts[0].ChallengeID, 0.8))

	cats, err := s.Progress().SkillsByCategory(ctx, userID)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	require.Equal(t, "data_structure", cats[0].Category)
	require.Equal(t, 1, cats[0].SkillsTracked)
}

func TestSkillHistory(t *testing.T) {
	s := openSeededStore(t)
	userID, skillID := seedActivity(t, s)

	points, err := s.Progress().SkillHistory(context.Background(), userID, skillID)
	require.NoError(t, err)
	// Both challenges map the same skill, so all three scored attempts appear.
	require.Len(t, points, 3)
	scores := []float64{points[0].Score, points[1].Score, points[2].Score}
	require.ElementsMatch(t, []float64{0.9, 0.95, 0.4}, scores)
}
