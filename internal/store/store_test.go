package store

import (
	"context"
	"errors"
	"math"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func openSeededStore(t *testing.T) *Store {
	t.Helper()
	s := openTestStore(t)
	if err := s.Seed(context.Background()); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return s
}

func mustCreateUser(t *testing.T, s *Store, username string) *User {
	t.Helper()
	u, err := s.Users().Create(context.Background(), username, "$2a$10$fakehash", "")
	if err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return u
}

func mustCreateChallenge(t *testing.T, s *Store, title string, difficulty int) *Challenge {
	t.Helper()
	c, err := s.Challenges().Create(context.Background(), CreateChallengeParams{
		Title:          title,
		Description:    "description of " + title,
		EnhancedPrompt: "enhanced " + title,
		Difficulty:     difficulty,
		Language:       "Python",
	})
	if err != nil {
		t.Fatalf("create challenge %q: %v", title, err)
	}
	return c
}

func floatPtr(f float64) *float64 { return &f }

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	s := openSeededStore(t)
	ctx := context.Background()

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	catalog, err := s.Skills().List(ctx)
	if err != nil {
		t.Fatalf("list skills: %v", err)
	}
	if len(catalog) < 30 {
		t.Fatalf("expected full skill catalog, got %d skills", len(catalog))
	}
}

func TestUserCreateAndDuplicate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := mustCreateUser(t, s, "alice")
	if u.ID == "" {
		t.Fatal("expected generated id")
	}

	_, err := s.Users().Create(ctx, "alice", "$2a$10$otherhash", "")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got: %v", err)
	}
}

func TestUserCredentialsAndLastLogin(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := mustCreateUser(t, s, "bob")

	creds, err := s.Users().CredentialsByUsername(ctx, "bob")
	if err != nil {
		t.Fatalf("credentials: %v", err)
	}
	if creds.UserID != u.ID || creds.PasswordHash != "$2a$10$fakehash" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}

	if err := s.Users().TouchLastLogin(ctx, u.ID); err != nil {
		t.Fatalf("touch last login: %v", err)
	}
	got, err := s.Users().ByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.LastLogin.IsZero() {
		t.Fatal("expected last_login to be set")
	}

	_, err = s.Users().ByUsername(ctx, "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestChallengeCreateUnknownLanguage(t *testing.T) {
	s := openSeededStore(t)

	_, err := s.Challenges().Create(context.Background(), CreateChallengeParams{
		Title:       "t",
		Description: "d",
		Difficulty:  2,
		Language:    "COBOL-2099",
	})
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage, got: %v", err)
	}
}

func TestChallengeSolutionLifecycle(t *testing.T) {
	s := openSeededStore(t)
	ctx := context.Background()

	c := mustCreateChallenge(t, s, "Reverse a list", 2)
	if c.HasSolution {
		t.Fatal("new challenge should have no solution")
	}

	if err := s.Challenges().SetSolution(ctx, c.ID, "def solve(): pass"); err != nil {
		t.Fatalf("set solution: %v", err)
	}
	got, err := s.Challenges().ByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("get challenge: %v", err)
	}
	if !got.HasSolution || got.Solution != "def solve(): pass" {
		t.Fatalf("unexpected solution state: %+v", got)
	}
}

func TestMapSkillsCreatesAndOverwrites(t *testing.T) {
	s := openSeededStore(t)
	ctx := context.Background()

	c := mustCreateChallenge(t, s, "Graph walk", 3)

	// "Graphs" is seeded; "Quantum Tunneling" is not and must be
	// created lazily under auto_detected.
	err := s.Challenges().MapSkills(ctx, c.ID, map[string]float64{
		"Graphs":            0.9,
		"Quantum Tunneling": 0.4,
	})
	if err != nil {
		t.Fatalf("map skills: %v", err)
	}

	// Re-mapping overwrites relevance rather than duplicating rows.
	err = s.Challenges().MapSkills(ctx, c.ID, map[string]float64{"Graphs": 0.5})
	if err != nil {
		t.Fatalf("remap skills: %v", err)
	}

	weights, err := s.Challenges().SkillWeights(ctx, c.ID)
	if err != nil {
		t.Fatalf("skill weights: %v", err)
	}
	if len(weights) != 2 {
		t.Fatalf("expected 2 skill weights, got %d", len(weights))
	}
	for _, w := range weights {
		if w.Name == "Graphs" && w.Relevance != 0.5 {
			t.Errorf("Graphs relevance = %v, want 0.5", w.Relevance)
		}
	}
}

func TestAttemptNumberingDerivedFromCount(t *testing.T) {
	s := openSeededStore(t)
	ctx := context.Background()

	u := mustCreateUser(t, s, "carol")
	c := mustCreateChallenge(t, s, "Fizzbuzz", 1)

	for want := 1; want <= 3; want++ {
		a, err := s.Attempts().Record(ctx, RecordAttemptParams{
			UserID:      u.ID,
			ChallengeID: c.ID,
			Code:        "print(1)",
			Feedback:    "ok",
			Score:       floatPtr(0.5),
			TimeSpent:   30,
		})
		if err != nil {
			t.Fatalf("record attempt %d: %v", want, err)
		}
		if a.AttemptNumber != want {
			t.Fatalf("attempt number = %d, want %d", a.AttemptNumber, want)
		}
	}

	// A different challenge starts its own numbering.
	other := mustCreateChallenge(t, s, "Sorting", 2)
	a, err := s.Attempts().Record(ctx, RecordAttemptParams{
		UserID: u.ID, ChallengeID: other.ID, Code: "x", Feedback: "f",
	})
	if err != nil {
		t.Fatalf("record attempt: %v", err)
	}
	if a.AttemptNumber != 1 {
		t.Fatalf("attempt number = %d, want 1", a.AttemptNumber)
	}
}

func TestFinalizeIfPassing(t *testing.T) {
	s := openSeededStore(t)
	ctx := context.Background()

	u := mustCreateUser(t, s, "dave")
	c := mustCreateChallenge(t, s, "Binary search", 3)

	record := func(score *float64) {
		t.Helper()
		_, err := s.Attempts().Record(ctx, RecordAttemptParams{
			UserID: u.ID, ChallengeID: c.ID, Code: "code", Feedback: "fb", Score: score,
		})
		if err != nil {
			t.Fatalf("record attempt: %v", err)
		}
	}

	// No attempts at all.
	passed, err := s.Attempts().FinalizeIfPassing(ctx, u.ID, c.ID)
	if err != nil || passed {
		t.Fatalf("expected no pass with no attempts, got passed=%v err=%v", passed, err)
	}

	// Exactly at the threshold does not pass.
	record(floatPtr(0.8))
	passed, err = s.Attempts().FinalizeIfPassing(ctx, u.ID, c.ID)
	if err != nil || passed {
		t.Fatalf("expected 0.8 to not pass, got passed=%v err=%v", passed, err)
	}

	record(floatPtr(0.85))
	passed, err = s.Attempts().FinalizeIfPassing(ctx, u.ID, c.ID)
	if err != nil || !passed {
		t.Fatalf("expected pass at 0.85, got passed=%v err=%v", passed, err)
	}

	attempts, err := s.Attempts().ForChallenge(ctx, u.ID, c.ID)
	if err != nil {
		t.Fatalf("list attempts: %v", err)
	}
	var marked int
	for _, a := range attempts {
		if a.Successful {
			marked++
		}
	}
	if marked != 1 {
		t.Fatalf("expected exactly one successful attempt, got %d", marked)
	}
}

func TestApplyAttemptProficiencyMath(t *testing.T) {
	s := openSeededStore(t)
	ctx := context.Background()

	u := mustCreateUser(t, s, "erin")
	c := mustCreateChallenge(t, s, "Linked lists", 2)
	if err := s.Challenges().MapSkills(ctx, c.ID, map[string]float64{"Linked Lists": 0.9}); err != nil {
		t.Fatalf("map skills: %v", err)
	}

	// First attempt: initial = score * relevance = 0.4 * 0.9 = 0.36.
	if err := s.Skills().ApplyAttempt(ctx, u.ID, c.ID, 0.4); err != nil {
		t.Fatalf("apply attempt: %v", err)
	}
	profs, err := s.Skills().Proficiencies(ctx, u.ID)
	if err != nil {
		t.Fatalf("proficiencies: %v", err)
	}
	if len(profs) != 1 {
		t.Fatalf("expected 1 tracked skill, got %d", len(profs))
	}
	if math.Abs(profs[0].Proficiency-0.36) > 1e-9 {
		t.Fatalf("initial proficiency = %v, want 0.36", profs[0].Proficiency)
	}

	// Second attempt: 0.36*0.7 + 0.8*0.9*0.3 = 0.468.
	if err := s.Skills().ApplyAttempt(ctx, u.ID, c.ID, 0.8); err != nil {
		t.Fatalf("apply attempt: %v", err)
	}
	profs, err = s.Skills().Proficiencies(ctx, u.ID)
	if err != nil {
		t.Fatalf("proficiencies: %v", err)
	}
	if math.Abs(profs[0].Proficiency-0.468) > 1e-9 {
		t.Fatalf("updated proficiency = %v, want 0.468", profs[0].Proficiency)
	}
}

func TestRecommendations(t *testing.T) {
	s := openSeededStore(t)
	ctx := context.Background()

	u := mustCreateUser(t, s, "frank")

	// New user with no proficiency history gets nothing.
	recs, err := s.Skills().Recommend(ctx, u.ID, 5)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no recommendations for new user, got %d", len(recs))
	}

	attempted := mustCreateChallenge(t, s, "Attempted one", 1)
	easy := mustCreateChallenge(t, s, "Easy one", 1)
	hard := mustCreateChallenge(t, s, "Hard one", 4)
	unrelated := mustCreateChallenge(t, s, "Unrelated", 1)

	for _, c := range []*Challenge{attempted, easy, hard} {
		if err := s.Challenges().MapSkills(ctx, c.ID, map[string]float64{"Recursion": 0.8}); err != nil {
			t.Fatalf("map skills: %v", err)
		}
	}
	if err := s.Challenges().MapSkills(ctx, unrelated.ID, map[string]float64{"Sorting": 0.8}); err != nil {
		t.Fatalf("map skills: %v", err)
	}

	// One weak skill: Recursion.
	if err := s.Skills().ApplyAttempt(ctx, u.ID, attempted.ID, 0.3); err != nil {
		t.Fatalf("apply attempt: %v", err)
	}
	if _, err := s.Attempts().Record(ctx, RecordAttemptParams{
		UserID: u.ID, ChallengeID: attempted.ID, Code: "x", Feedback: "f", Score: floatPtr(0.3),
	}); err != nil {
		t.Fatalf("record attempt: %v", err)
	}

	recs, err = s.Skills().Recommend(ctx, u.ID, 5)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	// Easiest first, attempted and unrelated excluded.
	if recs[0].ID != easy.ID || recs[1].ID != hard.ID {
		t.Fatalf("unexpected order: %q then %q", recs[0].Title, recs[1].Title)
	}
}

func TestLearningPathGetOrCreate(t *testing.T) {
	s := openSeededStore(t)
	ctx := context.Background()

	params := CreatePathParams{
		Title:       "Python Basics",
		Description: "Start here",
		Difficulty:  1,
		Language:    "Python",
	}
	first, err := s.Paths().GetOrCreate(ctx, params)
	if err != nil {
		t.Fatalf("create path: %v", err)
	}
	second, err := s.Paths().GetOrCreate(ctx, params)
	if err != nil {
		t.Fatalf("get path: %v", err)
	}
	if first.ID != second.ID {
		t.Fatal("expected same path for same title and language")
	}

	c1 := mustCreateChallenge(t, s, "Step one", 1)
	c2 := mustCreateChallenge(t, s, "Step two", 2)
	if err := s.Paths().AddChallenge(ctx, first.ID, c2.ID, 2); err != nil {
		t.Fatalf("add challenge: %v", err)
	}
	if err := s.Paths().AddChallenge(ctx, first.ID, c1.ID, 1); err != nil {
		t.Fatalf("add challenge: %v", err)
	}

	items, err := s.Paths().Challenges(ctx, first.ID)
	if err != nil {
		t.Fatalf("path challenges: %v", err)
	}
	if len(items) != 2 || items[0].ID != c1.ID || items[1].ID != c2.ID {
		t.Fatalf("expected position order, got %+v", items)
	}
}

func TestProgressSummary(t *testing.T) {
	s := openSeededStore(t)
	ctx := context.Background()

	u := mustCreateUser(t, s, "grace")
	c := mustCreateChallenge(t, s, "Hash maps", 2)
	if err := s.Challenges().MapSkills(ctx, c.ID, map[string]float64{"Hash Tables": 1.0}); err != nil {
		t.Fatalf("map skills: %v", err)
	}

	for _, score := range []float64{0.6, 0.9} {
		if _, err := s.Attempts().Record(ctx, RecordAttemptParams{
			UserID: u.ID, ChallengeID: c.ID, Code: "x", Feedback: "f", Score: floatPtr(score),
		}); err != nil {
			t.Fatalf("record attempt: %v", err)
		}
		if err := s.Skills().ApplyAttempt(ctx, u.ID, c.ID, score); err != nil {
			t.Fatalf("apply attempt: %v", err)
		}
	}
	if _, err := s.Attempts().FinalizeIfPassing(ctx, u.ID, c.ID); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	sum, err := s.Progress().Summary(ctx, u.ID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.TotalAttempts != 2 {
		t.Errorf("total attempts = %d, want 2", sum.TotalAttempts)
	}
	if sum.CompletedChallenges != 1 {
		t.Errorf("completed challenges = %d, want 1", sum.CompletedChallenges)
	}
	if math.Abs(sum.AverageScore-0.75) > 1e-9 {
		t.Errorf("average score = %v, want 0.75", sum.AverageScore)
	}
	if sum.SkillsTracked != 1 {
		t.Errorf("skills tracked = %d, want 1", sum.SkillsTracked)
	}
}
