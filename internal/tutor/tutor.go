// Package tutor is the service layer: it sequences oracle calls and
// store writes into the learning workflows. All state a method needs
// arrives as parameters; nothing is carried between calls.
package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/praxislabs/praxis/internal/assistant"
	"github.com/praxislabs/praxis/internal/evaluate"
	"github.com/praxislabs/praxis/internal/store"
)

// ErrNoSkillHistory indicates the user has no tracked proficiencies
// yet, so there is nothing to base a learning path on.
var ErrNoSkillHistory = errors.New("no skill history for user")

// DefaultDifficulty applies when a challenge is created without one.
const DefaultDifficulty = 2

// pathSkillRelevance is the relevance assigned to skills the oracle
// names for a planned path challenge.
const pathSkillRelevance = 0.8

// Service ties the store and the assistant together.
type Service struct {
	store  *store.Store
	oracle *assistant.Assistant
	log    *zap.SugaredLogger
}

// New creates a Service.
func New(st *store.Store, oracle *assistant.Assistant, log *zap.SugaredLogger) *Service {
	return &Service{store: st, oracle: oracle, log: log}
}

// StartChallengeParams describes a new challenge request.
type StartChallengeParams struct {
	Prompt     string
	Language   string
	Difficulty int
}

// StartedChallenge is the result of starting a challenge: the stored
// row plus the mentor guidance shown to the learner.
type StartedChallenge struct {
	Challenge *store.Challenge
	Guidance  string
	Skills    map[string]float64
}

// StartChallenge runs the challenge creation pipeline: enhance the
// prompt, generate mentor guidance, persist the challenge and tag it
// with oracle-identified skills.
func (s *Service) StartChallenge(ctx context.Context, p StartChallengeParams) (*StartedChallenge, error) {
	enhanced, err := s.oracle.EnhancePrompt(ctx, p.Prompt)
	if err != nil {
		return nil, fmt.Errorf("enhance prompt: %w", err)
	}

	guidance, err := s.oracle.GenerateChallenge(ctx, enhanced)
	if err != nil {
		return nil, fmt.Errorf("generate challenge: %w", err)
	}

	challenge, err := s.store.Challenges().Create(ctx, store.CreateChallengeParams{
		Title:          titleFromPrompt(p.Prompt),
		Description:    p.Prompt,
		EnhancedPrompt: enhanced,
		Difficulty:     clampDifficulty(p.Difficulty),
		Language:       p.Language,
	})
	if err != nil {
		return nil, err
	}

	skills, err := s.oracle.IdentifySkills(ctx, enhanced)
	if err != nil {
		return nil, fmt.Errorf("identify skills: %w", err)
	}
	if len(skills) > 0 {
		if err := s.store.Challenges().MapSkills(ctx, challenge.ID, skills); err != nil {
			return nil, err
		}
	}

	s.log.Infow("challenge started",
		"challenge_id", challenge.ID,
		"language", p.Language,
		"skills", len(skills),
	)
	return &StartedChallenge{Challenge: challenge, Guidance: guidance, Skills: skills}, nil
}

// EnsureSolution returns the challenge's reference solution, generating
// and persisting it on first request. Later calls reuse the stored
// solution; the oracle is consulted at most once per challenge.
func (s *Service) EnsureSolution(ctx context.Context, challengeID string) (string, error) {
	challenge, err := s.store.Challenges().ByID(ctx, challengeID)
	if err != nil {
		return "", err
	}
	if challenge.HasSolution {
		return challenge.Solution, nil
	}

	solution, err := s.oracle.GenerateSolution(ctx, challenge.EnhancedPrompt)
	if err != nil {
		return "", fmt.Errorf("generate solution: %w", err)
	}
	if err := s.store.Challenges().SetSolution(ctx, challengeID, solution); err != nil {
		return "", err
	}
	s.log.Infow("solution generated", "challenge_id", challengeID)
	return solution, nil
}

// Flowchart returns a Mermaid diagram of the solution approach.
func (s *Service) Flowchart(ctx context.Context, challengeID string) (string, error) {
	challenge, err := s.store.Challenges().ByID(ctx, challengeID)
	if err != nil {
		return "", err
	}
	return s.oracle.GenerateFlowchart(ctx, challenge.EnhancedPrompt)
}

// SubmitAttemptParams describes a code submission.
type SubmitAttemptParams struct {
	UserID      string
	ChallengeID string
	Code        string
	TimeSpent   int
}

// AttemptReport is everything the learner sees after submitting.
type AttemptReport struct {
	Attempt    *store.Attempt
	Feedback   string
	Evaluation evaluate.Result
	Passed     bool
}

// SubmitAttempt runs the grading pipeline: generate feedback, score
// against the reference solution, gather quality and test signals,
// record the attempt, fold the score into skill proficiencies and
// finalize the challenge when the score clears the pass bar.
func (s *Service) SubmitAttempt(ctx context.Context, p SubmitAttemptParams) (*AttemptReport, error) {
	challenge, err := s.store.Challenges().ByID(ctx, p.ChallengeID)
	if err != nil {
		return nil, err
	}
	solution, err := s.EnsureSolution(ctx, p.ChallengeID)
	if err != nil {
		return nil, err
	}

	feedback, err := s.oracle.AnalyzeAttempt(ctx, challenge.EnhancedPrompt, p.Code)
	if err != nil {
		return nil, fmt.Errorf("analyze attempt: %w", err)
	}
	score, err := s.oracle.ScoreAttempt(ctx, p.Code, solution, challenge.Language)
	if err != nil {
		return nil, fmt.Errorf("score attempt: %w", err)
	}
	analysis, err := s.oracle.AnalyzeCode(ctx, p.Code, challenge.Language)
	if err != nil {
		return nil, fmt.Errorf("analyze code: %w", err)
	}
	cases, err := s.oracle.GenerateTestCases(ctx, challenge.EnhancedPrompt, solution)
	if err != nil {
		return nil, fmt.Errorf("generate test cases: %w", err)
	}
	testResults := evaluate.CheckTestCases(p.Code, cases, strings.ToLower(challenge.Language))

	evaluation := evaluate.Completion(evaluate.Input{
		Code:        p.Code,
		Solution:    solution,
		Score:       score,
		Difficulty:  challenge.Difficulty,
		Quality:     &analysis.Quality,
		TestResults: testResults,
	})

	attempt, err := s.store.Attempts().Record(ctx, store.RecordAttemptParams{
		UserID:      p.UserID,
		ChallengeID: p.ChallengeID,
		Code:        p.Code,
		Feedback:    feedback,
		Score:       &score,
		TimeSpent:   p.TimeSpent,
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.Skills().ApplyAttempt(ctx, p.UserID, p.ChallengeID, score); err != nil {
		return nil, err
	}

	passed, err := s.store.Attempts().FinalizeIfPassing(ctx, p.UserID, p.ChallengeID)
	if err != nil {
		return nil, err
	}

	s.log.Infow("attempt submitted",
		"user_id", p.UserID,
		"challenge_id", p.ChallengeID,
		"attempt_number", attempt.AttemptNumber,
		"score", score,
		"passed", passed,
	)
	return &AttemptReport{
		Attempt:    attempt,
		Feedback:   feedback,
		Evaluation: evaluation,
		Passed:     passed,
	}, nil
}

// Recommend returns unattempted challenges targeting the user's
// weakest skills, easiest first.
func (s *Service) Recommend(ctx context.Context, userID string, limit int) ([]*store.Challenge, error) {
	return s.store.Skills().Recommend(ctx, userID, limit)
}

// SkillReport is the oracle's narrative assessment of a learner.
type SkillReport struct {
	Analysis        string
	Recommendations string
	Strongest       []store.SkillProficiency
	Weakest         []store.SkillProficiency
}

// AssessSkills produces a strengths/weaknesses narrative plus study
// recommendations. Returns ErrNoSkillHistory for untracked users.
func (s *Service) AssessSkills(ctx context.Context, userID string) (*SkillReport, error) {
	weakest, err := s.store.Skills().Weakest(ctx, userID, 5)
	if err != nil {
		return nil, err
	}
	if len(weakest) == 0 {
		return nil, ErrNoSkillHistory
	}
	strongest, err := s.store.Skills().Strongest(ctx, userID, 5)
	if err != nil {
		return nil, err
	}

	analysis, err := s.oracle.SkillAssessment(ctx, standings(strongest), standings(weakest))
	if err != nil {
		return nil, fmt.Errorf("skill assessment: %w", err)
	}
	recs, err := s.oracle.Recommendations(ctx, standings(weakest))
	if err != nil {
		return nil, fmt.Errorf("recommendations: %w", err)
	}
	return &SkillReport{
		Analysis:        analysis,
		Recommendations: recs,
		Strongest:       strongest,
		Weakest:         weakest,
	}, nil
}

// BuildLearningPath asks the oracle for a challenge progression
// targeting the user's three weakest skills, then materializes it:
// each planned challenge is enhanced, stored, skill-tagged and placed
// on the path in order. Returns ErrNoSkillHistory for untracked users.
func (s *Service) BuildLearningPath(ctx context.Context, userID, language string) (*store.LearningPath, error) {
	weakest, err := s.store.Skills().Weakest(ctx, userID, 3)
	if err != nil {
		return nil, err
	}
	if len(weakest) == 0 {
		return nil, ErrNoSkillHistory
	}

	names := make([]string, len(weakest))
	for i, sp := range weakest {
		names[i] = sp.Name
	}

	specs, err := s.oracle.PlanLearningPath(ctx, language, names)
	if err != nil {
		return nil, fmt.Errorf("plan learning path: %w", err)
	}

	titleSkills := names
	if len(titleSkills) > 2 {
		titleSkills = titleSkills[:2]
	}
	path, err := s.store.Paths().GetOrCreate(ctx, store.CreatePathParams{
		Title:       "Improving " + strings.Join(titleSkills, ", "),
		Description: "A personalized learning path to improve skills in " + strings.Join(names, ", "),
		Difficulty:  DefaultDifficulty,
		Language:    language,
	})
	if err != nil {
		return nil, err
	}

	for i, spec := range specs {
		desc := fmt.Sprintf("Create code in %s that: %s", language, spec.Description)
		enhanced, err := s.oracle.EnhancePrompt(ctx, desc)
		if err != nil {
			return nil, fmt.Errorf("enhance path challenge: %w", err)
		}

		challenge, err := s.store.Challenges().Create(ctx, store.CreateChallengeParams{
			Title:          spec.Title,
			Description:    desc,
			EnhancedPrompt: enhanced,
			Difficulty:     clampDifficulty(spec.Difficulty),
			Language:       language,
		})
		if err != nil {
			return nil, err
		}

		if len(spec.Skills) > 0 {
			weights := make(map[string]float64, len(spec.Skills))
			for _, name := range spec.Skills {
				weights[name] = pathSkillRelevance
			}
			if err := s.store.Challenges().MapSkills(ctx, challenge.ID, weights); err != nil {
				return nil, err
			}
		}

		if err := s.store.Paths().AddChallenge(ctx, path.ID, challenge.ID, i); err != nil {
			return nil, err
		}
	}

	s.log.Infow("learning path built",
		"path_id", path.ID,
		"user_id", userID,
		"challenges", len(specs),
	)
	return path, nil
}

// Review returns the oracle's structured quality review of some code.
func (s *Service) Review(ctx context.Context, code string) (json.RawMessage, error) {
	return s.oracle.ReviewCode(ctx, code)
}

// Complexity returns the oracle's big-O analysis of some code.
func (s *Service) Complexity(ctx context.Context, code string) (*assistant.ComplexityAnalysis, error) {
	return s.oracle.AnalyzeComplexity(ctx, code)
}

func standings(sps []store.SkillProficiency) []assistant.SkillStanding {
	out := make([]assistant.SkillStanding, len(sps))
	for i, sp := range sps {
		out[i] = assistant.SkillStanding{Name: sp.Name, Proficiency: sp.Proficiency}
	}
	return out
}

func clampDifficulty(d int) int {
	if d < 1 || d > 5 {
		return DefaultDifficulty
	}
	return d
}

// titleFromPrompt derives a short challenge title from the raw prompt.
func titleFromPrompt(prompt string) string {
	title := strings.TrimSpace(prompt)
	if len(title) > 60 {
		title = strings.TrimSpace(title[:57]) + "..."
	}
	if title == "" {
		title = "Untitled challenge"
	}
	return title
}
