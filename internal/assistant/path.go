package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/praxislabs/praxis/internal/parse"
)

// ErrUnparseablePath indicates the oracle's learning path response
// contained no decodable JSON array. Path creation aborts rather than
// guessing a curriculum.
var ErrUnparseablePath = errors.New("unparseable learning path response")

// PathChallengeSpec is one planned challenge inside a generated
// learning path, before it is materialized in the store.
type PathChallengeSpec struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Difficulty  int      `json:"difficulty"`
}

// TestCase is one oracle-generated check for a challenge solution.
type TestCase struct {
	Inputs         []any  `json:"inputs"`
	ExpectedOutput any    `json:"expected_output"`
	Description    string `json:"description"`
}

const pathSystem = `You are an educational curriculum designer. Create a structured learning path to improve these programming skills:
1. Design a progression of 5-7 coding challenges that build skills incrementally
2. For each challenge, provide:
   - A clear title
   - A brief description of what to implement
   - The primary skill(s) it develops
   - Approximate difficulty (1-5)
3. Order the challenges from easiest to hardest
4. Format as a JSON array of challenge objects`

// PlanLearningPath asks the oracle for a challenge progression
// targeting the given weak skills. Returns ErrUnparseablePath when the
// response holds no JSON array.
func (a *Assistant) PlanLearningPath(ctx context.Context, language string, weakSkills []string) ([]PathChallengeSpec, error) {
	user := fmt.Sprintf("Create a learning path in %s to improve these skills: %s",
		language, strings.Join(weakSkills, ", "))
	text, err := a.complete(ctx, "learning-path", pathSystem, user, 0.4, 4000)
	if err != nil {
		return nil, err
	}

	raw, ok := parse.JSONArray(text)
	if !ok {
		return nil, ErrUnparseablePath
	}
	var specs []PathChallengeSpec
	if err := json.Unmarshal(raw, &specs); err != nil {
		return nil, ErrUnparseablePath
	}
	return specs, nil
}

const testCaseSystem = `You are a test case generator for coding problems. Given a problem description and solution:
1. Create 3-5 test cases that verify the solution works correctly
2. Include a variety of inputs: typical cases, edge cases, and corner cases
3. For each test case, provide:
   - Input values
   - Expected output
   - A brief explanation of what the test case is checking
4. Format your response as a JSON array of test objects

Example format:
[
    {
        "inputs": [5, 10],
        "expected_output": 15,
        "description": "Basic case - sum of two positive integers"
    },
    {
        "inputs": [-3, 3],
        "expected_output": 0,
        "description": "Edge case - sum of positive and negative that cancel out"
    }
]`

// GenerateTestCases asks the oracle for checks against the reference
// solution. An unparseable response yields a single placeholder case so
// evaluation always has something to run.
func (a *Assistant) GenerateTestCases(ctx context.Context, problemDescription, solution string) ([]TestCase, error) {
	user := fmt.Sprintf("Problem:\n%s\n\nSolution:\n%s\n\nPlease generate test cases for this problem.",
		problemDescription, solution)
	text, err := a.complete(ctx, "test-cases", testCaseSystem, user, 0.3, 2000)
	if err != nil {
		return nil, err
	}

	if raw, ok := parse.JSONArray(text); ok {
		var cases []TestCase
		if err := json.Unmarshal(raw, &cases); err == nil && len(cases) > 0 {
			return cases, nil
		}
	}
	return []TestCase{{
		Inputs:         []any{"sample_input"},
		ExpectedOutput: "sample_output",
		Description:    "Basic test case",
	}}, nil
}
