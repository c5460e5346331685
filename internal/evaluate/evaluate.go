// Package evaluate decides whether an attempt counts as a completed
// challenge. The oracle's similarity score is the main signal, gated by
// cheap local checks that catch empty, truncated or low-quality code
// the oracle might still score generously.
package evaluate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/praxislabs/praxis/internal/assistant"
)

// DefaultThreshold applies to difficulties outside the 1-5 range.
const DefaultThreshold = 0.8

// MinQuality is the lowest code quality score that still allows success.
const MinQuality = 0.5

// MinLengthRatio is the code-to-solution length ratio below which an
// attempt is treated as incomplete.
const MinLengthRatio = 0.3

// difficultyThresholds maps challenge difficulty to the similarity
// score required for success. Harder challenges allow more divergence
// from the reference solution.
var difficultyThresholds = map[int]float64{
	1: 0.85,
	2: 0.80,
	3: 0.75,
	4: 0.70,
	5: 0.65,
}

var actualCodeRe = regexp.MustCompile(`[^\s#]`)

// Threshold returns the similarity score required at a difficulty.
func Threshold(difficulty int) float64 {
	if t, ok := difficultyThresholds[difficulty]; ok {
		return t
	}
	return DefaultThreshold
}

// Input carries everything the completion decision considers. Quality
// and TestResults are optional refinements; the zero values disable
// their gates.
type Input struct {
	Code       string
	Solution   string
	Score      float64
	Difficulty int

	// Quality is the oracle's code quality score. Nil skips the gate.
	Quality *float64

	// TestResults maps test IDs to pass/fail. Nil skips the gate;
	// non-nil requires every test to pass.
	TestResults map[string]bool
}

// Result is the full evaluation breakdown. Successful is the decision;
// the remaining fields explain it.
type Result struct {
	Successful        bool            `json:"is_successful"`
	Score             float64         `json:"score"`
	ScoreThreshold    float64         `json:"score_threshold"`
	PassesThreshold   bool            `json:"passes_score_threshold"`
	Difficulty        int             `json:"difficulty"`
	CodeLengthRatio   float64         `json:"code_length_ratio"`
	TooShort          bool            `json:"is_too_short"`
	HasActualCode     bool            `json:"has_actual_code"`
	QualitySufficient bool            `json:"code_quality_sufficient"`
	TestCasesPassed   int             `json:"test_cases_passed"`
	TotalTestCases    int             `json:"total_test_cases"`
	AllTestsPassed    bool            `json:"all_tests_passed"`
	TestResults       map[string]bool `json:"test_results,omitempty"`
}

// Completion evaluates whether an attempt succeeds.
func Completion(in Input) Result {
	solutionLen := len(in.Solution)
	if solutionLen < 1 {
		solutionLen = 1
	}

	r := Result{
		Score:             in.Score,
		ScoreThreshold:    Threshold(in.Difficulty),
		Difficulty:        in.Difficulty,
		CodeLengthRatio:   float64(len(in.Code)) / float64(solutionLen),
		QualitySufficient: true,
		TestResults:       in.TestResults,
	}
	r.PassesThreshold = in.Score >= r.ScoreThreshold
	r.TooShort = r.CodeLengthRatio < MinLengthRatio
	r.HasActualCode = actualCodeRe.MatchString(in.Code)

	if in.Quality != nil {
		r.QualitySufficient = *in.Quality >= MinQuality
	}

	if in.TestResults != nil {
		r.TotalTestCases = len(in.TestResults)
		r.AllTestsPassed = true
		for _, passed := range in.TestResults {
			if passed {
				r.TestCasesPassed++
			} else {
				r.AllTestsPassed = false
			}
		}
	}

	r.Successful = r.PassesThreshold &&
		!r.TooShort &&
		r.HasActualCode &&
		r.QualitySufficient
	if in.TestResults != nil {
		r.Successful = r.Successful && r.AllTestsPassed
	}
	return r
}

// functionPatterns recognizes a function definition per language.
// Unknown languages fall back to the literal word "function".
var functionPatterns = map[string]*regexp.Regexp{
	"python":     regexp.MustCompile(`def\s+\w+\s*\([^)]*\)`),
	"javascript": regexp.MustCompile(`function\s+\w+\s*\([^)]*\)`),
	"java":       regexp.MustCompile(`\w+\s+\w+\s*\([^)]*\)\s*\{`),
	"cpp":        regexp.MustCompile(`\w+\s+\w+\s*\([^)]*\)\s*\{`),
}

var fallbackFunctionRe = regexp.MustCompile(`function`)

// CheckTestCases heuristically checks code against generated test
// cases. The code is never executed: a test passes when the code
// defines a function and mentions the test's inputs or expected output.
func CheckTestCases(code string, cases []assistant.TestCase, language string) map[string]bool {
	fnRe, ok := functionPatterns[language]
	if !ok {
		fnRe = fallbackFunctionRe
	}
	hasFunction := fnRe.MatchString(code)

	results := make(map[string]bool, len(cases))
	for i, tc := range cases {
		id := fmt.Sprintf("test_%d", i+1)

		inputsPresent := len(tc.Inputs) > 0
		for _, in := range tc.Inputs {
			if !containsValue(code, in) {
				inputsPresent = false
				break
			}
		}
		outputPresent := containsValue(code, tc.ExpectedOutput)

		results[id] = hasFunction && (inputsPresent || outputPresent)
	}
	return results
}

func containsValue(code string, v any) bool {
	return strings.Contains(code, fmt.Sprintf("%v", v))
}
