package evaluate

import (
	"testing"

	"github.com/praxislabs/praxis/internal/assistant"
)

func floatPtr(f float64) *float64 { return &f }

func TestThresholdPerDifficulty(t *testing.T) {
	tests := []struct {
		difficulty int
		want       float64
	}{
		{1, 0.85},
		{2, 0.80},
		{3, 0.75},
		{4, 0.70},
		{5, 0.65},
		{0, 0.8},
		{9, 0.8},
	}
	for _, tt := range tests {
		if got := Threshold(tt.difficulty); got != tt.want {
			t.Errorf("Threshold(%d) = %v, want %v", tt.difficulty, got, tt.want)
		}
	}
}

func TestCompletionScalesWithDifficulty(t *testing.T) {
	// The same score can pass a hard challenge and fail an easy one.
	code := "def solve(x):\n    return x * 2"
	solution := "def solve(x):\n    return x * 2"

	hard := Completion(Input{Code: code, Solution: solution, Score: 0.70, Difficulty: 5})
	if !hard.Successful {
		t.Error("0.70 should pass difficulty 5")
	}

	easy := Completion(Input{Code: code, Solution: solution, Score: 0.70, Difficulty: 1})
	if easy.Successful {
		t.Error("0.70 should fail difficulty 1")
	}
}

func TestCompletionRejectsShortCode(t *testing.T) {
	solution := "def solve(items):\n    out = []\n    for item in items:\n        out.append(item * 2)\n    return out"
	r := Completion(Input{Code: "x=1", Solution: solution, Score: 0.95, Difficulty: 3})
	if r.Successful {
		t.Error("short code should fail regardless of score")
	}
	if !r.TooShort {
		t.Error("expected TooShort flag")
	}
}

func TestCompletionRejectsCommentOnlyCode(t *testing.T) {
	r := Completion(Input{
		Code:       "# TODO\n#  \n   ",
		Solution:   "x",
		Score:      0.95,
		Difficulty: 3,
	})
	if r.HasActualCode {
		t.Error("comment-only code should not count as actual code")
	}
	if r.Successful {
		t.Error("comment-only code should fail")
	}
}

func TestCompletionQualityGate(t *testing.T) {
	in := Input{
		Code:       "def solve():\n    return 42",
		Solution:   "def solve():\n    return 42",
		Score:      0.9,
		Difficulty: 2,
	}

	in.Quality = floatPtr(0.4)
	if Completion(in).Successful {
		t.Error("quality 0.4 should fail the gate")
	}

	in.Quality = floatPtr(0.5)
	if !Completion(in).Successful {
		t.Error("quality 0.5 should pass the gate")
	}

	in.Quality = nil
	if !Completion(in).Successful {
		t.Error("missing quality should skip the gate")
	}
}

func TestCompletionTestGate(t *testing.T) {
	in := Input{
		Code:       "def solve():\n    return 42",
		Solution:   "def solve():\n    return 42",
		Score:      0.9,
		Difficulty: 2,
	}

	in.TestResults = map[string]bool{"test_1": true, "test_2": false}
	r := Completion(in)
	if r.Successful {
		t.Error("a failing test should block success")
	}
	if r.TestCasesPassed != 1 || r.TotalTestCases != 2 {
		t.Errorf("counts = %d/%d, want 1/2", r.TestCasesPassed, r.TotalTestCases)
	}

	in.TestResults = map[string]bool{"test_1": true, "test_2": true}
	if !Completion(in).Successful {
		t.Error("all tests passing should allow success")
	}
}

func TestCheckTestCases(t *testing.T) {
	code := "def add(a, b):\n    # handles 5 and 10\n    return a + b"
	cases := []assistant.TestCase{
		{Inputs: []any{5, 10}, ExpectedOutput: 15, Description: "basic"},
		{Inputs: []any{999}, ExpectedOutput: 998, Description: "absent values"},
	}

	results := CheckTestCases(code, cases, "python")
	if !results["test_1"] {
		t.Error("test_1 should pass: inputs appear in the code")
	}
	if results["test_2"] {
		t.Error("test_2 should fail: values absent from the code")
	}
}

func TestCheckTestCasesRequiresFunction(t *testing.T) {
	code := "5 10 15" // values present but no function definition
	cases := []assistant.TestCase{
		{Inputs: []any{5, 10}, ExpectedOutput: 15},
	}
	results := CheckTestCases(code, cases, "python")
	if results["test_1"] {
		t.Error("code without a function definition should fail")
	}
}
