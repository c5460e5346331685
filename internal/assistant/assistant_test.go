package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/praxislabs/praxis/internal/llm"
)

func newTestAssistant(responses ...llm.MockResponse) (*Assistant, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return New(mock), mock
}

func TestEnhancePromptSendsUserRequest(t *testing.T) {
	a, mock := newTestAssistant(
		llm.MockResponse{Content: json.RawMessage("A structured coding task.")},
	)

	enhanced, err := a.EnhancePrompt(context.Background(), "reverse a string")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enhanced != "A structured coding task." {
		t.Fatalf("unexpected enhanced prompt: %q", enhanced)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 oracle call, got %d", mock.CallCount())
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "reverse a string") {
		t.Fatalf("user prompt not forwarded: %q", mock.Calls[0].Messages[0].Content)
	}
	if mock.Calls[0].System == "" {
		t.Fatal("expected a system prompt")
	}
}

func TestGenerateSolutionStripsFences(t *testing.T) {
	a, _ := newTestAssistant(
		llm.MockResponse{Content: json.RawMessage("Here you go:\n```python\ndef f():\n    return 1\n```")},
	)

	code, err := a.GenerateSolution(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "def f():\n    return 1" {
		t.Fatalf("unexpected solution: %q", code)
	}
}

func TestGenerateFlowchartExtractsMermaid(t *testing.T) {
	a, _ := newTestAssistant(
		llm.MockResponse{Content: json.RawMessage("```mermaid\ngraph TD\nA-->B\n```")},
	)

	chart, err := a.GenerateFlowchart(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chart != "graph TD\nA-->B" {
		t.Fatalf("unexpected flowchart: %q", chart)
	}
}

func TestScoreAttempt(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     float64
	}{
		{"bare number", "0.85", 0.85},
		{"number with prose", "The score is 0.7 overall", 0.7},
		{"no number defaults", "cannot grade this", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestAssistant(
				llm.MockResponse{Content: json.RawMessage(tt.response)},
			)
			got, err := a.ScoreAttempt(context.Background(), "code", "solution", "Python")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIdentifySkills(t *testing.T) {
	a, _ := newTestAssistant(
		llm.MockResponse{Content: json.RawMessage("Sure! {\"Recursion\": 0.9, \"Trees\": 0.6}")},
	)

	skills, err := a.IdentifySkills(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(skills) != 2 || skills["Recursion"] != 0.9 {
		t.Fatalf("unexpected skills: %v", skills)
	}
}

func TestAnalyzeCodeDegradesToNeutral(t *testing.T) {
	a, _ := newTestAssistant(
		llm.MockResponse{Content: json.RawMessage("no JSON here at all")},
	)

	analysis, err := a.AnalyzeCode(context.Background(), "code", "Python")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.Quality != 0.5 {
		t.Fatalf("quality = %v, want 0.5", analysis.Quality)
	}
	if analysis.Skills == nil || len(analysis.Skills) != 0 {
		t.Fatalf("expected empty skills map, got %v", analysis.Skills)
	}
}

func TestAnalyzeComplexityFallsBackToUndefined(t *testing.T) {
	a, _ := newTestAssistant(
		llm.MockResponse{Content: json.RawMessage("I could not tell.")},
	)

	analysis, err := a.AnalyzeComplexity(context.Background(), "code")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.Time != "Undefined" || analysis.Space != "Undefined" {
		t.Fatalf("unexpected complexities: %+v", analysis)
	}
	if analysis.Explanation != "I could not tell." {
		t.Fatalf("raw text should be kept as explanation: %q", analysis.Explanation)
	}
}

func TestReviewCodeWrapsUnstructuredResponse(t *testing.T) {
	a, _ := newTestAssistant(
		llm.MockResponse{Content: json.RawMessage("This code is fine.")},
	)

	review, err := a.ReviewCode(context.Background(), "code")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var wrapped map[string]string
	if err := json.Unmarshal(review, &wrapped); err != nil {
		t.Fatalf("review is not an object: %v", err)
	}
	if wrapped["overall_rating"] != "N/A" || wrapped["review"] != "This code is fine." {
		t.Fatalf("unexpected fallback review: %v", wrapped)
	}
}

func TestPlanLearningPath(t *testing.T) {
	a, _ := newTestAssistant(
		llm.MockResponse{Content: json.RawMessage(`Here is your path:
[{"title": "Warmup", "description": "reverse a list", "skills": ["Arrays/Lists"], "difficulty": 1}]`)},
	)

	specs, err := a.PlanLearningPath(context.Background(), "Python", []string{"Arrays/Lists"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(specs) != 1 || specs[0].Title != "Warmup" || specs[0].Difficulty != 1 {
		t.Fatalf("unexpected specs: %+v", specs)
	}
}

func TestPlanLearningPathRejectsGarbage(t *testing.T) {
	a, _ := newTestAssistant(
		llm.MockResponse{Content: json.RawMessage("no array in sight")},
	)

	_, err := a.PlanLearningPath(context.Background(), "Python", []string{"Trees"})
	if !errors.Is(err, ErrUnparseablePath) {
		t.Fatalf("expected ErrUnparseablePath, got: %v", err)
	}
}

func TestGenerateTestCasesFallback(t *testing.T) {
	a, _ := newTestAssistant(
		llm.MockResponse{Content: json.RawMessage("I refuse to emit JSON")},
	)

	cases, err := a.GenerateTestCases(context.Background(), "problem", "solution")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cases) != 1 || cases[0].Description != "Basic test case" {
		t.Fatalf("expected single placeholder case, got %+v", cases)
	}
}
