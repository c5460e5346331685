package parse

import (
	"math"
	"testing"
)

func TestSkillMap(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[string]float64
	}{
		{
			"bare object",
			`{"Arrays": 0.9, "Recursion": 0.5}`,
			map[string]float64{"Arrays": 0.9, "Recursion": 0.5},
		},
		{
			"object wrapped in prose",
			"Here are the skills I identified:\n{\"Hash Tables\": 0.8}\nHope that helps!",
			map[string]float64{"Hash Tables": 0.8},
		},
		{
			"plain prose without JSON",
			"This problem is mostly about arrays and loops.",
			map[string]float64{},
		},
		{
			"malformed JSON",
			`{"Arrays": 0.9, "Recursion":}`,
			map[string]float64{},
		},
		{
			"empty input",
			"",
			map[string]float64{},
		},
		{
			"null literal inside braces",
			"{}",
			map[string]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SkillMap(tt.text)
			if got == nil {
				t.Fatal("SkillMap returned nil map")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d skills, want %d: %v", len(got), len(tt.want), got)
			}
			for k, v := range tt.want {
				if math.Abs(got[k]-v) > 1e-9 {
					t.Errorf("skill %q = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"bare number", "0.85", 0.85},
		{"number in prose", "The score is 0.7 based on similarity.", 0.7},
		{"integer", "1", 1},
		{"leading dot form", ".9", 0.9},
		{"no number at all", "I cannot determine a score", DefaultScore},
		{"empty", "", DefaultScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.text)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestJSONArray(t *testing.T) {
	raw, ok := JSONArray("Here is your path:\n[{\"title\": \"Two Sum\"}]\nEnjoy!")
	if !ok {
		t.Fatal("expected array to be found")
	}
	if string(raw) != `[{"title": "Two Sum"}]` {
		t.Errorf("unexpected raw array: %s", raw)
	}

	if _, ok := JSONArray("no array here"); ok {
		t.Error("expected no array in plain prose")
	}
	if _, ok := JSONArray("[1, 2,"); ok {
		t.Error("expected malformed array to be rejected")
	}
}

func TestCodeBlocks(t *testing.T) {
	text := "Intro\n```python\ndef f():\n    return 1\n```\nmiddle\n```\nprint(f())\n```\ndone"
	got := CodeBlocks(text)
	want := "def f():\n    return 1\n\nprint(f())"
	if got != want {
		t.Errorf("CodeBlocks = %q, want %q", got, want)
	}

	plain := "no fences at all"
	if CodeBlocks(plain) != plain {
		t.Error("expected unfenced text to pass through")
	}
}

func TestMermaidBlock(t *testing.T) {
	text := "Here you go:\n```mermaid\ngraph TD\nA-->B\n```\n"
	if got := MermaidBlock(text); got != "graph TD\nA-->B" {
		t.Errorf("MermaidBlock = %q", got)
	}

	fallback := "```\ngraph LR\n```"
	if got := MermaidBlock(fallback); got != "graph LR" {
		t.Errorf("fallback block = %q", got)
	}

	raw := "just a description"
	if MermaidBlock(raw) != raw {
		t.Error("expected raw text passthrough")
	}
}

func TestComplexity(t *testing.T) {
	text := "Time Complexity: O(n log n)\nSpace Complexity: O(1)\nExplanation: sorting dominates."

	if got := Complexity(text, "time"); got != "Time Complexity: O(n log n)" {
		t.Errorf("time = %q", got)
	}
	if got := Complexity("nothing useful", "time"); got != ComplexityUndefined {
		t.Errorf("expected %q, got %q", ComplexityUndefined, got)
	}
	// A lone big-O anywhere still matches via the last pattern.
	if got := Complexity("runs in O(n) overall", "space"); got != "O(n)" {
		t.Errorf("fallback = %q", got)
	}
}
