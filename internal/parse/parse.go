// Package parse extracts structured values from free-form oracle text.
//
// The oracle never guarantees structured output, so every function here
// is total: it always returns a usable value and never an error. Parse
// failures resolve to documented neutral defaults so the learning flow
// is never blocked by a malformed completion.
package parse

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// DefaultScore is returned when no numeric token can be extracted from
// a scoring response.
const DefaultScore = 0.5

var (
	scoreRe   = regexp.MustCompile(`[0-9]*\.?[0-9]+`)
	fencedRe  = regexp.MustCompile("```(?:\\w+)?\\n([\\s\\S]*?)\\n```")
	mermaidRe = regexp.MustCompile("```mermaid\\n([\\s\\S]*?)\\n```")
	plainRe   = regexp.MustCompile("```\\n([\\s\\S]*?)\\n```")
)

// SkillMap extracts a skill-name → relevance mapping from text.
// It locates the outermost {...} substring and decodes it as JSON.
// Any failure yields an empty, non-nil map: callers treat "no skills
// identified" as a valid outcome.
func SkillMap(text string) map[string]float64 {
	raw, ok := jsonObject(text)
	if !ok {
		return map[string]float64{}
	}

	var skills map[string]float64
	if err := json.Unmarshal(raw, &skills); err != nil {
		return map[string]float64{}
	}
	if skills == nil {
		return map[string]float64{}
	}
	return skills
}

// Score extracts the first decimal-looking token from text as a score.
// Returns DefaultScore when no token is found or it does not parse;
// scoring failures must never block attempt recording.
func Score(text string) float64 {
	match := scoreRe.FindString(text)
	if match == "" {
		return DefaultScore
	}
	score, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return DefaultScore
	}
	return score
}

// JSONObject extracts the outermost {...} substring from text.
// The second return reports whether a decodable object was found.
func JSONObject(text string) (json.RawMessage, bool) {
	return jsonObject(text)
}

// JSONArray extracts the outermost [...] substring from text.
// The second return reports whether a decodable array was found.
func JSONArray(text string) (json.RawMessage, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return nil, false
	}

	raw := json.RawMessage(text[start : end+1])
	if !json.Valid(raw) {
		return nil, false
	}
	return raw, true
}

// CodeBlocks extracts fenced code blocks from markdown text, joining
// multiple blocks with blank lines. Text without fences is returned
// unchanged.
func CodeBlocks(text string) string {
	matches := fencedRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return text
	}

	blocks := make([]string, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, m[1])
	}
	return strings.Join(blocks, "\n\n")
}

// MermaidBlock extracts a ```mermaid fenced block, falling back to any
// fenced block, falling back to the raw text.
func MermaidBlock(text string) string {
	if m := mermaidRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := plainRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return text
}

// ComplexityUndefined is returned when no big-O expression is found.
const ComplexityUndefined = "Undefined"

// Complexity extracts a big-O expression for the given kind ("time" or
// "space") from an analysis response. Returns ComplexityUndefined when
// nothing matches.
func Complexity(text, kind string) string {
	patterns := []string{
		`(?i)` + regexp.QuoteMeta(kind) + `.*complexity.*O\([^)]+\)`,
		`(?i)` + regexp.QuoteMeta(kind) + `.*O\([^)]+\)`,
		`O\([^)]+\)`,
	}

	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			continue
		}
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ComplexityUndefined
}

func jsonObject(text string) (json.RawMessage, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, false
	}

	raw := json.RawMessage(text[start : end+1])
	if !json.Valid(raw) {
		return nil, false
	}
	return raw, true
}
