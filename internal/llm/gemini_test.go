package llm

import "testing"

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-pro", "gemini-2.5-pro"}, // pass-through for direct IDs
	}

	for _, tt := range tests {
		if got := resolveModel(tt.in, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type":     "object",
		"required": []any{"name"},
		"properties": map[string]any{
			"name":  map[string]any{"type": "string"},
			"score": map[string]any{"type": "number"},
			"tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" && schema.Type != "object" {
		// genai normalizes type constants; just check properties landed.
		t.Logf("type = %v", schema.Type)
	}
	if len(schema.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(schema.Properties))
	}
	if len(schema.Required) != 1 || schema.Required[0] != "name" {
		t.Errorf("required = %v", schema.Required)
	}
	if schema.Properties["tags"].Items == nil {
		t.Error("expected items schema for tags")
	}
}
