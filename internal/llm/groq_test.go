package llm

import "testing"

func TestNewGroqProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     GroqConfig
		wantErr bool
	}{
		{
			name:    "missing key",
			cfg:     GroqConfig{Model: "llama3-70b-8192"},
			wantErr: true,
		},
		{
			name:    "with key",
			cfg:     GroqConfig{APIKey: "gsk-test", Model: "llama3-70b-8192"},
			wantErr: false,
		},
		{
			name:    "custom base URL",
			cfg:     GroqConfig{APIKey: "gsk-test", Model: "mixtral-8x7b-32768", BaseURL: "http://localhost:8080/v1"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewGroqProvider(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewGroqProvider() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && p.ModelID() != tt.cfg.Model {
				t.Errorf("ModelID() = %q, want %q", p.ModelID(), tt.cfg.Model)
			}
		})
	}
}
