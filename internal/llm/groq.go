package llm

import "fmt"

const defaultGroqBaseURL = "https://api.groq.com/openai/v1"

// GroqProvider wraps OpenAIProvider with Groq-specific defaults.
// Groq exposes an OpenAI-compatible API, so the underlying SDK is reused.
type GroqProvider struct {
	*OpenAIProvider
}

// NewGroqProvider creates a provider targeting the Groq API.
func NewGroqProvider(cfg GroqConfig) (*GroqProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("groq API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGroqBaseURL
	}

	oaiCfg := OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	}

	inner, err := NewOpenAIProvider(oaiCfg)
	if err != nil {
		return nil, err
	}

	return &GroqProvider{OpenAIProvider: inner}, nil
}
