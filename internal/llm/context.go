package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose tags the context with the name of the tutoring flow making
// the request ("enhance-prompt", "score-attempt", ...). The logging
// decorator picks it up so oracle traffic can be attributed per flow.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the purpose label attached by WithPurpose, or
// "unknown" for untagged requests.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
