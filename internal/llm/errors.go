package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrRateLimit indicates the oracle provider returned a 429. RetryAfter
// carries the server-suggested backoff when one was given, zero otherwise.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("oracle rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the oracle returned content that does not
// conform to the requested schema. Content holds the raw payload so
// callers can log or salvage it.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid oracle response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the oracle provider is down or
// unreachable. Transient; the retry decorator treats it as retryable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("oracle provider unavailable: %v", e.Err)
	}
	return "oracle provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the completion was truncated at the
// MaxTokens limit. Content holds the partial output. Not retryable:
// repeating the request would truncate again.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "oracle response truncated: max tokens exceeded"
}
