package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoggingProvider is a decorator that logs every oracle request.
type LoggingProvider struct {
	inner Provider
	log   *zap.SugaredLogger
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, log *zap.SugaredLogger) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	fields := []any{
		"purpose", purpose,
		"model", l.inner.ModelID(),
		"latency_ms", time.Since(start).Milliseconds(),
	}

	if resp != nil {
		fields = append(fields,
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens,
		)
		if cost := LookupCost(resp.Model); cost != nil {
			fields = append(fields, "est_cost_usd", cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens))
		}
	}

	if err != nil {
		l.log.Warnw("oracle request failed", append(fields, "error", err)...)
	} else {
		l.log.Debugw("oracle request", fields...)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
