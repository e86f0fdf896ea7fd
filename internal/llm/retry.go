package llm

import (
	"context"
	"time"
)

const (
	// defaultMaxAttempts bounds retries of recoverable provider errors
	defaultMaxAttempts = 3
	// defaultBaseDelay is the first backoff interval; it doubles per attempt
	defaultBaseDelay = 500 * time.Millisecond
)

// WithRetry runs fn, retrying recoverable provider errors with exponential
// backoff. Permanent errors (invalid credential, quota exhaustion, safety
// blocks) fail fast on the first occurrence.
func WithRetry(ctx context.Context, fn func() error) error {
	return withRetry(ctx, defaultMaxAttempts, defaultBaseDelay, fn)
}

func withRetry(ctx context.Context, maxAttempts int, baseDelay time.Duration, fn func() error) error {
	delay := baseDelay
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		pe := Classify(err)
		if !pe.Recoverable() || attempt >= maxAttempts {
			return pe
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
}
