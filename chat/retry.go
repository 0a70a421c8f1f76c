package chat

import (
	"context"
	"log/slog"
	"time"
)

// DefaultRetryDelays returns the delays between attempts to read a page
// that is still loading: three retries, 500ms apart.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{500 * time.Millisecond, 500 * time.Millisecond, 500 * time.Millisecond}
}

// withRetry calls fn until it succeeds, waiting delays[i] before retry i+1.
// It gives up early when ctx is done.
func withRetry[T any](ctx context.Context, delays []time.Duration, logger *slog.Logger, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if attempt == len(delays) {
			break
		}
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		logger.Debug("retrying page read", "attempt", attempt+2, "err", err)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
	return zero, lastErr
}
