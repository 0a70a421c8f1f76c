// Package slog decorates clarify services with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/clarify"
)

var _ clarify.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs every page fetch. Failures are logged at warn level
// with their error code.
type LoggingFetcher struct {
	next   clarify.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next clarify.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL, page size and duration.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url, "duration", time.Since(begin)}
		if err != nil {
			attrs = append(attrs, "code", clarify.ErrorCode(err), "err", err)
			f.logger.Warn("fetch", attrs...)
			return
		}
		f.logger.Info("fetch", append(attrs, "bytes", len(html))...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
