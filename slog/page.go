package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/clarify"
)

var _ clarify.PageReader = (*LoggingPageReader)(nil)

// LoggingPageReader logs each page read.
type LoggingPageReader struct {
	next   clarify.PageReader
	logger *slog.Logger
}

// NewLoggingPageReader creates a new LoggingPageReader.
func NewLoggingPageReader(next clarify.PageReader, logger *slog.Logger) *LoggingPageReader {
	return &LoggingPageReader{next: next, logger: logger}
}

// ReadPage logs the title, content size and whether it was truncated.
func (r *LoggingPageReader) ReadPage(ctx context.Context) (p *clarify.Page, err error) {
	defer func(begin time.Time) {
		attrs := []any{"duration", time.Since(begin)}
		if p != nil {
			attrs = append(attrs,
				"title", p.Title,
				"chars", len(p.Content),
				"truncated", p.Truncated,
			)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		r.logger.Info("read page", attrs...)
	}(time.Now())
	return r.next.ReadPage(ctx)
}
