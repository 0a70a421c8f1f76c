package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/clarify"
)

var _ clarify.Locator = (*LoggingLocator)(nil)

// LoggingLocator logs every locate call with the chosen match.
type LoggingLocator struct {
	next   clarify.Locator
	logger *slog.Logger
}

// NewLoggingLocator creates a new LoggingLocator.
func NewLoggingLocator(next clarify.Locator, logger *slog.Logger) *LoggingLocator {
	return &LoggingLocator{next: next, logger: logger}
}

// Locate logs the query, the outcome and how long scrolling took.
func (l *LoggingLocator) Locate(ctx context.Context, query string) (m *clarify.Match, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"query", query,
			"duration", time.Since(begin),
		}
		if m != nil {
			attrs = append(attrs,
				"strategy", m.Strategy.String(),
				"term", m.Term,
				"score", m.Score,
			)
			if m.Node != nil {
				attrs = append(attrs, "node", m.Node.ID, "tag", m.Node.Tag)
			}
		}
		if err != nil {
			attrs = append(attrs, "code", clarify.ErrorCode(err), "err", err)
		}
		l.logger.Info("locate", attrs...)
	}(time.Now())
	return l.next.Locate(ctx, query)
}
