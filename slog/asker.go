package slog

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/clarify"
)

var _ clarify.Asker = (*LoggingAsker)(nil)

// LoggingAsker logs prompt and reply sizes. Prompt text is never logged.
type LoggingAsker struct {
	next   clarify.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next clarify.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask logs the exchange and delegates to the wrapped asker.
func (a *LoggingAsker) Ask(ctx context.Context, p *clarify.Prompt) (reply string, err error) {
	defer func(begin time.Time) {
		var contentChars int
		if p != nil {
			contentChars = utf8.RuneCountInString(p.Content)
		}
		a.logger.Info("ask",
			"content_chars", contentChars,
			"reply_chars", utf8.RuneCountInString(reply),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Ask(ctx, p)
}
