package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/clarify"
)

var _ clarify.Document = (*LoggingDocument)(nil)

// LoggingDocument logs snapshots and highlight changes at debug level.
// Scroll frames are not logged.
type LoggingDocument struct {
	next   clarify.Document
	logger *slog.Logger
}

// NewLoggingDocument creates a new LoggingDocument.
func NewLoggingDocument(next clarify.Document, logger *slog.Logger) *LoggingDocument {
	return &LoggingDocument{next: next, logger: logger}
}

// VisibleTextNodes logs how many text nodes the host reported.
func (d *LoggingDocument) VisibleTextNodes(ctx context.Context) (nodes []*clarify.TextNode, err error) {
	defer func(begin time.Time) {
		d.logger.Debug("snapshot",
			"nodes", len(nodes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.VisibleTextNodes(ctx)
}

// Viewport delegates to the wrapped document.
func (d *LoggingDocument) Viewport(ctx context.Context) (clarify.Viewport, error) {
	return d.next.Viewport(ctx)
}

// ScrollTo delegates to the wrapped document.
func (d *LoggingDocument) ScrollTo(ctx context.Context, y float64) error {
	return d.next.ScrollTo(ctx, y)
}

// Highlight logs the highlighted node.
func (d *LoggingDocument) Highlight(ctx context.Context, node *clarify.TextNode) (err error) {
	defer func() {
		d.logger.Debug("highlight", "node", nodeID(node), "err", err)
	}()
	return d.next.Highlight(ctx, node)
}

// ClearHighlight logs the cleared node.
func (d *LoggingDocument) ClearHighlight(ctx context.Context, node *clarify.TextNode) (err error) {
	defer func() {
		d.logger.Debug("clear highlight", "node", nodeID(node), "err", err)
	}()
	return d.next.ClearHighlight(ctx, node)
}

func nodeID(n *clarify.TextNode) string {
	if n == nil {
		return ""
	}
	return n.ID
}
