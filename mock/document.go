package mock

import (
	"context"

	"github.com/fwojciec/clarify"
)

var (
	_ clarify.Document      = (*Document)(nil)
	_ clarify.ContentSource = (*ContentSource)(nil)
)

// Document is a mock implementation of clarify.Document.
type Document struct {
	VisibleTextNodesFn func(ctx context.Context) ([]*clarify.TextNode, error)
	ViewportFn         func(ctx context.Context) (clarify.Viewport, error)
	ScrollToFn         func(ctx context.Context, y float64) error
	HighlightFn        func(ctx context.Context, node *clarify.TextNode) error
	ClearHighlightFn   func(ctx context.Context, node *clarify.TextNode) error
}

func (d *Document) VisibleTextNodes(ctx context.Context) ([]*clarify.TextNode, error) {
	return d.VisibleTextNodesFn(ctx)
}

func (d *Document) Viewport(ctx context.Context) (clarify.Viewport, error) {
	return d.ViewportFn(ctx)
}

func (d *Document) ScrollTo(ctx context.Context, y float64) error {
	return d.ScrollToFn(ctx, y)
}

func (d *Document) Highlight(ctx context.Context, node *clarify.TextNode) error {
	return d.HighlightFn(ctx, node)
}

func (d *Document) ClearHighlight(ctx context.Context, node *clarify.TextNode) error {
	return d.ClearHighlightFn(ctx, node)
}

// ContentSource is a mock implementation of clarify.ContentSource.
type ContentSource struct {
	HTMLFn func(ctx context.Context) (string, error)
}

func (s *ContentSource) HTML(ctx context.Context) (string, error) {
	return s.HTMLFn(ctx)
}
