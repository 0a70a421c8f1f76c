package rod

import (
	"context"
	"fmt"

	"github.com/fwojciec/clarify"
	"github.com/go-rod/rod"
	"github.com/google/uuid"
)

// Highlight presentation applied to a located node.
const (
	HighlightColor      = "#b87aff80"
	HighlightTransition = "background-color 0.3s ease-in-out"
)

var (
	_ clarify.Document      = (*Document)(nil)
	_ clarify.ContentSource = (*Document)(nil)
)

// Document is a clarify.Document backed by a live Chrome page.
//
// Node IDs are only valid for the snapshot that produced them; every call
// to VisibleTextNodes takes a new snapshot. Highlights survive snapshots.
type Document struct {
	page *rod.Page
}

// NewDocument wraps an already loaded page.
func NewDocument(page *rod.Page) *Document {
	return &Document{page: page}
}

// VisibleTextNodes snapshots every element that directly owns text.
func (d *Document) VisibleTextNodes(ctx context.Context) ([]*clarify.TextNode, error) {
	res, err := d.page.Context(ctx).Eval(snapshotScript, uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("taking snapshot: %w", err)
	}
	var nodes []*clarify.TextNode
	if err := res.Value.Unmarshal(&nodes); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return nodes, nil
}

// Viewport reads the window's scroll offset and size.
func (d *Document) Viewport(ctx context.Context) (clarify.Viewport, error) {
	var vp clarify.Viewport
	res, err := d.page.Context(ctx).Eval(viewportScript)
	if err != nil {
		return vp, fmt.Errorf("reading viewport: %w", err)
	}
	if err := res.Value.Unmarshal(&vp); err != nil {
		return vp, fmt.Errorf("decoding viewport: %w", err)
	}
	return vp, nil
}

// ScrollTo jumps the window to y. Smooth scrolling is disabled so that
// animation frames are not eased twice.
func (d *Document) ScrollTo(ctx context.Context, y float64) error {
	if _, err := d.page.Context(ctx).Eval(scrollScript, y); err != nil {
		return fmt.Errorf("scrolling: %w", err)
	}
	return nil
}

// Highlight tints the node's background.
func (d *Document) Highlight(ctx context.Context, node *clarify.TextNode) error {
	if node == nil {
		return clarify.Errorf(clarify.EINVALID, "text node required")
	}
	res, err := d.page.Context(ctx).Eval(highlightScript, node.ID, HighlightColor, HighlightTransition)
	if err != nil {
		return fmt.Errorf("highlighting: %w", err)
	}
	if !res.Value.Bool() {
		return clarify.Errorf(clarify.ENOTFOUND, "text node %q not found", node.ID)
	}
	return nil
}

// ClearHighlight restores the node's style attribute as it was before the
// first Highlight. A node that is no longer highlighted is left alone.
func (d *Document) ClearHighlight(ctx context.Context, node *clarify.TextNode) error {
	if node == nil {
		return clarify.Errorf(clarify.EINVALID, "text node required")
	}
	if _, err := d.page.Context(ctx).Eval(clearScript, node.ID); err != nil {
		return fmt.Errorf("clearing highlight: %w", err)
	}
	return nil
}

// HTML returns the page's current rendered HTML.
func (d *Document) HTML(ctx context.Context) (string, error) {
	html, err := d.page.Context(ctx).HTML()
	if err != nil {
		return "", fmt.Errorf("reading HTML: %w", err)
	}
	return html, nil
}

// Close closes the page.
func (d *Document) Close() error {
	return d.page.Close()
}
