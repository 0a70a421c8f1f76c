package clarify

import "context"

// Rect is a rendered box in document coordinates, in CSS pixels.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Bottom returns the vertical coordinate of the lower edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// CenterY returns the vertical center of the box.
func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

// Style is the computed presentation of a node as reported by the host.
type Style struct {
	Display    string  `json:"display"`
	Visibility string  `json:"visibility"`
	Opacity    float64 `json:"opacity"`
	FontSize   float64 `json:"fontSize"`

	// AriaHidden is set when the node or one of its ancestors is hidden
	// from assistive technology.
	AriaHidden bool `json:"ariaHidden"`

	// Rendered is set when the node has a layout parent, i.e. it takes part
	// in layout rather than merely being present in the tree.
	Rendered bool `json:"rendered"`
}

// TextNode is an element that directly owns text in a rendered document.
type TextNode struct {
	// ID is an opaque host handle used to address the node again.
	ID string `json:"id"`

	Tag  string `json:"tag"`
	Text string `json:"text"` // full text content, descendants included
	Box  Rect   `json:"box"`

	Style Style `json:"style"`

	// InMain is set inside main, article or [role=main].
	InMain bool `json:"inMain"`

	// InChrome is set inside navigation, footers and page banners.
	InChrome bool `json:"inChrome"`

	// HeadingLevel is 1-6 for h1-h6 and 0 otherwise.
	HeadingLevel int `json:"headingLevel"`
}

// Visible reports whether the node is actually rendered and perceivable.
func (n *TextNode) Visible() bool {
	s := n.Style
	switch {
	case s.Display == "none":
		return false
	case s.Visibility == "hidden" || s.Visibility == "collapse":
		return false
	case s.Opacity <= 0:
		return false
	case n.Box.Width <= 0 || n.Box.Height <= 0:
		return false
	case s.AriaHidden:
		return false
	case !s.Rendered:
		return false
	}
	return true
}

// Viewport describes the visible window onto a document.
type Viewport struct {
	ScrollY        float64 `json:"scrollY"`
	Height         float64 `json:"height"`
	DocumentHeight float64 `json:"documentHeight"`
}

// Intersects reports whether any part of r is inside the viewport.
func (v Viewport) Intersects(r Rect) bool {
	return r.Bottom() > v.ScrollY && r.Y < v.ScrollY+v.Height
}

// MaxScroll returns the largest reachable scroll offset.
// Returns -1 when the document height is unknown.
func (v Viewport) MaxScroll() float64 {
	if v.DocumentHeight <= 0 {
		return -1
	}
	if m := v.DocumentHeight - v.Height; m > 0 {
		return m
	}
	return 0
}

// Document is the narrow capability a rendering host exposes to the locator.
// Implementations may be backed by a live browser page or a parsed HTML tree.
type Document interface {
	// VisibleTextNodes returns every element that directly owns text, with
	// the presentation needed to decide whether it is visible. Callers apply
	// TextNode.Visible themselves.
	VisibleTextNodes(ctx context.Context) ([]*TextNode, error)

	// Viewport returns the current scroll position and window size.
	Viewport(ctx context.Context) (Viewport, error)

	// ScrollTo moves the viewport to the vertical offset y.
	ScrollTo(ctx context.Context, y float64) error

	// Highlight applies a reversible background tint to the node.
	Highlight(ctx context.Context, node *TextNode) error

	// ClearHighlight removes the tint, restoring the node's prior
	// presentation exactly.
	ClearHighlight(ctx context.Context, node *TextNode) error
}

// ContentSource provides the current rendered HTML of the page under discussion.
type ContentSource interface {
	HTML(ctx context.Context) (string, error)
}
