package goquery

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/clarify"
	"golang.org/x/net/html"
)

// Highlight presentation applied to a located node.
const (
	HighlightColor      = "#b87aff80"
	HighlightTransition = "background-color 0.3s ease-in-out"
)

// Default window size used for layout.
const (
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 800
)

var (
	_ clarify.Document      = (*Document)(nil)
	_ clarify.ContentSource = (*Document)(nil)
)

// savedStyle is the style attribute of a node before it was highlighted.
type savedStyle struct {
	value  string
	exists bool
}

// Document is a clarify.Document over a parsed HTML page. Presentation is
// computed from markup and inline styles only; external stylesheets and
// scripts are not evaluated.
type Document struct {
	width, height float64

	mu        sync.Mutex
	doc       *goquery.Document
	elements  []*html.Node
	nodes     []*clarify.TextNode
	docHeight float64
	scrollY   float64
	saved     map[*html.Node]savedStyle
}

// Option configures a Document.
type Option func(*Document)

// WithViewport sets the window size used for layout and scrolling.
func WithViewport(width, height float64) Option {
	return func(d *Document) {
		if width > 0 {
			d.width = width
		}
		if height > 0 {
			d.height = height
		}
	}
}

// NewDocument parses src and lays it out.
func NewDocument(src string, opts ...Option) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return nil, clarify.Errorf(clarify.EINVALID, "failed to parse HTML: %v", err)
	}

	d := &Document{
		width:  DefaultViewportWidth,
		height: DefaultViewportHeight,
		doc:    doc,
		saved:  make(map[*html.Node]savedStyle),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.layout()
	return d, nil
}

// layout computes presentation and boxes for every element that directly
// owns text. Elements are visited in document order so a parent's computed
// style is always available to its children.
func (d *Document) layout() {
	computed := make(map[*html.Node]*computedStyle)
	f := newFlow(d.width)

	d.doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		parent, ok := computed[n.Parent]
		if !ok {
			parent = rootStyle
		}
		cs := computeStyle(n, parent)
		computed[n] = cs

		if !ownsText(n) {
			return
		}

		box := f.place(cs, func() string {
			return d.doc.FindNodes(cs.block).Text()
		})
		tn := &clarify.TextNode{
			ID:   strconv.Itoa(len(d.nodes)),
			Tag:  n.Data,
			Text: renderedText(n, cs),
			Box:  box,
			Style: clarify.Style{
				Display:    cs.display,
				Visibility: cs.visibility,
				Opacity:    cs.opacity,
				FontSize:   cs.fontSize,
				AriaHidden: cs.ariaHidden,
				Rendered:   cs.rendered,
			},
			InMain:       inMain(s),
			InChrome:     inChrome(s),
			HeadingLevel: headingLevel(n.Data),
		}
		d.elements = append(d.elements, n)
		d.nodes = append(d.nodes, tn)
	})

	d.docHeight = f.y
}

// VisibleTextNodes returns every element that directly owns text, in
// document order.
func (d *Document) VisibleTextNodes(_ context.Context) ([]*clarify.TextNode, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]*clarify.TextNode, len(d.nodes))
	copy(out, d.nodes)
	return out, nil
}

// Viewport returns the current scroll offset and window height.
func (d *Document) Viewport(_ context.Context) (clarify.Viewport, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return clarify.Viewport{
		ScrollY:        d.scrollY,
		Height:         d.height,
		DocumentHeight: d.docHeight,
	}, nil
}

// ScrollTo records y as the scroll offset.
func (d *Document) ScrollTo(_ context.Context, y float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.scrollY = y
	return nil
}

// ScrollY returns the last offset passed to ScrollTo.
func (d *Document) ScrollY() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scrollY
}

// Highlight tints the node's background. Highlighting an already
// highlighted node keeps the originally saved style.
func (d *Document) Highlight(_ context.Context, node *clarify.TextNode) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	n, err := d.element(node)
	if err != nil {
		return err
	}
	s := d.doc.FindNodes(n)

	prev, ok := d.saved[n]
	if !ok {
		prev.value, prev.exists = s.Attr("style")
		d.saved[n] = prev
	}
	s.SetAttr("style", highlightStyle(prev.value))
	return nil
}

// ClearHighlight restores the style attribute saved by Highlight exactly,
// removing it if the node had none. Clearing a node that is not
// highlighted does nothing.
func (d *Document) ClearHighlight(_ context.Context, node *clarify.TextNode) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	n, err := d.element(node)
	if err != nil {
		return err
	}
	prev, ok := d.saved[n]
	if !ok {
		return nil
	}
	delete(d.saved, n)

	s := d.doc.FindNodes(n)
	if prev.exists {
		s.SetAttr("style", prev.value)
	} else {
		s.RemoveAttr("style")
	}
	return nil
}

// HTML renders the document in its current state, highlights included.
func (d *Document) HTML(_ context.Context) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	out, err := d.doc.Html()
	if err != nil {
		return "", clarify.Errorf(clarify.EINTERNAL, "failed to render HTML: %v", err)
	}
	return out, nil
}

func (d *Document) element(node *clarify.TextNode) (*html.Node, error) {
	if node == nil {
		return nil, clarify.Errorf(clarify.EINVALID, "text node required")
	}
	i, err := strconv.Atoi(node.ID)
	if err != nil || i < 0 || i >= len(d.elements) {
		return nil, clarify.Errorf(clarify.ENOTFOUND, "text node %q not found", node.ID)
	}
	return d.elements[i], nil
}

func highlightStyle(prev string) string {
	prev = strings.TrimSpace(prev)
	if prev != "" && !strings.HasSuffix(prev, ";") {
		prev += ";"
	}
	if prev != "" {
		prev += " "
	}
	return prev + "transition: " + HighlightTransition + "; background-color: " + HighlightColor + ";"
}

// renderedText returns the text of n and its rendered descendants with
// whitespace collapsed. Subtrees that are not rendered or are aria-hidden are
// skipped, as is text under a hidden or fully transparent descendant. Block
// boundaries separate words.
func renderedText(n *html.Node, cs *computedStyle) string {
	var sb strings.Builder
	var walk func(n *html.Node, cs *computedStyle, show bool)
	walk = func(n *html.Node, cs *computedStyle, show bool) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				if show {
					sb.WriteString(c.Data)
				}
			case html.ElementNode:
				ccs := computeStyle(c, cs)
				if !ccs.rendered || ccs.ariaHidden {
					continue
				}
				if c.Data == "br" || ccs.block == c {
					sb.WriteByte(' ')
				}
				walk(c, ccs, ccs.visibility != "hidden" && ccs.visibility != "collapse" && ccs.opacity > 0)
				if ccs.block == c {
					sb.WriteByte(' ')
				}
			}
		}
	}
	walk(n, cs, true)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// ownsText reports whether n has a non-blank text child of its own.
func ownsText(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
			return true
		}
	}
	return false
}

const (
	mainSelector   = "main, article, [role=main]"
	chromeSelector = "nav, footer, [role=navigation], [role=contentinfo]"
	bannerSelector = "header, [role=banner]"
)

func inMain(s *goquery.Selection) bool {
	return s.Closest(mainSelector).Length() > 0
}

// inChrome reports whether s sits in navigation or page furniture. A header
// only counts when it belongs to the page rather than to the main content.
func inChrome(s *goquery.Selection) bool {
	if s.Closest(chromeSelector).Length() > 0 {
		return true
	}
	banner := s.Closest(bannerSelector)
	return banner.Length() > 0 && !inMain(banner)
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}
