// Package locate finds a passage in a rendered document, highlights it and
// scrolls it into view. The matching and scoring are pure; everything that
// touches the page goes through clarify.Document and clarify.Scheduler.
package locate

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/clarify"
)

// DefaultDwell is how long a highlight stays before the node's presentation
// is restored.
const DefaultDwell = 2 * time.Second

var _ clarify.Locator = (*Locator)(nil)

// Locator implements clarify.Locator over a single document.
//
// At most one highlight is active at a time. A Locate call that starts while
// an earlier call is still animating takes over: the earlier animation stops
// at its next frame and its dwell timer no longer fires.
type Locator struct {
	doc     clarify.Document
	sched   clarify.Scheduler
	weights Weights
	dwell   time.Duration

	gen atomic.Uint64

	mu        sync.Mutex
	active    *clarify.TextNode
	stopDwell func() bool
}

// Option configures a Locator.
type Option func(*Locator)

// WithDwell sets how long a highlight stays. Zero keeps the highlight until
// the next Locate call. Defaults to DefaultDwell.
func WithDwell(d time.Duration) Option {
	return func(l *Locator) {
		l.dwell = d
	}
}

// WithWeights replaces the scoring weights. Defaults to DefaultWeights.
func WithWeights(w Weights) Option {
	return func(l *Locator) {
		l.weights = w
	}
}

// NewLocator creates a Locator for doc, animating on sched's frames.
func NewLocator(doc clarify.Document, sched clarify.Scheduler, opts ...Option) *Locator {
	l := &Locator{
		doc:     doc,
		sched:   sched,
		weights: DefaultWeights,
		dwell:   DefaultDwell,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Locate finds the best visible match for query, highlights it and scrolls
// it to the middle of the viewport. It returns once the scroll has settled
// or has been superseded by a newer call.
func (l *Locator) Locate(ctx context.Context, query string) (*clarify.Match, error) {
	q := clarify.NormalizeQuery(query)
	if q == "" {
		return nil, clarify.Errorf(clarify.EINVALID, "query required")
	}

	nodes, err := l.doc.VisibleTextNodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading text nodes: %w", err)
	}
	vp, err := l.doc.Viewport(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading viewport: %w", err)
	}

	m := Search(nodes, vp, q, l.weights)
	if m == nil {
		return nil, clarify.Errorf(clarify.ENOTFOUND, "no visible passage matches %q", q)
	}

	gen := l.gen.Add(1)
	if err := l.setHighlight(ctx, m.Node, gen); err != nil {
		return nil, err
	}
	if err := l.scroll(ctx, vp, m.Node.Box, gen); err != nil {
		return nil, err
	}
	l.startDwell(gen)
	return m, nil
}

// Active returns the currently highlighted node, or nil.
func (l *Locator) Active() *clarify.TextNode {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

// Clear removes the active highlight, if any.
func (l *Locator) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.clearLocked(ctx)
}

// setHighlight is the only place the active highlight is assigned. The
// previous highlight is always cleared first. A call that has already been
// superseded leaves the newer highlight alone.
func (l *Locator) setHighlight(ctx context.Context, node *clarify.TextNode, gen uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.gen.Load() != gen {
		return nil
	}
	if err := l.clearLocked(ctx); err != nil {
		return err
	}
	if err := l.doc.Highlight(ctx, node); err != nil {
		return fmt.Errorf("highlighting node: %w", err)
	}
	l.active = node
	return nil
}

// startDwell schedules the highlight set by call gen to be cleared once the
// dwell elapses. The dwell starts when the scroll has settled.
func (l *Locator) startDwell(gen uint64) {
	if l.dwell <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.gen.Load() != gen || l.active == nil {
		return
	}
	l.stopDwell = l.sched.AfterFunc(l.dwell, func() {
		l.expire(gen)
	})
}

// clearLocked must be called with mu held.
func (l *Locator) clearLocked(ctx context.Context) error {
	if l.stopDwell != nil {
		l.stopDwell()
		l.stopDwell = nil
	}
	if l.active == nil {
		return nil
	}
	node := l.active
	l.active = nil
	if err := l.doc.ClearHighlight(ctx, node); err != nil {
		return fmt.Errorf("clearing highlight: %w", err)
	}
	return nil
}

// expire clears the highlight set by call gen unless a newer call owns it.
func (l *Locator) expire(gen uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.gen.Load() != gen {
		return
	}
	_ = l.clearLocked(context.Background())
}

// scroll animates the viewport until box is vertically centered.
func (l *Locator) scroll(ctx context.Context, vp clarify.Viewport, box clarify.Rect, gen uint64) error {
	target := box.CenterY() - vp.Height/2
	if maxY := vp.MaxScroll(); maxY >= 0 && target > maxY {
		target = maxY
	}
	target = max(target, 0)

	anim := NewAnimation(vp.ScrollY, target, ScrollDuration(target-vp.ScrollY))
	for anim.State() != Settled {
		now, err := l.sched.NextFrame(ctx)
		if err != nil {
			return fmt.Errorf("waiting for frame: %w", err)
		}
		y := anim.Step(now)
		if l.gen.Load() != gen {
			return nil
		}
		if err := l.doc.ScrollTo(ctx, y); err != nil {
			return fmt.Errorf("scrolling to %.0f: %w", y, err)
		}
	}
	return nil
}
