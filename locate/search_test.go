package locate_test

import (
	"testing"

	"github.com/fwojciec/clarify"
	"github.com/fwojciec/clarify/locate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var viewport = clarify.Viewport{ScrollY: 0, Height: 800, DocumentHeight: 5000}

// textNode returns a visible paragraph at vertical offset y.
func textNode(id, text string, y float64, opts ...func(*clarify.TextNode)) *clarify.TextNode {
	n := &clarify.TextNode{
		ID:   id,
		Tag:  "p",
		Text: text,
		Box:  clarify.Rect{X: 0, Y: y, Width: 600, Height: 24},
		Style: clarify.Style{
			Display:    "block",
			Visibility: "visible",
			Opacity:    1,
			FontSize:   16,
			Rendered:   true,
		},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func inMain(n *clarify.TextNode)   { n.InMain = true }
func inChrome(n *clarify.TextNode) { n.InChrome = true }

func TestSearch(t *testing.T) {
	t.Parallel()

	t.Run("finds exact case-sensitive match", func(t *testing.T) {
		t.Parallel()

		nodes := []*clarify.TextNode{
			textNode("a", "Menu", 0),
			textNode("b", "The quarterly revenue grew by 12% year over year.", 2000, inMain),
		}

		m := locate.Search(nodes, viewport, "quarterly revenue grew", locate.DefaultWeights)

		require.NotNil(t, m)
		assert.Equal(t, "b", m.Node.ID)
		assert.Equal(t, clarify.StrategyExact, m.Strategy)
		assert.Equal(t, "quarterly revenue grew", m.Span)
	})

	t.Run("prefers exact case over folded case", func(t *testing.T) {
		t.Parallel()

		nodes := []*clarify.TextNode{
			textNode("lower", "revenue", 0),
			textNode("upper", "Revenue", 100),
		}

		m := locate.Search(nodes, viewport, "Revenue", locate.DefaultWeights)

		require.NotNil(t, m)
		assert.Equal(t, "upper", m.Node.ID)
		assert.Equal(t, clarify.StrategyExact, m.Strategy)
	})

	t.Run("falls back to case-insensitive match", func(t *testing.T) {
		t.Parallel()

		nodes := []*clarify.TextNode{textNode("a", "The quarterly revenue grew", 0)}

		m := locate.Search(nodes, viewport, "QUARTERLY REVENUE", locate.DefaultWeights)

		require.NotNil(t, m)
		assert.Equal(t, clarify.StrategyFold, m.Strategy)
		assert.Equal(t, "quarterly revenue", m.Span)
	})

	t.Run("falls back to phrases", func(t *testing.T) {
		t.Parallel()

		nodes := []*clarify.TextNode{textNode("a", "Profits fell sharply in Q3.", 0)}

		m := locate.Search(nodes, viewport, "The revenue grew quickly, profits fell sharply", locate.DefaultWeights)

		require.NotNil(t, m)
		assert.Equal(t, clarify.StrategyPhrase, m.Strategy)
		assert.Equal(t, "profits fell sharply", m.Term)
		assert.Equal(t, "Profits fell sharply", m.Span)
	})

	t.Run("falls back to keywords", func(t *testing.T) {
		t.Parallel()

		nodes := []*clarify.TextNode{textNode("a", "Subscription pricing starts at $9.", 0)}

		m := locate.Search(nodes, viewport, "where can I see the pricing tiers", locate.DefaultWeights)

		require.NotNil(t, m)
		assert.Equal(t, clarify.StrategyKeyword, m.Strategy)
		assert.Equal(t, "pricing", m.Term)
	})

	t.Run("tries keywords present in the document before capping", func(t *testing.T) {
		t.Parallel()

		nodes := []*clarify.TextNode{textNode("a", "A marvelous result.", 0)}

		m := locate.Search(nodes, viewport, "extraordinary considerable substantial marvelous", locate.DefaultWeights)

		require.NotNil(t, m)
		assert.Equal(t, "marvelous", m.Term)
	})

	t.Run("prefers the most distinctive keyword", func(t *testing.T) {
		t.Parallel()

		nodes := []*clarify.TextNode{
			textNode("a", "Configure the server.", 0),
			textNode("b", "Configure logging.", 100),
			textNode("c", "Configure the backup schedule.", 200),
		}

		m := locate.Search(nodes, viewport, "configure backup", locate.DefaultWeights)

		require.NotNil(t, m)
		assert.Equal(t, "backup", m.Term)
		assert.Equal(t, "c", m.Node.ID)
	})

	t.Run("returns nil when nothing matches", func(t *testing.T) {
		t.Parallel()

		nodes := []*clarify.TextNode{textNode("a", "Nothing relevant here", 0)}

		assert.Nil(t, locate.Search(nodes, viewport, "quarterly revenue", locate.DefaultWeights))
	})

	t.Run("returns nil for empty query", func(t *testing.T) {
		t.Parallel()

		nodes := []*clarify.TextNode{textNode("a", "Anything", 0)}

		assert.Nil(t, locate.Search(nodes, viewport, `  ""  `, locate.DefaultWeights))
	})

	t.Run("normalizes ligatures", func(t *testing.T) {
		t.Parallel()

		nodes := []*clarify.TextNode{textNode("a", "Eﬃcient ﬁnance", 0)}

		m := locate.Search(nodes, viewport, "efficient finance", locate.DefaultWeights)

		require.NotNil(t, m)
		assert.Equal(t, "Efficient finance", m.Span)
	})
}

func TestSearch_Visibility(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*clarify.TextNode)
	}{
		{name: "display none", modify: func(n *clarify.TextNode) { n.Style.Display = "none" }},
		{name: "visibility hidden", modify: func(n *clarify.TextNode) { n.Style.Visibility = "hidden" }},
		{name: "visibility collapse", modify: func(n *clarify.TextNode) { n.Style.Visibility = "collapse" }},
		{name: "zero opacity", modify: func(n *clarify.TextNode) { n.Style.Opacity = 0 }},
		{name: "zero width", modify: func(n *clarify.TextNode) { n.Box.Width = 0 }},
		{name: "zero height", modify: func(n *clarify.TextNode) { n.Box.Height = 0 }},
		{name: "aria hidden", modify: func(n *clarify.TextNode) { n.Style.AriaHidden = true }},
		{name: "no layout parent", modify: func(n *clarify.TextNode) { n.Style.Rendered = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			nodes := []*clarify.TextNode{textNode("hidden", "secret passage", 0, tt.modify)}

			assert.Nil(t, locate.Search(nodes, viewport, "secret passage", locate.DefaultWeights))
		})
	}

	t.Run("skips hidden match in favor of visible one", func(t *testing.T) {
		t.Parallel()

		nodes := []*clarify.TextNode{
			textNode("hidden", "secret passage", 0, func(n *clarify.TextNode) { n.Style.Display = "none" }),
			textNode("visible", "the secret passage revealed", 100),
		}

		m := locate.Search(nodes, viewport, "secret passage", locate.DefaultWeights)

		require.NotNil(t, m)
		assert.Equal(t, "visible", m.Node.ID)
	})
}

func TestSearch_Scoring(t *testing.T) {
	t.Parallel()

	t.Run("prefers text length closest to the query", func(t *testing.T) {
		t.Parallel()

		nodes := []*clarify.TextNode{
			textNode("long", "Read about our pricing plans and every add-on we offer in detail", 0),
			textNode("short", "pricing plans", 100),
		}

		m := locate.Search(nodes, viewport, "pricing plans", locate.DefaultWeights)

		require.NotNil(t, m)
		assert.Equal(t, "short", m.Node.ID)
	})

	t.Run("prefers main content on equal text", func(t *testing.T) {
		t.Parallel()

		nodes := []*clarify.TextNode{
			textNode("aside", "Release notes", 0),
			textNode("main", "Release notes", 100, inMain),
		}

		m := locate.Search(nodes, viewport, "Release notes", locate.DefaultWeights)

		require.NotNil(t, m)
		assert.Equal(t, "main", m.Node.ID)
	})

	t.Run("prefers main keyword match over verbatim navigation match", func(t *testing.T) {
		t.Parallel()

		nodes := []*clarify.TextNode{
			textNode("nav", "Quarterly revenue report", 0, inChrome),
			textNode("main", "Revenue grew in every region this year.", 2000, inMain),
		}

		m := locate.Search(nodes, viewport, "Quarterly revenue report", locate.DefaultWeights)

		require.NotNil(t, m)
		assert.Equal(t, "main", m.Node.ID)
		assert.Equal(t, clarify.StrategyKeyword, m.Strategy)
	})

	t.Run("uses navigation when nothing else matches", func(t *testing.T) {
		t.Parallel()

		nodes := []*clarify.TextNode{
			textNode("nav", "Quarterly revenue report", 0, inChrome),
			textNode("main", "Unrelated prose.", 2000, inMain),
		}

		m := locate.Search(nodes, viewport, "Quarterly revenue report", locate.DefaultWeights)

		require.NotNil(t, m)
		assert.Equal(t, "nav", m.Node.ID)
		assert.Equal(t, clarify.StrategyExact, m.Strategy)
	})

	t.Run("penalizes very small text", func(t *testing.T) {
		t.Parallel()

		nodes := []*clarify.TextNode{
			textNode("tiny", "Terms apply", 0, func(n *clarify.TextNode) { n.Style.FontSize = 10 }),
			textNode("normal", "Terms apply", 100),
		}

		m := locate.Search(nodes, viewport, "Terms apply", locate.DefaultWeights)

		require.NotNil(t, m)
		assert.Equal(t, "normal", m.Node.ID)
	})

	t.Run("prefers headings", func(t *testing.T) {
		t.Parallel()

		nodes := []*clarify.TextNode{
			textNode("p", "Installation", 0),
			textNode("h2", "Installation", 100, func(n *clarify.TextNode) {
				n.Tag = "h2"
				n.HeadingLevel = 2
			}),
		}

		m := locate.Search(nodes, viewport, "Installation", locate.DefaultWeights)

		require.NotNil(t, m)
		assert.Equal(t, "h2", m.Node.ID)
	})

	t.Run("prefers nodes already in the viewport", func(t *testing.T) {
		t.Parallel()

		nodes := []*clarify.TextNode{
			textNode("far", "See also", 4000),
			textNode("near", "See also", 300),
		}

		m := locate.Search(nodes, viewport, "See also", locate.DefaultWeights)

		require.NotNil(t, m)
		assert.Equal(t, "near", m.Node.ID)
	})

	t.Run("scales score by opacity", func(t *testing.T) {
		t.Parallel()

		nodes := []*clarify.TextNode{
			textNode("faded", "Changelog", 0, func(n *clarify.TextNode) { n.Style.Opacity = 0.3 }),
			textNode("solid", "Changelog", 100),
		}

		m := locate.Search(nodes, viewport, "Changelog", locate.DefaultWeights)

		require.NotNil(t, m)
		assert.Equal(t, "solid", m.Node.ID)
	})
}
