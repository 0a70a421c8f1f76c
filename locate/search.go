package locate

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/clarify"
	"golang.org/x/text/unicode/norm"
)

// MaxKeywords caps how many keywords are tried before giving up.
const MaxKeywords = 3

// Weights tunes how competing candidates are ranked. The values are not
// contractual; they only need to order candidates sensibly.
type Weights struct {
	Length        float64 // multiplied by len(term)/len(text)
	MainBonus     float64
	ChromePenalty float64
	Heading       float64 // multiplied by 7-level
	Font          float64 // multiplied by min(fontSize, FontCap)
	FontCap       float64
	SmallFont     float64 // font sizes below this are penalized
	SmallPenalty  float64
	ViewportBonus float64
}

// DefaultWeights ranks closeness of length first, then region, then
// typography and position.
var DefaultWeights = Weights{
	Length:        100,
	MainBonus:     30,
	ChromePenalty: 40,
	Heading:       5,
	Font:          0.5,
	FontCap:       32,
	SmallFont:     12,
	SmallPenalty:  20,
	ViewportBonus: 20,
}

// entry is an eligible node with its text prepared for matching.
type entry struct {
	node *clarify.TextNode
	text string
}

// step is one attempt of the search cascade.
type step struct {
	term     string
	strategy clarify.Strategy
	fold     bool
}

// Search returns the best visible match for query among nodes, or nil if
// nothing matches. It has no side effects.
//
// Nodes outside navigation and page chrome are searched through the whole
// cascade first; chrome is only considered when nothing else matches.
func Search(nodes []*clarify.TextNode, vp clarify.Viewport, query string, w Weights) *clarify.Match {
	query = normalizeText(clarify.NormalizeQuery(query))
	if query == "" {
		return nil
	}

	var content, all []entry
	for _, n := range nodes {
		if n == nil || !n.Visible() {
			continue
		}
		text := normalizeText(n.Text)
		if text == "" {
			continue
		}
		e := entry{node: n, text: text}
		all = append(all, e)
		if !n.InChrome {
			content = append(content, e)
		}
	}

	for _, tier := range [][]entry{content, all} {
		if len(tier) == 0 {
			continue
		}
		if m := searchTier(tier, vp, query, w); m != nil {
			return m
		}
	}
	return nil
}

func searchTier(entries []entry, vp clarify.Viewport, query string, w Weights) *clarify.Match {
	steps := []step{
		{term: query, strategy: clarify.StrategyExact},
		{term: query, strategy: clarify.StrategyFold, fold: true},
	}
	for _, p := range clarify.Phrases(query) {
		steps = append(steps,
			step{term: p, strategy: clarify.StrategyPhrase},
			step{term: p, strategy: clarify.StrategyPhrase, fold: true},
		)
	}
	for _, k := range distinctiveKeywords(entries, query) {
		steps = append(steps, step{term: k, strategy: clarify.StrategyKeyword, fold: true})
	}

	for _, s := range steps {
		if m := bestMatch(entries, vp, s, w); m != nil {
			return m
		}
	}
	return nil
}

// bestMatch scores every entry containing the step's term and returns the
// highest. Ties keep document order.
func bestMatch(entries []entry, vp clarify.Viewport, s step, w Weights) *clarify.Match {
	var best *clarify.Match
	for _, e := range entries {
		start, end := index(e.text, s.term, s.fold)
		if start < 0 {
			continue
		}
		m := &clarify.Match{
			Node:     e.node,
			Term:     s.term,
			Span:     e.text[start:end],
			Score:    score(e, s.term, vp, w),
			Strategy: s.strategy,
		}
		if best == nil || m.Score > best.Score {
			best = m
		}
	}
	return best
}

// distinctiveKeywords orders the query's keywords by how few entries contain
// them, dropping keywords found nowhere, and caps the list at MaxKeywords.
func distinctiveKeywords(entries []entry, query string) []string {
	type ranked struct {
		word string
		df   int
	}

	var words []ranked
	for _, k := range clarify.Keywords(query) {
		df := 0
		for _, e := range entries {
			if start, _ := index(e.text, k, true); start >= 0 {
				df++
			}
		}
		if df > 0 {
			words = append(words, ranked{word: k, df: df})
		}
	}

	// Keywords arrive longest first, so a stable sort keeps length as the
	// secondary order.
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].df < words[j].df
	})

	if len(words) > MaxKeywords {
		words = words[:MaxKeywords]
	}
	out := make([]string, len(words))
	for i, r := range words {
		out[i] = r.word
	}
	return out
}

func score(e entry, term string, vp clarify.Viewport, w Weights) float64 {
	n := e.node

	fit := float64(utf8.RuneCountInString(term)) / float64(utf8.RuneCountInString(e.text))
	s := fit * w.Length

	if n.InMain {
		s += w.MainBonus
	}
	if n.InChrome {
		s -= w.ChromePenalty
	}
	if n.HeadingLevel >= 1 && n.HeadingLevel <= 6 {
		s += float64(7-n.HeadingLevel) * w.Heading
	}

	if fs := n.Style.FontSize; fs > 0 {
		s += min(fs, w.FontCap) * w.Font
		if fs < w.SmallFont {
			s -= w.SmallPenalty
		}
	}

	if vp.Height > 0 && vp.Intersects(n.Box) {
		s += w.ViewportBonus
	}

	if op := n.Style.Opacity; op < 1 {
		s *= op
	}
	return s
}

// index returns the byte span of the first occurrence of term in text, or
// -1, -1. With fold set, comparison uses Unicode simple case folding.
func index(text, term string, fold bool) (int, int) {
	if !fold {
		i := strings.Index(text, term)
		if i < 0 {
			return -1, -1
		}
		return i, i + len(term)
	}

	n := utf8.RuneCountInString(term)
	for i := range text {
		j, count := i, 0
		for count < n && j < len(text) {
			_, size := utf8.DecodeRuneInString(text[j:])
			j += size
			count++
		}
		if count < n {
			break
		}
		if strings.EqualFold(text[i:j], term) {
			return i, j
		}
	}
	return -1, -1
}

// normalizeText applies compatibility normalization (ligatures, non-breaking
// spaces, full-width forms) and collapses whitespace.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(norm.NFKC.String(s)), " ")
}
