package clarify

import "context"

// Strategy identifies which step of the search produced a match.
type Strategy int

// Search strategies, in the order they are attempted.
const (
	StrategyExact   Strategy = iota // full query, case-sensitive
	StrategyFold                    // full query, case-insensitive
	StrategyPhrase                  // a punctuation-delimited phrase of the query
	StrategyKeyword                 // a single distinctive word of the query
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyExact:
		return "exact"
	case StrategyFold:
		return "fold"
	case StrategyPhrase:
		return "phrase"
	case StrategyKeyword:
		return "keyword"
	}
	return "unknown"
}

// Match is the candidate selected by a locate call. It only lives for the
// duration of that call.
type Match struct {
	Node *TextNode `json:"node"`

	// Term is the query, phrase or keyword that matched.
	Term string `json:"term"`

	// Span is the matched text as it appears in the node.
	Span string `json:"span"`

	Score    float64  `json:"score"`
	Strategy Strategy `json:"strategy"`
}

// Locator finds a passage in a rendered document and brings it into view.
type Locator interface {
	// Locate finds the best visible match for query, highlights it and
	// scrolls it to the middle of the viewport.
	//
	// Returns EINVALID if query is empty after trimming quotes and
	// whitespace, ENOTFOUND if no visible passage matches, and an internal
	// error if the document could not be read or updated.
	Locate(ctx context.Context, query string) (*Match, error)
}

// Found reports whether l located query. Every failure, including a panic
// raised by the host, resolves to false.
func Found(ctx context.Context, l Locator, query string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	m, err := l.Locate(ctx, query)
	return err == nil && m != nil
}
