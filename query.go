package clarify

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Query decomposition limits.
const (
	MinPhraseLength  = 6
	MinKeywordLength = 5
)

// quoteRunes are trimmed from both ends of a query.
const quoteRunes = "\"'`“”‘’«»"

// stopWords are common words that carry no locating power. Words shorter
// than MinKeywordLength are dropped anyway, so only longer ones are listed.
var stopWords = map[string]bool{
	"about": true, "above": true, "after": true, "again": true, "against": true,
	"along": true, "among": true, "around": true, "because": true, "before": true,
	"being": true, "below": true, "between": true, "could": true, "during": true,
	"every": true, "first": true, "found": true, "further": true, "other": true,
	"please": true, "really": true, "section": true, "should": true, "since": true,
	"still": true, "their": true, "there": true, "these": true, "thing": true,
	"those": true, "through": true, "under": true, "until": true, "where": true,
	"which": true, "while": true, "within": true, "without": true, "would": true,
	"navigate": true, "scroll": true,
}

// NormalizeQuery trims surrounding whitespace and quotes and collapses inner
// whitespace. The result is empty if nothing searchable remains.
func NormalizeQuery(q string) string {
	q = strings.Trim(strings.TrimSpace(q), quoteRunes)
	return strings.Join(strings.Fields(q), " ")
}

// Phrases splits q on sentence punctuation and returns the parts that are
// long enough to search for, longest first. The full query itself is never
// returned as a phrase.
func Phrases(q string) []string {
	q = NormalizeQuery(q)

	parts := strings.FieldsFunc(q, func(r rune) bool {
		return r == '.' || r == ',' || r == ';'
	})

	seen := make(map[string]bool)
	var phrases []string
	for _, p := range parts {
		p = NormalizeQuery(p)
		if utf8.RuneCountInString(p) < MinPhraseLength || p == q || seen[p] {
			continue
		}
		seen[p] = true
		phrases = append(phrases, p)
	}

	sortLongestFirst(phrases)
	return phrases
}

// Keywords splits q into distinctive words, longest first. Stop words and
// words shorter than MinKeywordLength are dropped; duplicates are removed
// case-insensitively.
func Keywords(q string) []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, w := range strings.Fields(q) {
		w = strings.TrimFunc(w, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		lower := strings.ToLower(w)
		if utf8.RuneCountInString(w) < MinKeywordLength || stopWords[lower] || seen[lower] {
			continue
		}
		seen[lower] = true
		keywords = append(keywords, w)
	}

	sortLongestFirst(keywords)
	return keywords
}

// IsStopWord reports whether w is too common to locate anything.
func IsStopWord(w string) bool {
	return stopWords[strings.ToLower(w)]
}

func sortLongestFirst(s []string) {
	sort.SliceStable(s, func(i, j int) bool {
		return utf8.RuneCountInString(s[i]) > utf8.RuneCountInString(s[j])
	})
}
