package chat

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// TruncationSuffix is appended to content cut to fit a limit.
const TruncationSuffix = "... [content truncated]"

var (
	boilerplateRe = regexp.MustCompile(`(?i)cookie policy|privacy policy|terms of service|accept (?:all )?cookies`)
	spacesRe      = regexp.MustCompile(`[ \t\f\v\x{00a0}]+`)
	blankLinesRe  = regexp.MustCompile(`\n{3,}`)
)

// Clean strips cookie and privacy boilerplate and collapses runs of
// whitespace, keeping single blank lines between blocks.
func Clean(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = boilerplateRe.ReplaceAllString(s, "")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spacesRe.ReplaceAllString(line, " "))
	}
	s = strings.Join(lines, "\n")

	s = blankLinesRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// Truncate cuts s to at most limit runes, appending TruncationSuffix when
// anything was removed. A limit of zero or less disables truncation.
func Truncate(s string, limit int) (string, bool) {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s, false
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i] + TruncationSuffix, true
		}
		n++
	}
	return s, false
}
