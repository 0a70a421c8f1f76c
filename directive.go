package clarify

import (
	"regexp"
	"strings"
)

// DirectivePrefix marks the text an assistant wants the user taken to.
const DirectivePrefix = "NAVIGATE:"

var (
	navigationDirectiveRe = regexp.MustCompile(`(?i)NAVIGATE:\s*(?:"([^"]+)"|“([^”]+)”)`)
	navigationRequestRe   = regexp.MustCompile(`(?i)\b(find|locate|scroll|show|navigate|go to|take me to|where is|point to)\b`)
)

// IsNavigationRequest reports whether a user message asks to find or be
// taken to part of the page.
func IsNavigationRequest(message string) bool {
	return navigationRequestRe.MatchString(message)
}

// ParseNavigation extracts the first NAVIGATE directive from an assistant
// response. It returns the response with the directive removed, the quoted
// target text, and whether a directive was present.
func ParseNavigation(response string) (clean string, target string, ok bool) {
	loc := navigationDirectiveRe.FindStringSubmatchIndex(response)
	if loc == nil {
		return strings.TrimSpace(response), "", false
	}

	switch {
	case loc[2] >= 0:
		target = response[loc[2]:loc[3]]
	case loc[4] >= 0:
		target = response[loc[4]:loc[5]]
	}

	clean = strings.TrimSpace(response[:loc[0]] + response[loc[1]:])
	return clean, strings.TrimSpace(target), target != ""
}
