// Package bluemonday sanitizes extracted page content.
package bluemonday

import (
	"github.com/fwojciec/clarify"
	"github.com/microcosm-cc/bluemonday"
)

var _ clarify.Extractor = (*Extractor)(nil)

// Extractor strips active and embedded content from the HTML another
// extractor returns: scripts, styles, frames, forms and event handlers.
// Structure, links, images and tables are kept for markdown conversion.
type Extractor struct {
	next   clarify.Extractor
	policy *bluemonday.Policy
}

// NewExtractor wraps next.
func NewExtractor(next clarify.Extractor) *Extractor {
	return &Extractor{next: next, policy: newPolicy()}
}

// Extract runs the wrapped extractor and sanitizes its content.
func (e *Extractor) Extract(html string) (*clarify.Article, error) {
	article, err := e.next.Extract(html)
	if err != nil {
		return nil, err
	}
	sanitized := *article
	sanitized.ContentHTML = e.policy.Sanitize(article.ContentHTML)
	return &sanitized, nil
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6", "section")
	p.AllowElements("figure", "figcaption", "section", "article", "main")
	return p
}
