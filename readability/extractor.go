// Package readability extracts the readable part of a page with
// go-readability. It backs up the trafilatura extractor for pages where
// that finds nothing.
package readability

import (
	nurl "net/url"
	"strings"

	"github.com/fwojciec/clarify"
	"github.com/go-shiori/go-readability"
)

var _ clarify.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability.
type Extractor struct {
	pageURL *nurl.URL
}

// NewExtractor creates an Extractor. pageURL may be nil.
func NewExtractor(pageURL *nurl.URL) *Extractor {
	return &Extractor{pageURL: pageURL}
}

// Extract returns the page's main content and metadata.
func (e *Extractor) Extract(rawHTML string) (*clarify.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, clarify.Errorf(clarify.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.pageURL)
	if err != nil {
		return nil, err
	}

	return &clarify.Article{
		Title:       article.Title,
		SiteName:    article.SiteName,
		Byline:      article.Byline,
		ContentHTML: article.Content,
	}, nil
}
