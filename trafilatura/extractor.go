// Package trafilatura extracts the readable part of a page with
// go-trafilatura. It is the primary extractor for prompt content.
package trafilatura

import (
	"bytes"
	nurl "net/url"
	"strings"

	"github.com/fwojciec/clarify"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ clarify.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura.
type Extractor struct {
	pageURL *nurl.URL
	links   bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPageURL tells the extractor where the page came from so relative
// links and site metadata resolve.
func WithPageURL(u *nurl.URL) Option {
	return func(e *Extractor) {
		e.pageURL = u
	}
}

// WithLinks keeps hyperlinks in the extracted content.
func WithLinks() Option {
	return func(e *Extractor) {
		e.links = true
	}
}

// NewExtractor creates an Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the page's main content and metadata. Comment sections
// are dropped.
func (e *Extractor) Extract(rawHTML string) (*clarify.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, clarify.Errorf(clarify.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		OriginalURL:     e.pageURL,
		EnableFallback:  true,
		ExcludeComments: true,
		IncludeLinks:    e.links,
	})
	if err != nil {
		return nil, err
	}

	article := &clarify.Article{
		Title:    result.Metadata.Title,
		SiteName: result.Metadata.Sitename,
		Byline:   result.Metadata.Author,
	}
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, clarify.Errorf(clarify.EINTERNAL, "failed to render content: %v", err)
		}
		article.ContentHTML = buf.String()
	}
	return article, nil
}
