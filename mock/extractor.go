package mock

import "github.com/fwojciec/clarify"

var _ clarify.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of clarify.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*clarify.Article, error)
}

func (e *Extractor) Extract(html string) (*clarify.Article, error) {
	return e.ExtractFn(html)
}
