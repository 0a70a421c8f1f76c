package mock

import (
	"context"

	"github.com/fwojciec/clarify"
)

var _ clarify.PageReader = (*PageReader)(nil)

// PageReader is a mock implementation of clarify.PageReader.
type PageReader struct {
	ReadPageFn func(ctx context.Context) (*clarify.Page, error)
}

func (r *PageReader) ReadPage(ctx context.Context) (*clarify.Page, error) {
	return r.ReadPageFn(ctx)
}
