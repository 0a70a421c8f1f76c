package mock

import (
	"context"

	"github.com/fwojciec/clarify"
)

var _ clarify.PageWriter = (*PageWriter)(nil)

// PageWriter is a mock implementation of clarify.PageWriter.
type PageWriter struct {
	WritePageFn func(ctx context.Context, page *clarify.Page) (string, error)
}

func (w *PageWriter) WritePage(ctx context.Context, page *clarify.Page) (string, error) {
	return w.WritePageFn(ctx, page)
}
