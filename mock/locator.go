package mock

import (
	"context"

	"github.com/fwojciec/clarify"
)

var _ clarify.Locator = (*Locator)(nil)

// Locator is a mock implementation of clarify.Locator.
type Locator struct {
	LocateFn func(ctx context.Context, query string) (*clarify.Match, error)
}

func (l *Locator) Locate(ctx context.Context, query string) (*clarify.Match, error) {
	return l.LocateFn(ctx, query)
}
