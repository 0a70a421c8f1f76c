package mock

import (
	"context"

	"github.com/fwojciec/clarify"
)

var _ clarify.Asker = (*Asker)(nil)

// Asker is a mock implementation of clarify.Asker.
type Asker struct {
	AskFn func(ctx context.Context, prompt *clarify.Prompt) (string, error)
}

func (a *Asker) Ask(ctx context.Context, prompt *clarify.Prompt) (string, error) {
	return a.AskFn(ctx, prompt)
}
