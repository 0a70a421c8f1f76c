package mock

import (
	"context"
	"time"

	"github.com/fwojciec/clarify"
)

var _ clarify.Scheduler = (*Scheduler)(nil)

// Scheduler is a mock implementation of clarify.Scheduler.
// AfterFuncFn must not call f synchronously: callers may hold locks.
type Scheduler struct {
	NextFrameFn func(ctx context.Context) (time.Time, error)
	AfterFuncFn func(d time.Duration, f func()) func() bool
}

func (s *Scheduler) NextFrame(ctx context.Context) (time.Time, error) {
	return s.NextFrameFn(ctx)
}

func (s *Scheduler) AfterFunc(d time.Duration, f func()) func() bool {
	return s.AfterFuncFn(d, f)
}
