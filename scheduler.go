package clarify

import (
	"context"
	"time"
)

// Scheduler drives animation frames and delayed callbacks. Hosts inject a
// real frame source; tests inject a manually advanced clock.
type Scheduler interface {
	// NextFrame blocks until the next animation frame and returns its timestamp.
	// Returns an error if the context is canceled.
	NextFrame(ctx context.Context) (time.Time, error)

	// AfterFunc calls f once after d has elapsed.
	// The returned function cancels the call and reports whether it did so.
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}
