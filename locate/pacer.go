package locate

import (
	"context"
	"time"

	"github.com/fwojciec/clarify"
	"golang.org/x/time/rate"
)

// DefaultFPS is the frame rate hosts without a native frame callback animate at.
const DefaultFPS = 60

var _ clarify.Scheduler = (*FramePacer)(nil)

// FramePacer is a wall-clock Scheduler that paces frames with a token bucket.
// It stands in for a browser's frame callback when driving a remote page.
type FramePacer struct {
	limiter *rate.Limiter
}

// NewFramePacer creates a FramePacer delivering at most fps frames per second.
func NewFramePacer(fps float64) *FramePacer {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &FramePacer{limiter: rate.NewLimiter(rate.Limit(fps), 1)}
}

// NextFrame blocks until the next frame is due.
func (p *FramePacer) NextFrame(ctx context.Context) (time.Time, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return time.Time{}, err
	}
	return time.Now(), nil
}

// AfterFunc calls f after d on its own goroutine.
func (p *FramePacer) AfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}
