package locate

import (
	"math"
	"time"
)

// Scroll timing bounds.
const (
	MinScrollDuration = 500 * time.Millisecond
	MaxScrollDuration = 3 * time.Second

	// scrollMillisPerPixel scales duration with distance before clamping.
	scrollMillisPerPixel = 0.5
)

// State is the phase of a scroll animation.
type State int

// Animation states.
const (
	Idle State = iota
	Animating
	Settled
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Animating:
		return "animating"
	case Settled:
		return "settled"
	}
	return "unknown"
}

// Animation interpolates a vertical scroll offset between two positions.
// It is driven by frame timestamps and never reads the clock itself.
type Animation struct {
	from, to float64
	duration time.Duration
	start    time.Time
	pos      float64
	state    State
}

// NewAnimation returns an animation from one offset to another. An
// animation that has nowhere to go starts settled.
func NewAnimation(from, to float64, duration time.Duration) *Animation {
	a := &Animation{from: from, to: to, duration: duration, pos: from}
	if math.Abs(to-from) < 0.5 {
		a.pos = to
		a.state = Settled
	}
	return a
}

// Step advances the animation to the frame at now and returns the offset to
// scroll to. The first frame marks the start of the animation.
func (a *Animation) Step(now time.Time) float64 {
	switch a.state {
	case Settled:
		return a.pos
	case Idle:
		a.start = now
		a.state = Animating
	}

	progress := 1.0
	if a.duration > 0 {
		progress = min(float64(now.Sub(a.start))/float64(a.duration), 1)
	}

	if progress >= 1 {
		a.pos = a.to
		a.state = Settled
		return a.pos
	}

	a.pos = a.from + (a.to-a.from)*EaseInOutQuint(progress)
	return a.pos
}

// State returns the current phase.
func (a *Animation) State() State {
	return a.state
}

// Position returns the most recently computed offset.
func (a *Animation) Position() float64 {
	return a.pos
}

// Target returns the final offset.
func (a *Animation) Target() float64 {
	return a.to
}

// ScrollDuration returns how long scrolling a distance in pixels should
// take, clamped to [MinScrollDuration, MaxScrollDuration].
func ScrollDuration(distance float64) time.Duration {
	d := time.Duration(math.Abs(distance) * scrollMillisPerPixel * float64(time.Millisecond))
	return min(max(d, MinScrollDuration), MaxScrollDuration)
}

// EaseInOutQuint maps linear progress t in [0, 1] onto a curve that starts
// and ends slowly.
func EaseInOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 5)/2
}
