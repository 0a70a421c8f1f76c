package locate_test

import (
	"testing"
	"time"

	"github.com/fwojciec/clarify/locate"
	"github.com/stretchr/testify/assert"
)

func TestAnimation(t *testing.T) {
	t.Parallel()

	t.Run("moves from idle through animating to settled", func(t *testing.T) {
		t.Parallel()

		start := time.Unix(100, 0)
		a := locate.NewAnimation(0, 1000, time.Second)
		assert.Equal(t, locate.Idle, a.State())

		assert.InDelta(t, 0, a.Step(start), 0.001)
		assert.Equal(t, locate.Animating, a.State())

		assert.InDelta(t, 500, a.Step(start.Add(500*time.Millisecond)), 0.001)
		assert.Equal(t, locate.Animating, a.State())

		assert.InDelta(t, 1000, a.Step(start.Add(time.Second)), 0.001)
		assert.Equal(t, locate.Settled, a.State())
	})

	t.Run("stays at target once settled", func(t *testing.T) {
		t.Parallel()

		start := time.Unix(100, 0)
		a := locate.NewAnimation(200, 0, 100*time.Millisecond)
		a.Step(start)
		a.Step(start.Add(time.Second))

		assert.InDelta(t, 0, a.Step(start.Add(2*time.Second)), 0.001)
		assert.InDelta(t, 0, a.Position(), 0.001)
		assert.InDelta(t, 0, a.Target(), 0.001)
	})

	t.Run("starts settled when already at target", func(t *testing.T) {
		t.Parallel()

		a := locate.NewAnimation(300, 300.2, time.Second)

		assert.Equal(t, locate.Settled, a.State())
	})

	t.Run("jumps when duration is zero", func(t *testing.T) {
		t.Parallel()

		a := locate.NewAnimation(0, 100, 0)

		assert.InDelta(t, 100, a.Step(time.Unix(0, 0)), 0.001)
		assert.Equal(t, locate.Settled, a.State())
	})

	t.Run("eases in and out", func(t *testing.T) {
		t.Parallel()

		start := time.Unix(100, 0)
		a := locate.NewAnimation(0, 1000, time.Second)
		a.Step(start)

		early := a.Step(start.Add(100 * time.Millisecond))
		assert.Less(t, early, 100.0)
	})
}

func TestEaseInOutQuint(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0, locate.EaseInOutQuint(0), 1e-9)
	assert.InDelta(t, 0.5, locate.EaseInOutQuint(0.5), 1e-9)
	assert.InDelta(t, 1, locate.EaseInOutQuint(1), 1e-9)

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := locate.EaseInOutQuint(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestScrollDuration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, locate.MinScrollDuration, locate.ScrollDuration(10))
	assert.Equal(t, 1500*time.Millisecond, locate.ScrollDuration(3000))
	assert.Equal(t, 1500*time.Millisecond, locate.ScrollDuration(-3000))
	assert.Equal(t, locate.MaxScrollDuration, locate.ScrollDuration(50000))
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", locate.Idle.String())
	assert.Equal(t, "animating", locate.Animating.String())
	assert.Equal(t, "settled", locate.Settled.String())
}
