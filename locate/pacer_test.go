package locate_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/clarify/locate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramePacer_NextFrame(t *testing.T) {
	t.Parallel()

	t.Run("paces frames", func(t *testing.T) {
		t.Parallel()

		p := locate.NewFramePacer(100)
		ctx := context.Background()

		first, err := p.NextFrame(ctx)
		require.NoError(t, err)
		second, err := p.NextFrame(ctx)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, second.Sub(first), 5*time.Millisecond)
	})

	t.Run("returns error when context is canceled", func(t *testing.T) {
		t.Parallel()

		p := locate.NewFramePacer(1)
		ctx, cancel := context.WithCancel(context.Background())
		_, err := p.NextFrame(ctx) // consume the initial token
		require.NoError(t, err)
		cancel()

		_, err = p.NextFrame(ctx)

		assert.Error(t, err)
	})
}

func TestFramePacer_AfterFunc(t *testing.T) {
	t.Parallel()

	t.Run("calls function after delay", func(t *testing.T) {
		t.Parallel()

		p := locate.NewFramePacer(locate.DefaultFPS)
		done := make(chan struct{})

		p.AfterFunc(time.Millisecond, func() { close(done) })

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("AfterFunc did not fire")
		}
	})

	t.Run("stop prevents the call", func(t *testing.T) {
		t.Parallel()

		p := locate.NewFramePacer(locate.DefaultFPS)
		fired := make(chan struct{}, 1)

		stop := p.AfterFunc(50*time.Millisecond, func() { fired <- struct{}{} })

		assert.True(t, stop())
		select {
		case <-fired:
			t.Fatal("stopped AfterFunc fired")
		case <-time.After(100 * time.Millisecond):
		}
	})
}
