package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/clarify"
	"github.com/fwojciec/clarify/mock"
	clarifyslog "github.com/fwojciec/clarify/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingLocator_Locate(t *testing.T) {
	t.Parallel()

	t.Run("logs the chosen match", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Locator{
			LocateFn: func(ctx context.Context, query string) (*clarify.Match, error) {
				return &clarify.Match{
					Node:     &clarify.TextNode{ID: "7", Tag: "h2"},
					Term:     "pricing",
					Span:     "Pricing",
					Score:    42,
					Strategy: clarify.StrategyKeyword,
				}, nil
			},
		}

		locator := clarifyslog.NewLoggingLocator(inner, logger)
		m, err := locator.Locate(context.Background(), "pricing tiers")

		require.NoError(t, err)
		assert.Equal(t, "7", m.Node.ID)
		output := buf.String()
		assert.Contains(t, output, "msg=locate")
		assert.Contains(t, output, `query="pricing tiers"`)
		assert.Contains(t, output, "strategy=keyword")
		assert.Contains(t, output, "term=pricing")
		assert.Contains(t, output, "score=42")
		assert.Contains(t, output, "node=7")
		assert.Contains(t, output, "tag=h2")
		assert.Contains(t, output, "duration=")
		assert.NotContains(t, output, "err=")
	})

	t.Run("logs error code when nothing matches", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Locator{
			LocateFn: func(ctx context.Context, query string) (*clarify.Match, error) {
				return nil, clarify.Errorf(clarify.ENOTFOUND, "no visible passage matches %q", query)
			},
		}

		locator := clarifyslog.NewLoggingLocator(inner, logger)
		m, err := locator.Locate(context.Background(), "missing")

		require.Error(t, err)
		assert.Nil(t, m)
		assert.Equal(t, clarify.ENOTFOUND, clarify.ErrorCode(err))
		output := buf.String()
		assert.Contains(t, output, "code=not_found")
		assert.Contains(t, output, "err=")
		assert.NotContains(t, output, "strategy=")
	})
}
