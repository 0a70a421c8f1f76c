package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/clarify"
	"github.com/fwojciec/clarify/mock"
	clarifyslog "github.com/fwojciec/clarify/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingAsker_Ask(t *testing.T) {
	t.Parallel()

	t.Run("logs sizes without prompt text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Asker{
			AskFn: func(ctx context.Context, p *clarify.Prompt) (string, error) {
				return "Yes.", nil
			},
		}

		asker := clarifyslog.NewLoggingAsker(inner, logger)
		reply, err := asker.Ask(context.Background(), &clarify.Prompt{
			Content:  "secret page text",
			Question: "Is it secret?",
		})

		require.NoError(t, err)
		assert.Equal(t, "Yes.", reply)
		output := buf.String()
		assert.Contains(t, output, "msg=ask")
		assert.Contains(t, output, "content_chars=16")
		assert.Contains(t, output, "reply_chars=4")
		assert.NotContains(t, output, "secret")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Asker{
			AskFn: func(ctx context.Context, p *clarify.Prompt) (string, error) {
				return "", errors.New("quota exceeded")
			},
		}

		asker := clarifyslog.NewLoggingAsker(inner, logger)
		_, err := asker.Ask(context.Background(), nil)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "content_chars=0")
		assert.Contains(t, output, `err="quota exceeded"`)
	})
}
