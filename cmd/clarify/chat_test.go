package main_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/clarify"
	"github.com/fwojciec/clarify/chat"
	main "github.com/fwojciec/clarify/cmd/clarify"
	"github.com/fwojciec/clarify/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("answers every question from one page extraction", func(t *testing.T) {
		t.Parallel()

		var htmlReads, extractions int
		src := &mock.ContentSource{
			HTMLFn: func(context.Context) (string, error) {
				htmlReads++
				return "<html><body><p>Plans start at $9.</p></body></html>", nil
			},
		}
		ext := &mock.Extractor{
			ExtractFn: func(string) (*clarify.Article, error) {
				extractions++
				return &clarify.Article{Title: "Pricing", ContentHTML: "Plans start at $9."}, nil
			},
		}
		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) { return html, nil },
		}
		var prompts []*clarify.Prompt
		asker := &mock.Asker{
			AskFn: func(_ context.Context, p *clarify.Prompt) (string, error) {
				prompts = append(prompts, p)
				return "Answer " + p.Question, nil
			},
		}
		reader := chat.NewContentReader(src, ext, conv)

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdin:     strings.NewReader("How much?\n\nIs there a free tier?\n"),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Assistant: chat.NewAssistant(reader, asker, nil),
		}

		err := (&main.ChatCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 1, extractions)
		assert.Equal(t, 2, htmlReads)
		require.Len(t, prompts, 2)
		assert.Equal(t, "Plans start at $9.", prompts[1].Content)
		assert.Contains(t, stdout.String(), "Answer How much?\n")
		assert.Contains(t, stdout.String(), "Answer Is there a free tier?\n")
	})

	t.Run("keeps going after a failed question", func(t *testing.T) {
		t.Parallel()

		var asked []string
		assistant := assistantFunc(func(_ context.Context, question string) (*chat.Reply, error) {
			asked = append(asked, question)
			if question == "first" {
				return nil, errors.New("quota exceeded")
			}
			return &chat.Reply{Text: "ok"}, nil
		})

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdin:     strings.NewReader("first\nsecond\n"),
			Stdout:    stdout,
			Stderr:    stderr,
			Assistant: assistant,
		}

		require.NoError(t, (&main.ChatCmd{}).Run(deps))

		assert.Equal(t, []string{"first", "second"}, asked)
		assert.Contains(t, stderr.String(), "error: Internal error.")
		assert.Contains(t, stdout.String(), "ok\n")
	})

	t.Run("stops at exit", func(t *testing.T) {
		t.Parallel()

		var asked []string
		assistant := assistantFunc(func(_ context.Context, question string) (*chat.Reply, error) {
			asked = append(asked, question)
			return &chat.Reply{Text: "ok"}, nil
		})

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdin:     strings.NewReader("first\nexit\nsecond\n"),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Assistant: assistant,
		}

		require.NoError(t, (&main.ChatCmd{}).Run(deps))

		assert.Equal(t, []string{"first"}, asked)
	})
}
