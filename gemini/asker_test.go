package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/clarify"
	"github.com/fwojciec/clarify/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsker_Ask_ReturnsErrorWhenQuestionEmpty(t *testing.T) {
	t.Parallel()

	asker := gemini.NewAsker(nil, "") // nil client ok, no request is made

	_, err := asker.Ask(context.Background(), &clarify.Prompt{Content: "page", Question: "  "})

	require.Error(t, err)
	assert.Equal(t, clarify.EINVALID, clarify.ErrorCode(err))
	assert.Equal(t, "question required", clarify.ErrorMessage(err))
}

func TestAsker_Ask_ReturnsErrorWhenPromptNil(t *testing.T) {
	t.Parallel()

	_, err := gemini.NewAsker(nil, "").Ask(context.Background(), nil)

	assert.Equal(t, clarify.EINVALID, clarify.ErrorCode(err))
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("sets system instruction from prompt", func(t *testing.T) {
		t.Parallel()

		config := gemini.BuildConfig(&clarify.Prompt{System: "Your name is Clarify."})

		require.NotNil(t, config.SystemInstruction)
		require.Len(t, config.SystemInstruction.Parts, 1)
		assert.Equal(t, "Your name is Clarify.", config.SystemInstruction.Parts[0].Text)
	})

	t.Run("omits empty system instruction", func(t *testing.T) {
		t.Parallel()

		config := gemini.BuildConfig(&clarify.Prompt{})

		assert.Nil(t, config.SystemInstruction)
	})

	t.Run("sets sampling limits", func(t *testing.T) {
		t.Parallel()

		config := gemini.BuildConfig(&clarify.Prompt{})

		require.NotNil(t, config.Temperature)
		assert.InDelta(t, 0.5, *config.Temperature, 0.001)
		assert.Equal(t, int32(800), config.MaxOutputTokens)
	})
}

func TestBuildUserPrompt(t *testing.T) {
	t.Parallel()

	t.Run("contains title, content and question", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildUserPrompt(&clarify.Prompt{
			System:   "secret instructions",
			Title:    "Acme results",
			Content:  "Revenue grew 12%.",
			Question: "How much did revenue grow?",
		})

		assert.Equal(t, "Page title: Acme results\n\nPage content: Revenue grew 12%.\n\nUser question: How much did revenue grow?", prompt)
		assert.NotContains(t, prompt, "secret instructions")
	})

	t.Run("omits missing title", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildUserPrompt(&clarify.Prompt{Content: "Body", Question: "Why?"})

		assert.Equal(t, "Page content: Body\n\nUser question: Why?", prompt)
	})
}
