package gemini

import (
	"context"

	"github.com/fwojciec/clarify"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ clarify.TokenCounter = (*TokenCounter)(nil)

// TokenCounter measures page content against a prompt token budget. Tokens
// are counted locally, so trimming a page to fit costs no API calls.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a TokenCounter for model. An empty model selects
// DefaultModel. Models without a local tokenizer are rejected with EINVALID.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, clarify.Errorf(clarify.EINVALID, "no local tokenizer for model %q: %v", model, err)
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens counts text as a single user turn.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}, nil)
	if err != nil {
		return 0, err
	}
	return int(result.TotalTokens), nil
}
