// Package gemini answers page questions with Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/clarify"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Sampling settings for page answers.
const (
	Temperature     = 0.5
	MaxOutputTokens = 800
)

var _ clarify.Asker = (*Asker)(nil)

// Asker implements clarify.Asker using Google Gemini.
type Asker struct {
	client *genai.Client
	model  string
}

// NewAsker creates an Asker. An empty model selects DefaultModel.
func NewAsker(client *genai.Client, model string) *Asker {
	if model == "" {
		model = DefaultModel
	}
	return &Asker{client: client, model: model}
}

// Ask sends the prompt and returns the reply text.
func (a *Asker) Ask(ctx context.Context, p *clarify.Prompt) (string, error) {
	if p == nil || strings.TrimSpace(p.Question) == "" {
		return "", clarify.Errorf(clarify.EINVALID, "question required")
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{genai.NewContentFromText(BuildUserPrompt(p), genai.RoleUser)},
		BuildConfig(p),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", clarify.Errorf(clarify.EINTERNAL, "gemini returned nil result")
	}
	return result.Text(), nil
}

// BuildConfig returns the generation settings, carrying the prompt's
// system instructions.
func BuildConfig(p *clarify.Prompt) *genai.GenerateContentConfig {
	temp := float32(Temperature)
	config := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: MaxOutputTokens,
	}
	if p.System != "" {
		config.SystemInstruction = genai.NewContentFromText(p.System, genai.RoleUser)
	}
	return config
}

// BuildUserPrompt renders the page and the question as one user turn.
func BuildUserPrompt(p *clarify.Prompt) string {
	var sb strings.Builder
	if p.Title != "" {
		sb.WriteString("Page title: ")
		sb.WriteString(p.Title)
		sb.WriteString("\n\n")
	}
	sb.WriteString("Page content: ")
	sb.WriteString(p.Content)
	sb.WriteString("\n\nUser question: ")
	sb.WriteString(p.Question)
	return sb.String()
}
