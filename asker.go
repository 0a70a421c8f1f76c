package clarify

import "context"

// Prompt is a single question about a page, ready for a chat model.
type Prompt struct {
	// System carries the assistant's standing instructions.
	System string

	// Title and Content describe the page under discussion.
	Title   string
	Content string // Markdown

	Question string
}

// Asker sends a prompt to a chat completion model and returns its reply.
type Asker interface {
	// Ask returns the model's reply to the prompt.
	// Returns EINVALID if the prompt has no question.
	Ask(ctx context.Context, prompt *Prompt) (string, error)
}
