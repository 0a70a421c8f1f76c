// Package chat answers questions about the page a user is reading and, when
// the user asks to be shown something, takes them there.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fwojciec/clarify"
)

// DefaultPromptChars caps the page content sent with each question.
const DefaultPromptChars = 15_000

// Notices shown after the assistant tried to navigate.
const (
	FoundNotice    = "Found and scrolled to the section."
	NotFoundNotice = "Sorry, I couldn't find that exact section. Please try with different keywords."
)

// Reply is the assistant's answer to one question.
type Reply struct {
	// Text is the answer with any navigation directive removed.
	Text string

	// Target is the passage the assistant pointed at, if any.
	Target string

	// Navigated is set when Target was located and scrolled into view.
	Navigated bool
	Match     *clarify.Match

	// Notice tells the user how navigation went. Empty when none was tried.
	Notice string
}

// Assistant answers questions about one page.
type Assistant struct {
	pages   clarify.PageReader
	asker   clarify.Asker
	locator clarify.Locator

	tokens      clarify.TokenCounter
	maxTokens   int
	promptChars int
	logger      *slog.Logger
}

// AssistantOption configures an Assistant.
type AssistantOption func(*Assistant)

// WithTokenBudget trims page content until it fits within max tokens as
// counted by tc.
func WithTokenBudget(tc clarify.TokenCounter, max int) AssistantOption {
	return func(a *Assistant) {
		a.tokens = tc
		a.maxTokens = max
	}
}

// WithPromptChars sets the page content cap per question. Zero disables it.
func WithPromptChars(n int) AssistantOption {
	return func(a *Assistant) {
		a.promptChars = n
	}
}

// WithAssistantLogger sets the logger for navigation failures.
func WithAssistantLogger(l *slog.Logger) AssistantOption {
	return func(a *Assistant) {
		a.logger = l
	}
}

// NewAssistant creates an Assistant. locator may be nil, in which case
// navigation directives are parsed but never acted on.
func NewAssistant(pages clarify.PageReader, asker clarify.Asker, locator clarify.Locator, opts ...AssistantOption) *Assistant {
	a := &Assistant{
		pages:       pages,
		asker:       asker,
		locator:     locator,
		promptChars: DefaultPromptChars,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Ask answers question. The page is only scrolled when the user asked to be
// shown something and the model named a passage; a passage that cannot be
// found is reported in the reply's notice, not as an error.
func (a *Assistant) Ask(ctx context.Context, question string) (*Reply, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, clarify.Errorf(clarify.EINVALID, "question required")
	}

	page, err := a.pages.ReadPage(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading page: %w", err)
	}

	content, err := a.fit(ctx, page.Content)
	if err != nil {
		return nil, err
	}

	navigate := clarify.IsNavigationRequest(question)
	resp, err := a.asker.Ask(ctx, &clarify.Prompt{
		System:   SystemPrompt(navigate),
		Title:    page.Title,
		Content:  content,
		Question: question,
	})
	if err != nil {
		return nil, err
	}

	text, target, ok := clarify.ParseNavigation(resp)
	reply := &Reply{Text: text, Target: target}
	if !ok || !navigate || a.locator == nil {
		return reply, nil
	}

	m, err := a.locator.Locate(ctx, target)
	if err != nil {
		if clarify.ErrorCode(err) == clarify.EINTERNAL {
			a.logger.Warn("navigation failed", "target", target, "err", err)
		}
		reply.Notice = NotFoundNotice
		return reply, nil
	}
	reply.Navigated = true
	reply.Match = m
	reply.Notice = FoundNotice
	return reply, nil
}

// fit cuts content to the character cap and then to the token budget.
func (a *Assistant) fit(ctx context.Context, content string) (string, error) {
	content, _ = Truncate(content, a.promptChars)
	if a.tokens == nil || a.maxTokens <= 0 {
		return content, nil
	}

	for range 5 {
		n, err := a.tokens.CountTokens(ctx, content)
		if err != nil {
			return "", fmt.Errorf("counting tokens: %w", err)
		}
		if n <= a.maxTokens {
			return content, nil
		}
		content = strings.TrimSuffix(content, TruncationSuffix)
		runes := len([]rune(content))
		content, _ = Truncate(content, max(runes*a.maxTokens/n*9/10, 1))
	}
	return content, nil
}
