package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/clarify"
	"github.com/fwojciec/clarify/chat"
)

// Page is an open document that can also serve its current HTML.
type Page interface {
	clarify.Document
	clarify.ContentSource
}

// Assistant answers questions about the open page.
type Assistant interface {
	Ask(ctx context.Context, question string) (*chat.Reply, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Page      Page
	Locator   clarify.Locator
	Pages     clarify.PageReader
	Writer    clarify.PageWriter
	Assistant Assistant
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log progress to stderr"`
	LogFile string `type:"path" env:"CLARIFY_LOG_FILE" help:"Also write logs to this file, rotating it as it grows"`

	Locate  LocateCmd  `cmd:"" help:"Highlight a passage and scroll it into view"`
	Ask     AskCmd     `cmd:"" help:"Ask a question about a page"`
	Chat    ChatCmd    `cmd:"" help:"Ask questions about a page, one per line, until end of input"`
	Extract ExtractCmd `cmd:"" help:"Print a page's main content as markdown"`
}

// PageFlags selects and sizes the page a command works on.
type PageFlags struct {
	Source   string        `arg:"" help:"Page URL or path to an HTML file"`
	Live     bool          `short:"l" help:"Render the page in headless Chrome"`
	Viewport string        `default:"1280x800" env:"CLARIFY_VIEWPORT" help:"Window size as WIDTHxHEIGHT"`
	Timeout  time.Duration `short:"t" default:"10s" help:"Page load timeout"`
}

// LocatorFlags tunes highlighting and scrolling.
type LocatorFlags struct {
	Dwell time.Duration `default:"2s" env:"CLARIFY_DWELL" help:"How long a highlight stays"`
	FPS   float64       `default:"60" help:"Scroll animation frame rate"`
}

// LocateCmd is the "locate" subcommand.
type LocateCmd struct {
	PageFlags    `embed:""`
	LocatorFlags `embed:""`

	Query string `arg:"" help:"Text to find"`
	HTML  bool   `help:"Print the highlighted page HTML"`
}

// AssistantFlags configures the model answering questions.
type AssistantFlags struct {
	Model     string `default:"gemini-2.5-flash" env:"CLARIFY_MODEL" help:"Gemini model"`
	MaxChars  int    `default:"100000" help:"Page content character limit"`
	MaxTokens int    `help:"Prompt token budget (0 disables)"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	PageFlags      `embed:""`
	LocatorFlags   `embed:""`
	AssistantFlags `embed:""`

	Question string `arg:"" help:"Question about the page"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	PageFlags      `embed:""`
	LocatorFlags   `embed:""`
	AssistantFlags `embed:""`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	PageFlags `embed:""`

	MaxChars int    `default:"100000" help:"Page content character limit"`
	Outline  bool   `help:"Print the page's headings instead of its content"`
	Out      string `short:"o" type:"path" help:"Save the page as markdown under this directory"`
}

func (c *CLI) pageFlags(cmd string) PageFlags {
	switch cmd {
	case "ask":
		return c.Ask.PageFlags
	case "chat":
		return c.Chat.PageFlags
	case "extract":
		return c.Extract.PageFlags
	}
	return c.Locate.PageFlags
}

func (c *CLI) locatorFlags(cmd string) LocatorFlags {
	switch cmd {
	case "ask":
		return c.Ask.LocatorFlags
	case "chat":
		return c.Chat.LocatorFlags
	}
	return c.Locate.LocatorFlags
}

func (c *CLI) assistantFlags(cmd string) AssistantFlags {
	if cmd == "chat" {
		return c.Chat.AssistantFlags
	}
	return c.Ask.AssistantFlags
}
