package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/clarify"
	"github.com/fwojciec/clarify/chat"
	"github.com/fwojciec/clarify/fs"
	"github.com/fwojciec/clarify/gemini"
	clarifyhttp "github.com/fwojciec/clarify/http"
	"github.com/fwojciec/clarify/locate"
	"github.com/fwojciec/clarify/rod"
	clarifyslog "github.com/fwojciec/clarify/slog"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	// A .env file is optional; the real environment takes precedence.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher retrieves static pages. Defaults to an HTTP fetcher.
	Fetcher clarify.Fetcher

	// Browser renders live pages. Launched on first use when nil.
	Browser *rod.Browser

	// Getenv looks up configuration that is not passed as a flag.
	Getenv func(string) string

	// Stdin supplies questions to the chat command.
	Stdin io.Reader

	closers []func() error
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Getenv: os.Getenv,
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program, closing pages before the browser.
func (m *Main) Close() error {
	var errs []error
	for i := len(m.closers) - 1; i >= 0; i-- {
		errs = append(errs, m.closers[i]())
	}
	m.closers = nil
	return errors.Join(errs...)
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("clarify"),
		kong.Description("Find passages in web pages and ask questions about them"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'clarify --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	defer m.Close()
	logger, closeLog := newLogger(LogConfig{Verbose: cli.Verbose, File: cli.LogFile}, stderr)
	m.closers = append(m.closers, closeLog)
	deps.Logger = logger

	asks := cmd == "ask" || cmd == "chat"
	interactive := cmd == "locate" || asks

	page, err := m.openPage(ctx, cli.pageFlags(cmd), interactive, deps.Logger, stderr)
	if err != nil {
		return err
	}
	deps.Page = page

	if interactive {
		lf := cli.locatorFlags(cmd)
		doc := clarifyslog.NewLoggingDocument(page, deps.Logger)
		locator := locate.NewLocator(doc, locate.NewFramePacer(lf.FPS), locate.WithDwell(lf.Dwell))
		deps.Locator = clarifyslog.NewLoggingLocator(locator, deps.Logger)
	}

	if asks || cmd == "extract" {
		maxChars := cli.Extract.MaxChars
		if asks {
			maxChars = cli.assistantFlags(cmd).MaxChars
		}
		deps.Pages = clarifyslog.NewLoggingPageReader(
			newPageReader(page, cli.pageFlags(cmd).Source, maxChars, deps.Logger),
			deps.Logger,
		)
	}

	if cmd == "extract" && cli.Extract.Out != "" {
		deps.Writer = fs.NewWriter(cli.Extract.Out)
	}

	if asks {
		af := cli.assistantFlags(cmd)
		apiKey := m.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		opts := []chat.AssistantOption{chat.WithAssistantLogger(deps.Logger)}
		if af.MaxTokens > 0 {
			tc, err := gemini.NewTokenCounter(af.Model)
			if err != nil {
				deps.Logger.Warn("token budget disabled", "model", af.Model, "err", err)
			} else {
				opts = append(opts, chat.WithTokenBudget(tc, af.MaxTokens))
			}
		}

		asker := clarifyslog.NewLoggingAsker(gemini.NewAsker(client, af.Model), deps.Logger)
		deps.Assistant = chat.NewAssistant(deps.Pages, asker, deps.Locator, opts...)
	}

	return kongCtx.Run(deps)
}

// fetcher returns the static page fetcher, creating the default one on
// first use.
func (m *Main) fetcher(timeout time.Duration) clarify.Fetcher {
	if m.Fetcher == nil {
		m.Fetcher = clarifyhttp.NewFetcher(clarifyhttp.WithTimeout(timeout))
		m.closers = append(m.closers, m.Fetcher.Close)
	}
	return m.Fetcher
}

// browser returns the live browser, launching it on first use.
func (m *Main) browser(width, height int, stderr io.Writer) (*rod.Browser, error) {
	if m.Browser != nil {
		return m.Browser, nil
	}
	b, err := rod.NewBrowser(rod.WithViewport(width, height))
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	m.Browser = b
	m.closers = append(m.closers, b.Close)
	return b, nil
}
