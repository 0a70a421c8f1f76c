package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	nurl "net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/clarify"
	"github.com/fwojciec/clarify/bluemonday"
	"github.com/fwojciec/clarify/chat"
	"github.com/fwojciec/clarify/goquery"
	"github.com/fwojciec/clarify/htmltomarkdown"
	"github.com/fwojciec/clarify/readability"
	clarifyslog "github.com/fwojciec/clarify/slog"
	"github.com/fwojciec/clarify/trafilatura"
)

// openPage loads the page named by f. Static pages are parsed in process.
// Live pages are rendered in Chrome: interactive commands keep the page open
// until m is closed, the others parse a snapshot of the rendered HTML.
func (m *Main) openPage(ctx context.Context, f PageFlags, interactive bool, logger *slog.Logger, stderr io.Writer) (Page, error) {
	width, height, err := parseViewport(f.Viewport)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, f.Timeout)
	defer cancel()

	var (
		src     string
		fetcher clarify.Fetcher
		url     = f.Source
	)
	switch {
	case f.Live:
		if url, err = pageURL(f.Source); err != nil {
			return nil, err
		}
		b, err := m.browser(width, height, stderr)
		if err != nil {
			return nil, err
		}
		if interactive {
			doc, err := b.Open(ctx, url)
			if err != nil {
				return nil, fmt.Errorf("opening %s: %w", url, err)
			}
			m.closers = append(m.closers, doc.Close)
			return doc, nil
		}
		fetcher = b
	case isURL(f.Source):
		fetcher = m.fetcher(f.Timeout)
	}

	if fetcher != nil {
		src, err = clarifyslog.NewLoggingFetcher(fetcher, logger).Fetch(ctx, url)
	} else {
		src, err = readFile(f.Source)
	}
	if err != nil {
		return nil, err
	}
	return goquery.NewDocument(src, goquery.WithViewport(float64(width), float64(height)))
}

// newPageReader builds the content pipeline for the ask and extract
// commands.
func newPageReader(page Page, source string, maxChars int, logger *slog.Logger) *chat.ContentReader {
	var u *nurl.URL
	if isURL(source) {
		u, _ = nurl.Parse(source)
	}

	var (
		extOpts  []trafilatura.Option
		convOpts []htmltomarkdown.Option
	)
	if u != nil {
		extOpts = append(extOpts, trafilatura.WithPageURL(u))
		convOpts = append(convOpts, htmltomarkdown.WithDomain(u.Scheme+"://"+u.Host))
	}

	return chat.NewContentReader(page,
		bluemonday.NewExtractor(trafilatura.NewExtractor(extOpts...)),
		htmltomarkdown.NewConverter(convOpts...),
		chat.WithFallbackExtractor(bluemonday.NewExtractor(readability.NewExtractor(u))),
		chat.WithPageURL(source),
		chat.WithMaxChars(maxChars),
		chat.WithLogger(logger),
	)
}

// parseViewport parses a window size such as "1280x800".
func parseViewport(s string) (width, height int, err error) {
	if _, err := fmt.Sscanf(strings.ToLower(strings.TrimSpace(s)), "%dx%d", &width, &height); err != nil {
		return 0, 0, clarify.Errorf(clarify.EINVALID, "invalid viewport %q: want WIDTHxHEIGHT", s)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, clarify.Errorf(clarify.EINVALID, "invalid viewport %q: dimensions must be positive", s)
	}
	return width, height, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// pageURL returns a URL Chrome can navigate to, turning file paths into
// file URLs.
func pageURL(source string) (string, error) {
	if isURL(source) || strings.HasPrefix(source, "file://") {
		return source, nil
	}
	abs, err := filepath.Abs(source)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", source, err)
	}
	return (&nurl.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", clarify.Errorf(clarify.ENOTFOUND, "file not found: %s", path)
	} else if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(b), nil
}
