package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/clarify"
	"golang.org/x/sync/singleflight"
)

// DefaultMaxChars caps the page content kept for prompts.
const DefaultMaxChars = 100_000

// maxCacheEntries bounds the extraction cache. The cache is reset when full.
const maxCacheEntries = 32

var _ clarify.PageReader = (*ContentReader)(nil)

// ContentReader turns the current HTML of a page into prompt-ready Markdown.
//
// Extraction results are cached by a hash of the HTML, so asking several
// questions about an unchanged page extracts it once. Concurrent reads of
// the same HTML share one extraction.
type ContentReader struct {
	src      clarify.ContentSource
	primary  clarify.Extractor
	fallback clarify.Extractor
	conv     clarify.Converter
	url      string
	maxChars int
	delays   []time.Duration
	logger   *slog.Logger

	group singleflight.Group
	mu    sync.Mutex
	cache map[uint64]*clarify.Page
}

// ReaderOption configures a ContentReader.
type ReaderOption func(*ContentReader)

// WithFallbackExtractor sets the extractor used when the primary one fails
// or finds no content.
func WithFallbackExtractor(e clarify.Extractor) ReaderOption {
	return func(r *ContentReader) {
		r.fallback = e
	}
}

// WithPageURL records where the page came from.
func WithPageURL(url string) ReaderOption {
	return func(r *ContentReader) {
		r.url = url
	}
}

// WithMaxChars sets the content cap. Zero disables it.
func WithMaxChars(n int) ReaderOption {
	return func(r *ContentReader) {
		r.maxChars = n
	}
}

// WithRetryDelays sets the waits between attempts to read the page HTML.
func WithRetryDelays(d []time.Duration) ReaderOption {
	return func(r *ContentReader) {
		r.delays = d
	}
}

// WithLogger sets the logger for retries and extractor fallbacks.
func WithLogger(l *slog.Logger) ReaderOption {
	return func(r *ContentReader) {
		r.logger = l
	}
}

// NewContentReader creates a ContentReader.
func NewContentReader(src clarify.ContentSource, ext clarify.Extractor, conv clarify.Converter, opts ...ReaderOption) *ContentReader {
	r := &ContentReader{
		src:      src,
		primary:  ext,
		conv:     conv,
		maxChars: DefaultMaxChars,
		delays:   DefaultRetryDelays(),
		logger:   slog.New(slog.DiscardHandler),
		cache:    make(map[uint64]*clarify.Page),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadPage reads the page HTML, retrying while the page is unavailable, and
// returns its cleaned main content.
func (r *ContentReader) ReadPage(ctx context.Context) (*clarify.Page, error) {
	html, err := withRetry(ctx, r.delays, r.logger, func(ctx context.Context) (string, error) {
		html, err := r.src.HTML(ctx)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(html) == "" {
			return "", clarify.Errorf(clarify.EINVALID, "page is empty")
		}
		return html, nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading page HTML: %w", err)
	}

	key := xxhash.Sum64String(html)
	if p := r.cached(key); p != nil {
		return p, nil
	}

	v, err, _ := r.group.Do(strconv.FormatUint(key, 16), func() (any, error) {
		if p := r.cached(key); p != nil {
			return p, nil
		}
		p, err := r.extract(html)
		if err != nil {
			return nil, err
		}
		r.store(key, p)
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*clarify.Page), nil
}

func (r *ContentReader) extract(html string) (*clarify.Page, error) {
	article, err := r.primary.Extract(html)
	if (err != nil || strings.TrimSpace(article.ContentHTML) == "") && r.fallback != nil {
		r.logger.Debug("primary extractor found no content, using fallback", "err", err)
		article, err = r.fallback.Extract(html)
	}
	if err != nil {
		return nil, fmt.Errorf("extracting content: %w", err)
	}
	if strings.TrimSpace(article.ContentHTML) == "" {
		return nil, clarify.Errorf(clarify.EINVALID, "page has no readable content")
	}

	md, err := r.conv.Convert(article.ContentHTML)
	if err != nil {
		return nil, fmt.Errorf("converting content: %w", err)
	}

	content, truncated := Truncate(Clean(md), r.maxChars)
	return &clarify.Page{
		URL:       r.url,
		Title:     article.Title,
		Content:   content,
		Truncated: truncated,
	}, nil
}

func (r *ContentReader) cached(key uint64) *clarify.Page {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache[key]
}

func (r *ContentReader) store(key uint64, p *clarify.Page) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.cache) >= maxCacheEntries {
		clear(r.cache)
	}
	r.cache[key] = p
}
