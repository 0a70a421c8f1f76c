// Package fs saves extracted pages as markdown files.
package fs

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/clarify"
)

var _ clarify.PageWriter = (*Writer)(nil)

// Writer writes pages as markdown files under a base directory.
type Writer struct {
	baseDir string
	now     func() time.Time
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithNow sets the clock used for the extraction date.
func WithNow(now func() time.Time) WriterOption {
	return func(w *Writer) {
		w.now = now
	}
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string, opts ...WriterOption) *Writer {
	w := &Writer{baseDir: baseDir, now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WritePage writes page to disk with YAML frontmatter. The file is written
// to a temporary name first and renamed into place, so readers never see a
// partial page.
func (w *Writer) WritePage(ctx context.Context, page *clarify.Page) (string, error) {
	if page == nil || strings.TrimSpace(page.Content) == "" {
		return "", clarify.Errorf(clarify.EINVALID, "page has no content")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	relPath, err := PagePath(page.URL)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	tmp := fullPath + ".tmp"
	if err := os.WriteFile(tmp, []byte(FormatPage(page, w.now())), 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, fullPath); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	return fullPath, nil
}

// PagePath converts a page URL or file path to a relative markdown path.
// Example: https://example.com/docs/api/users → docs/api/users.md
func PagePath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", clarify.Errorf(clarify.EINVALID, "invalid page URL %q", rawURL)
	}

	p := u.Path
	if u.Scheme == "" || u.Scheme == "file" {
		// Local files keep only their base name.
		p = path.Base(filepath.ToSlash(p))
	}

	if p == "" || p == "/" || p == "." {
		return "index.md", nil
	}

	p = strings.TrimPrefix(p, "/")
	if strings.HasSuffix(p, "/") {
		return p + "index.md", nil
	}

	for _, ext := range []string{".html", ".htm"} {
		p = strings.TrimSuffix(p, ext)
	}

	// Reject anything that would escape the base directory.
	clean := path.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", clarify.Errorf(clarify.EINVALID, "page path escapes output directory: %q", rawURL)
	}
	return clean + ".md", nil
}

// FormatPage formats a page with YAML frontmatter. Source and title are
// double-quoted scalars.
func FormatPage(page *clarify.Page, extracted time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(strconv.Quote(page.URL))
	b.WriteString("\ntitle: ")
	b.WriteString(strconv.Quote(page.Title))
	b.WriteString("\nextracted: ")
	b.WriteString(extracted.Format("2006-01-02"))
	if page.Truncated {
		b.WriteString("\ntruncated: true")
	}
	b.WriteString("\n---\n\n")
	b.WriteString(page.Content)
	return b.String()
}
