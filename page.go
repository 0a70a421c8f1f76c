package clarify

import "context"

// Page is the readable content of the page under discussion, prepared for
// a prompt.
type Page struct {
	URL     string
	Title   string
	Content string // Markdown

	// Truncated is set when Content was cut to fit a size limit.
	Truncated bool
}

// PageReader reads the page a conversation is about.
type PageReader interface {
	// ReadPage returns the page's current readable content.
	// Returns EINVALID if the page has no readable content.
	ReadPage(ctx context.Context) (*Page, error)
}

// PageWriter saves a page for reading offline.
type PageWriter interface {
	// WritePage stores page and returns where it was written.
	// Returns EINVALID if the page has no content.
	WritePage(ctx context.Context, page *Page) (string, error)
}

// Heading is an entry in a page outline. Titles are plain text, so each
// one is usable as a locate query.
type Heading struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}
