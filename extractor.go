package clarify

// Article holds the readable content extracted from an HTML page.
type Article struct {
	// Title is the page title extracted from metadata.
	Title string

	// SiteName and Byline are optional metadata used to introduce the page.
	SiteName string
	Byline   string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts the readable part of an HTML page, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// Returns EINVALID for empty input.
	Extract(html string) (*Article, error)
}
