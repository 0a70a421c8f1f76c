package clarify

// Converter converts HTML to Markdown, the form page content takes in prompts.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., Article.ContentHTML).
	Convert(html string) (string, error)
}
