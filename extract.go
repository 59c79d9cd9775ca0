package helparc

// UntitledPage is the title recorded when no usable title can be found.
const UntitledPage = "Untitled"

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata, when available.
	Title string

	// ContentHTML is the main content region as clean HTML, with
	// boilerplate (navigation, ads, footers) removed.
	ContentHTML string
}

// Extractor isolates the main content region from raw page HTML.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)

	// Name identifies the extraction engine (e.g., "trafilatura").
	Name() string
}

// TitleExtractor derives a best-effort human-readable page title.
// Implementations never fail: parse errors yield UntitledPage.
type TitleExtractor interface {
	ExtractTitle(html string) string
}
