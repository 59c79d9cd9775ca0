package helparc

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g., from an Extractor) into
	// Markdown. Conversion failures are returned as errors; the pipeline
	// records them as failed scrapes rather than aborting the run.
	Convert(html string) (string, error)
}
