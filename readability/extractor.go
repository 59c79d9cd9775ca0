// Package readability implements helparc.Extractor using the go-shiori
// port of Mozilla's Readability.
package readability

import (
	"strings"

	"github.com/fwojciec/helparc"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements helparc.Extractor at compile time.
var _ helparc.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to isolate the main article region of a
// page, discarding surrounding chrome.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name identifies the extraction engine.
func (e *Extractor) Name() string {
	return "readability"
}

// Extract processes raw HTML and returns the main content region.
func (e *Extractor) Extract(rawHTML string) (*helparc.ExtractResult, error) {
	if rawHTML == "" {
		return nil, helparc.Errorf(helparc.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &helparc.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
