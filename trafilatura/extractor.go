// Package trafilatura implements helparc.Extractor using go-trafilatura's
// boilerplate-removal heuristics.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/helparc"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements helparc.Extractor at compile time.
var _ helparc.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to isolate the main content region of a
// page. The readability/dom-distiller fallback is enabled so degenerate
// pages still yield a best-effort extraction.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name identifies the extraction engine.
func (e *Extractor) Name() string {
	return "trafilatura"
}

// Extract processes raw HTML and returns the main content region.
func (e *Extractor) Extract(rawHTML string) (*helparc.ExtractResult, error) {
	if rawHTML == "" {
		return nil, helparc.Errorf(helparc.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &helparc.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node back to markup.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
