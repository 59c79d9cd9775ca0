// Package goquery provides goquery-backed HTML inspection helpers.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/helparc"
)

// Ensure TitleExtractor implements helparc.TitleExtractor at compile time.
var _ helparc.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor derives a human-readable title from raw page HTML.
type TitleExtractor struct{}

// NewTitleExtractor creates a new TitleExtractor.
func NewTitleExtractor() *TitleExtractor {
	return &TitleExtractor{}
}

// ExtractTitle returns the <title> text with internal whitespace runs
// collapsed to single spaces. Falls back to the first <h1>, then to
// helparc.UntitledPage. Parse errors also yield helparc.UntitledPage.
func (e *TitleExtractor) ExtractTitle(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return helparc.UntitledPage
	}

	if title := collapseWhitespace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	if h1 := collapseWhitespace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return helparc.UntitledPage
}

// collapseWhitespace trims and squeezes whitespace runs to single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
