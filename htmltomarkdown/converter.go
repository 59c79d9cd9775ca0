// Package htmltomarkdown implements helparc.Converter on top of
// html-to-markdown, with whitespace normalization suited to archive
// assembly.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/helparc"
)

// Ensure Converter implements helparc.Converter at compile time.
var _ helparc.Converter = (*Converter)(nil)

// Converter converts HTML fragments to Markdown. Lines are never wrapped;
// links and images are preserved.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. Every output line is
// trimmed and empty lines are dropped, so no run of blank lines survives.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", helparc.Errorf(helparc.EINVALID, "empty HTML input")
	}

	markdown, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return normalize(markdown), nil
}

// normalize trims each line and drops lines that are empty afterwards.
func normalize(markdown string) string {
	lines := strings.Split(markdown, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
