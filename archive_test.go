package helparc_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/helparc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortSections(t *testing.T) {
	t.Parallel()

	sections := []helparc.Section{
		{PageID: 5303, Body: "c"},
		{PageID: 5290, Body: "a"},
		{PageID: 5297, Body: "b"},
	}

	helparc.SortSections(sections)

	assert.Equal(t, []int{5290, 5297, 5303}, []int{sections[0].PageID, sections[1].PageID, sections[2].PageID})
}

func TestFormatSection(t *testing.T) {
	t.Parallel()

	result := &helparc.ScrapeResult{
		PageID:    5290,
		URL:       "https://example.com/help/5290",
		Success:   true,
		Title:     "Release 5.30",
		Content:   "## Highlights\nLots of fixes.",
		ScrapedAt: time.Date(2026, 8, 23, 9, 30, 0, 0, time.UTC),
	}

	section := helparc.FormatSection(result)

	assert.Equal(t, 5290, section.PageID)
	assert.True(t, strings.HasPrefix(section.Body, "# Release 5.30\n\n"))
	assert.Contains(t, section.Body, "*Source: [https://example.com/help/5290](https://example.com/help/5290)*")
	assert.Contains(t, section.Body, "*Scraped: 2026-08-23 09:30:00*")
	assert.Contains(t, section.Body, "## Highlights\nLots of fixes.")
	assert.True(t, strings.HasSuffix(section.Body, "---\n\n"))
}

func TestFormatArchive(t *testing.T) {
	t.Parallel()

	archive := &helparc.Archive{
		GeneratedAt: time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC),
		StartID:     5,
		EndID:       7,
		Sections: []helparc.Section{
			{PageID: 5, Body: "section five\n"},
			{PageID: 7, Body: "section seven\n"},
		},
	}

	out := helparc.FormatArchive(archive)

	require.True(t, strings.HasPrefix(out, "# Help Center Archive\n\n"))
	assert.Contains(t, out, "*Generated: 2026-08-23 10:00:00*")
	assert.Contains(t, out, "*Pages scraped: 5 to 7*")
	assert.Less(t, strings.Index(out, "section five"), strings.Index(out, "section seven"))
}

func TestFormatArchive_NoSections(t *testing.T) {
	t.Parallel()

	archive := &helparc.Archive{
		GeneratedAt: time.Now(),
		StartID:     5,
		EndID:       5,
	}

	out := helparc.FormatArchive(archive)

	assert.Contains(t, out, "*Pages scraped: 5 to 5*")
	assert.True(t, strings.HasSuffix(out, "---\n\n"))
}
