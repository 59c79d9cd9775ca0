package helparc

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ArchiveTitle is the top-level heading of the assembled archive document.
const ArchiveTitle = "Help Center Archive"

// TimestampFormat is used for the human-readable timestamps embedded in
// the archive.
const TimestampFormat = "2006-01-02 15:04:05"

// Section is the formatted markdown block for one successfully scraped
// page, keyed by page id for ordering.
type Section struct {
	PageID int
	Body   string
}

// SortSections orders sections by page id ascending. Processing order is
// already ascending, but the archive ordering invariant must hold
// regardless of how the sections were collected.
func SortSections(sections []Section) {
	sort.Slice(sections, func(i, j int) bool {
		return sections[i].PageID < sections[j].PageID
	})
}

// FormatSection renders the archive block for a successful result: title
// heading, source link, scrape timestamp, then the markdown body between
// separators.
func FormatSection(r *ScrapeResult) Section {
	var b strings.Builder
	b.WriteString("# " + r.Title + "\n\n")
	fmt.Fprintf(&b, "*Source: [%s](%s)*\n\n", r.URL, r.URL)
	fmt.Fprintf(&b, "*Scraped: %s*\n\n", r.ScrapedAt.Format(TimestampFormat))
	b.WriteString("---\n\n")
	b.WriteString(r.Content)
	b.WriteString("\n\n---\n\n")
	return Section{PageID: r.PageID, Body: b.String()}
}

// Archive is the assembled output document for one run.
type Archive struct {
	GeneratedAt time.Time
	StartID     int
	EndID       int
	Sections    []Section
}

// FormatArchive renders the full archive document: a fixed header followed
// by the section bodies in the order given.
func FormatArchive(a *Archive) string {
	var b strings.Builder
	b.WriteString("# " + ArchiveTitle + "\n\n")
	fmt.Fprintf(&b, "*Generated: %s*\n\n", a.GeneratedAt.Format(TimestampFormat))
	fmt.Fprintf(&b, "*Pages scraped: %d to %d*\n\n", a.StartID, a.EndID)
	b.WriteString("---\n\n")
	bodies := make([]string, 0, len(a.Sections))
	for _, s := range a.Sections {
		bodies = append(bodies, s.Body)
	}
	b.WriteString(strings.Join(bodies, "\n"))
	return b.String()
}

// ArchiveWriter persists the assembled archive and the finalized run
// statistics.
type ArchiveWriter interface {
	// WriteArchive writes the archive document, overwriting any prior
	// file at the destination.
	WriteArchive(ctx context.Context, archive *Archive) error

	// WriteSummary writes the finalized run statistics, overwriting any
	// prior file at the destination.
	WriteSummary(ctx context.Context, summary *Summary) error
}
