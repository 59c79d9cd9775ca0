// Package helparc archives a numbered range of help-center pages as a
// single markdown document. Each page is fetched over HTTP, its readable
// article content is extracted and converted to markdown, and the
// successful pages are assembled into an archive ordered by page id,
// together with per-run statistics.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, trafilatura/, sqlite/).
package helparc
