package helparc

import (
	"context"
	"time"
)

// ScrapeResult records the terminal outcome for a single page id. Exactly
// one result is produced per processed page; it is never mutated after the
// pipeline resolves (storage assigns ID and ContentHash at creation time).
type ScrapeResult struct {
	ID          string    `json:"id"`
	RunID       string    `json:"runId"`
	PageID      int       `json:"pageId"`
	URL         string    `json:"url"`
	Success     bool      `json:"success"`
	Title       string    `json:"title,omitempty"`
	Content     string    `json:"content,omitempty"`
	ContentHash string    `json:"contentHash,omitempty"`
	Error       string    `json:"error,omitempty"`
	ScrapedAt   time.Time `json:"scrapedAt"`
}

// Validate returns an error if the result contains invalid fields.
func (r *ScrapeResult) Validate() error {
	if r.PageID <= 0 {
		return Errorf(EINVALID, "result page ID required")
	}
	if r.URL == "" {
		return Errorf(EINVALID, "result URL required")
	}
	if !r.Success && r.Error == "" {
		return Errorf(EINVALID, "failed result requires an error reason")
	}
	return nil
}

// ResultService represents a service for persisting and querying scrape
// results.
type ResultService interface {
	// CreateResult persists a new result.
	CreateResult(ctx context.Context, result *ScrapeResult) error

	// FindResultByID retrieves a result by ID.
	// Returns ENOTFOUND if the result does not exist.
	FindResultByID(ctx context.Context, id string) (*ScrapeResult, error)

	// FindResults retrieves results matching the filter, ordered by page
	// id ascending.
	FindResults(ctx context.Context, filter ResultFilter) ([]*ScrapeResult, error)

	// DeleteResultsByRun removes all results recorded for a run.
	DeleteResultsByRun(ctx context.Context, runID string) error
}

// ResultFilter represents a filter for FindResults.
type ResultFilter struct {
	ID      *string `json:"id"`
	RunID   *string `json:"runId"`
	PageID  *int    `json:"pageId"`
	Success *bool   `json:"success"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
