package helparc

import "time"

// Stats accumulates the counters for one run. It is owned exclusively by
// the orchestrator and must only be updated through its methods; pipeline
// stages never see it.
type Stats struct {
	TotalPagesChecked int
	SuccessfulScrapes int
	FailedScrapes     int
	NotFound          int
	StartedAt         time.Time
}

// NewStats returns a Stats with the run start time recorded.
func NewStats(startedAt time.Time) *Stats {
	return &Stats{StartedAt: startedAt}
}

// RecordSuccess counts a page as checked and successfully scraped.
func (s *Stats) RecordSuccess() {
	s.TotalPagesChecked++
	s.SuccessfulScrapes++
}

// RecordFailure counts a page as checked and failed.
func (s *Stats) RecordFailure() {
	s.TotalPagesChecked++
	s.FailedScrapes++
}

// RecordNotFound counts a page as checked and definitively absent.
func (s *Stats) RecordNotFound() {
	s.TotalPagesChecked++
	s.NotFound++
}

// Summary is the finalized, persisted form of Stats.
type Summary struct {
	TotalPagesChecked int     `json:"total_pages_checked"`
	SuccessfulScrapes int     `json:"successful_scrapes"`
	FailedScrapes     int     `json:"failed_scrapes"`
	NotFound          int     `json:"not_found"`
	DurationSeconds   float64 `json:"duration_seconds"`
	SuccessRate       float64 `json:"success_rate"`
}

// Summarize finalizes the counters as of now. The success rate is defined
// as 0 when no pages were checked.
func (s *Stats) Summarize(now time.Time) *Summary {
	sum := &Summary{
		TotalPagesChecked: s.TotalPagesChecked,
		SuccessfulScrapes: s.SuccessfulScrapes,
		FailedScrapes:     s.FailedScrapes,
		NotFound:          s.NotFound,
		DurationSeconds:   now.Sub(s.StartedAt).Seconds(),
	}
	if s.TotalPagesChecked > 0 {
		sum.SuccessRate = float64(s.SuccessfulScrapes) / float64(s.TotalPagesChecked)
	}
	return sum
}
