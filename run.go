package helparc

import (
	"context"
	"time"
)

// Run represents one scraping session over an inclusive page-id range.
// The statistics fields are zero until the run is finished.
type Run struct {
	ID          string    `json:"id"`
	StartID     int       `json:"startId"`
	EndID       int       `json:"endId"`
	URLTemplate string    `json:"urlTemplate"`
	StartedAt   time.Time `json:"startedAt"`
	FinishedAt  time.Time `json:"finishedAt,omitzero"`

	TotalPagesChecked int     `json:"totalPagesChecked"`
	SuccessfulScrapes int     `json:"successfulScrapes"`
	FailedScrapes     int     `json:"failedScrapes"`
	NotFound          int     `json:"notFound"`
	SuccessRate       float64 `json:"successRate"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.URLTemplate == "" {
		return Errorf(EINVALID, "run URL template required")
	}
	if r.StartID > r.EndID {
		return Errorf(EINVALID, "run start id %d greater than end id %d", r.StartID, r.EndID)
	}
	return nil
}

// RunService represents a service for persisting and querying runs.
type RunService interface {
	// CreateRun records the start of a new run.
	CreateRun(ctx context.Context, run *Run) error

	// FinishRun stamps the run finished and stores its final statistics.
	// Returns ENOTFOUND if the run does not exist.
	FinishRun(ctx context.Context, id string, summary *Summary) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, most recent first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID *string `json:"id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
