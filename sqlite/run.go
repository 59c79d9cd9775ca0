package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/helparc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ helparc.RunService = (*RunService)(nil)

// RunService implements helparc.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun records the start of a new run.
func (s *RunService) CreateRun(ctx context.Context, run *helparc.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.StartedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, start_id, end_id, url_template, started_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.StartID, run.EndID, run.URLTemplate, run.StartedAt.Format(time.RFC3339))

	return err
}

// FinishRun stamps the run finished and stores its final statistics.
func (s *RunService) FinishRun(ctx context.Context, id string, summary *helparc.Summary) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE runs
		SET finished_at = ?, total_pages_checked = ?, successful_scrapes = ?,
			failed_scrapes = ?, not_found = ?, success_rate = ?
		WHERE id = ?
	`, time.Now().UTC().Format(time.RFC3339), summary.TotalPagesChecked,
		summary.SuccessfulScrapes, summary.FailedScrapes, summary.NotFound,
		summary.SuccessRate, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return helparc.Errorf(helparc.ENOTFOUND, "run not found")
	}

	return nil
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*helparc.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, start_id, end_id, url_template, started_at, finished_at,
			total_pages_checked, successful_scrapes, failed_scrapes, not_found, success_rate
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row.Scan)
	if err == sql.ErrNoRows {
		return nil, helparc.Errorf(helparc.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	return run, nil
}

// FindRuns retrieves runs matching the filter, most recent first.
func (s *RunService) FindRuns(ctx context.Context, filter helparc.RunFilter) ([]*helparc.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, start_id, end_id, url_template, started_at, finished_at,
		total_pages_checked, successful_scrapes, failed_scrapes, not_found, success_rate
		FROM runs WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}

	query.WriteString(" ORDER BY started_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*helparc.Run
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// scanRun reads one run row. The finished_at column is empty until
// FinishRun has been called.
func scanRun(scan func(dest ...any) error) (*helparc.Run, error) {
	var run helparc.Run
	var startedAt, finishedAt string

	if err := scan(&run.ID, &run.StartID, &run.EndID, &run.URLTemplate,
		&startedAt, &finishedAt, &run.TotalPagesChecked, &run.SuccessfulScrapes,
		&run.FailedScrapes, &run.NotFound, &run.SuccessRate); err != nil {
		return nil, err
	}

	var err error
	if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
		return nil, err
	}
	if finishedAt != "" {
		if run.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
			return nil, err
		}
	}

	return &run, nil
}
