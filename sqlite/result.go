package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/helparc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ helparc.ResultService = (*ResultService)(nil)

// ResultService implements helparc.ResultService using SQLite.
type ResultService struct {
	db *DB
}

// NewResultService creates a new ResultService.
func NewResultService(db *DB) *ResultService {
	return &ResultService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// CreateResult persists a new result. The ID and content hash are
// assigned here; the caller's struct is updated in place.
func (s *ResultService) CreateResult(ctx context.Context, result *helparc.ScrapeResult) error {
	if err := result.Validate(); err != nil {
		return err
	}
	if result.RunID == "" {
		return helparc.Errorf(helparc.EINVALID, "result run ID required")
	}

	result.ID = uuid.New().String()
	if result.ScrapedAt.IsZero() {
		result.ScrapedAt = time.Now().UTC()
	}
	if result.Content != "" {
		result.ContentHash = hashContent(result.Content)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO results (id, run_id, page_id, url, success, title, content, content_hash, error, scraped_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, result.ID, result.RunID, result.PageID, result.URL, result.Success,
		result.Title, result.Content, result.ContentHash, result.Error,
		result.ScrapedAt.Format(time.RFC3339))

	return err
}

// FindResultByID retrieves a result by ID.
func (s *ResultService) FindResultByID(ctx context.Context, id string) (*helparc.ScrapeResult, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, run_id, page_id, url, success, title, content, content_hash, error, scraped_at
		FROM results
		WHERE id = ?
	`, id)

	result, err := scanResult(row.Scan)
	if err == sql.ErrNoRows {
		return nil, helparc.Errorf(helparc.ENOTFOUND, "result not found")
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

// FindResults retrieves results matching the filter, ordered by page id
// ascending.
func (s *ResultService) FindResults(ctx context.Context, filter helparc.ResultFilter) ([]*helparc.ScrapeResult, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, run_id, page_id, url, success, title, content, content_hash, error, scraped_at FROM results WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.PageID != nil {
		query.WriteString(" AND page_id = ?")
		args = append(args, *filter.PageID)
	}
	if filter.Success != nil {
		query.WriteString(" AND success = ?")
		args = append(args, *filter.Success)
	}

	query.WriteString(" ORDER BY page_id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*helparc.ScrapeResult
	for rows.Next() {
		result, err := scanResult(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// DeleteResultsByRun removes all results recorded for a run.
func (s *ResultService) DeleteResultsByRun(ctx context.Context, runID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM results WHERE run_id = ?", runID)
	return err
}

func scanResult(scan func(dest ...any) error) (*helparc.ScrapeResult, error) {
	var result helparc.ScrapeResult
	var scrapedAt string

	if err := scan(&result.ID, &result.RunID, &result.PageID, &result.URL,
		&result.Success, &result.Title, &result.Content, &result.ContentHash,
		&result.Error, &scrapedAt); err != nil {
		return nil, err
	}

	var err error
	if result.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at"); err != nil {
		return nil, err
	}

	return &result, nil
}
