// Package scrape orchestrates the sequential page pipeline: fetch, title
// extraction, content extraction, markdown conversion, validation, and
// archive assembly. Pages are processed one at a time in ascending id
// order; per-page failures are contained and never abort the run.
package scrape

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/helparc"
)

// Failure reasons recorded on ScrapeResults.
const (
	ReasonNotFound         = "page not found"
	ReasonFetchFailed      = "failed to fetch page"
	ReasonExtractionFailed = "failed to extract meaningful content"
	ReasonConversionFailed = "failed to convert content to markdown"
	ReasonValidationFailed = "extracted content failed validation"
)

// ProgressEvent reports the outcome of one processed page.
type ProgressEvent struct {
	PageID    int
	URL       string
	Completed int
	Total     int
	Success   bool
	Reason    string
}

// ProgressFunc is called after each page resolves.
type ProgressFunc func(ProgressEvent)

// Scraper drives the scrape of an inclusive page-id range. All
// collaborators communicate via return values; the statistics accumulator
// is owned by the Scraper and never shared with pipeline stages.
type Scraper struct {
	Fetcher   helparc.Fetcher
	Titles    helparc.TitleExtractor
	Extractor helparc.Extractor
	Converter helparc.Converter
	Archive   helparc.ArchiveWriter

	// Optional run persistence; nil disables it.
	Runs    helparc.RunService
	Results helparc.ResultService

	Config *helparc.Config
	Logger *slog.Logger

	// Now allows tests to control timestamps. Defaults to time.Now.
	Now func() time.Time
}

// Run processes every id in [startID, endID] in ascending order and
// returns exactly one ScrapeResult per id plus the finalized run summary.
// The archive and summary are written only after the whole range
// completes; write failures are logged and do not affect the returned
// results. A canceled context aborts the run and discards everything
// collected so far.
func (s *Scraper) Run(ctx context.Context, startID, endID int, progress ProgressFunc) ([]*helparc.ScrapeResult, *helparc.Summary, error) {
	cfg := s.Config
	if cfg == nil {
		cfg = helparc.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if startID > endID {
		return nil, nil, helparc.Errorf(helparc.EINVALID, "start id %d greater than end id %d", startID, endID)
	}

	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	now := s.Now
	if now == nil {
		now = time.Now
	}

	stats := helparc.NewStats(now())
	pacer := NewPacer(cfg.Delay)

	total := endID - startID + 1
	results := make([]*helparc.ScrapeResult, 0, total)
	sections := make([]helparc.Section, 0, total)

	logger.Info("starting scrape", "start", startID, "end", endID)

	runID := s.recordRunStart(ctx, startID, endID, cfg, logger)

	for pageID := startID; pageID <= endID; pageID++ {
		if err := ctx.Err(); err != nil {
			// Interrupted: discard partial results, write nothing.
			return nil, nil, err
		}

		res := s.scrapePage(ctx, pageID, cfg, stats, logger, now)
		res.RunID = runID
		results = append(results, res)
		if res.Success {
			sections = append(sections, helparc.FormatSection(res))
		}
		s.persistResult(ctx, res, logger)

		if progress != nil {
			progress(ProgressEvent{
				PageID:    pageID,
				URL:       res.URL,
				Completed: pageID - startID + 1,
				Total:     total,
				Success:   res.Success,
				Reason:    res.Error,
			})
		}

		// Unconditional politeness delay, also after the last id.
		if err := pacer.Wait(ctx); err != nil {
			return nil, nil, err
		}
	}

	helparc.SortSections(sections)
	archive := &helparc.Archive{
		GeneratedAt: now(),
		StartID:     startID,
		EndID:       endID,
		Sections:    sections,
	}
	summary := stats.Summarize(now())

	if s.Archive != nil {
		if err := s.Archive.WriteArchive(ctx, archive); err != nil {
			logger.Error("failed to write archive", "err", err)
		}
		if err := s.Archive.WriteSummary(ctx, summary); err != nil {
			logger.Error("failed to write summary", "err", err)
		}
	}
	s.recordRunFinish(ctx, runID, summary, logger)

	logger.Info("scrape finished",
		"checked", summary.TotalPagesChecked,
		"success", summary.SuccessfulScrapes,
		"failed", summary.FailedScrapes,
		"not_found", summary.NotFound,
	)

	return results, summary, nil
}

// scrapePage runs the per-page state machine and returns its terminal
// result. Every path updates the stats exactly once.
func (s *Scraper) scrapePage(ctx context.Context, pageID int, cfg *helparc.Config, stats *helparc.Stats, logger *slog.Logger, now func() time.Time) *helparc.ScrapeResult {
	url := cfg.PageURL(pageID)
	logger.Info("processing page", "page_id", pageID, "url", url)

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		if helparc.ErrorCode(err) == helparc.ENOTFOUND {
			stats.RecordNotFound()
			logger.Info("page not found", "page_id", pageID, "url", url)
			return failure(pageID, url, "", ReasonNotFound, now())
		}
		stats.RecordFailure()
		logger.Warn("fetch failed", "page_id", pageID, "url", url, "err", err)
		return failure(pageID, url, "", ReasonFetchFailed, now())
	}

	title := s.Titles.ExtractTitle(html)
	logger.Debug("extracted title", "page_id", pageID, "title", title)

	content, ok := s.extractContent(html, url, logger)
	if !ok {
		stats.RecordFailure()
		return failure(pageID, url, title, ReasonExtractionFailed, now())
	}

	markdown, err := s.Converter.Convert(content)
	if err != nil {
		stats.RecordFailure()
		logger.Warn("markdown conversion failed", "page_id", pageID, "url", url, "err", err)
		return failure(pageID, url, title, ReasonConversionFailed, now())
	}

	if !helparc.ValidContent(markdown) {
		stats.RecordFailure()
		logger.Warn("content failed validation", "page_id", pageID, "url", url)
		return failure(pageID, url, title, ReasonValidationFailed, now())
	}

	stats.RecordSuccess()
	logger.Info("scraped page", "page_id", pageID, "url", url, "title", title)
	return &helparc.ScrapeResult{
		PageID:    pageID,
		URL:       url,
		Success:   true,
		Title:     title,
		Content:   markdown,
		ScrapedAt: now(),
	}
}

// extractContent runs the extractor and rejects degenerate extractions.
// Extraction failures are never fatal to the pipeline.
func (s *Scraper) extractContent(html, url string, logger *slog.Logger) (string, bool) {
	result, err := s.Extractor.Extract(html)
	if err != nil {
		logger.Warn("content extraction failed", "url", url, "err", err)
		return "", false
	}
	if len(strings.TrimSpace(result.ContentHTML)) < helparc.MinContentLength {
		logger.Warn("extracted content too short", "url", url)
		return "", false
	}
	return result.ContentHTML, true
}

func (s *Scraper) recordRunStart(ctx context.Context, startID, endID int, cfg *helparc.Config, logger *slog.Logger) string {
	if s.Runs == nil {
		return ""
	}
	run := &helparc.Run{StartID: startID, EndID: endID, URLTemplate: cfg.URLTemplate}
	if err := s.Runs.CreateRun(ctx, run); err != nil {
		logger.Error("failed to record run", "err", err)
		return ""
	}
	return run.ID
}

func (s *Scraper) recordRunFinish(ctx context.Context, runID string, summary *helparc.Summary, logger *slog.Logger) {
	if s.Runs == nil || runID == "" {
		return
	}
	if err := s.Runs.FinishRun(ctx, runID, summary); err != nil {
		logger.Error("failed to finalize run record", "run_id", runID, "err", err)
	}
}

func (s *Scraper) persistResult(ctx context.Context, res *helparc.ScrapeResult, logger *slog.Logger) {
	if s.Results == nil {
		return
	}
	if err := s.Results.CreateResult(ctx, res); err != nil {
		logger.Error("failed to persist result", "page_id", res.PageID, "err", err)
	}
}

func failure(pageID int, url, title, reason string, at time.Time) *helparc.ScrapeResult {
	return &helparc.ScrapeResult{
		PageID:    pageID,
		URL:       url,
		Title:     title,
		Error:     reason,
		ScrapedAt: at,
	}
}
