package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/helparc"
)

// Ensure LoggingExtractor implements helparc.Extractor.
var _ helparc.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with per-page logging.
type LoggingExtractor struct {
	next   helparc.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next helparc.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) (*helparc.ExtractResult, error) {
	begin := time.Now()
	result, err := e.next.Extract(html)
	if err != nil {
		e.logger.Error("extract",
			"extractor", e.next.Name(),
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}
	e.logger.Info("extract",
		"extractor", e.next.Name(),
		"title", result.Title,
		"bytes", len(result.ContentHTML),
		"duration", time.Since(begin),
	)
	return result, nil
}

// Name delegates to the wrapped extractor.
func (e *LoggingExtractor) Name() string {
	return e.next.Name()
}
