package mock

import (
	"context"

	"github.com/fwojciec/helparc"
)

var _ helparc.ResultService = (*ResultService)(nil)

// ResultService is a mock implementation of helparc.ResultService.
type ResultService struct {
	CreateResultFn       func(ctx context.Context, result *helparc.ScrapeResult) error
	FindResultByIDFn     func(ctx context.Context, id string) (*helparc.ScrapeResult, error)
	FindResultsFn        func(ctx context.Context, filter helparc.ResultFilter) ([]*helparc.ScrapeResult, error)
	DeleteResultsByRunFn func(ctx context.Context, runID string) error
}

func (s *ResultService) CreateResult(ctx context.Context, result *helparc.ScrapeResult) error {
	return s.CreateResultFn(ctx, result)
}

func (s *ResultService) FindResultByID(ctx context.Context, id string) (*helparc.ScrapeResult, error) {
	return s.FindResultByIDFn(ctx, id)
}

func (s *ResultService) FindResults(ctx context.Context, filter helparc.ResultFilter) ([]*helparc.ScrapeResult, error) {
	return s.FindResultsFn(ctx, filter)
}

func (s *ResultService) DeleteResultsByRun(ctx context.Context, runID string) error {
	return s.DeleteResultsByRunFn(ctx, runID)
}
