package mock

import (
	"context"

	"github.com/fwojciec/helparc"
)

var _ helparc.RunService = (*RunService)(nil)

// RunService is a mock implementation of helparc.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *helparc.Run) error
	FinishRunFn   func(ctx context.Context, id string, summary *helparc.Summary) error
	FindRunByIDFn func(ctx context.Context, id string) (*helparc.Run, error)
	FindRunsFn    func(ctx context.Context, filter helparc.RunFilter) ([]*helparc.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *helparc.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FinishRun(ctx context.Context, id string, summary *helparc.Summary) error {
	return s.FinishRunFn(ctx, id, summary)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*helparc.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter helparc.RunFilter) ([]*helparc.Run, error) {
	return s.FindRunsFn(ctx, filter)
}
