package mock

import (
	"context"

	"github.com/fwojciec/helparc"
)

var _ helparc.ArchiveWriter = (*ArchiveWriter)(nil)

// ArchiveWriter is a mock implementation of helparc.ArchiveWriter.
type ArchiveWriter struct {
	WriteArchiveFn func(ctx context.Context, archive *helparc.Archive) error
	WriteSummaryFn func(ctx context.Context, summary *helparc.Summary) error
}

func (w *ArchiveWriter) WriteArchive(ctx context.Context, archive *helparc.Archive) error {
	return w.WriteArchiveFn(ctx, archive)
}

func (w *ArchiveWriter) WriteSummary(ctx context.Context, summary *helparc.Summary) error {
	return w.WriteSummaryFn(ctx, summary)
}
