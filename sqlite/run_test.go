package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/helparc"
	"github.com/fwojciec/helparc/sqlite"
)

func TestRunService_CreateRun(t *testing.T) {
	t.Parallel()

	t.Run("assigns id and start time", func(t *testing.T) {
		t.Parallel()
		db := mustOpenDB(t)

		run := mustCreateRun(t, db)
		assert.NotEmpty(t, run.ID)
		assert.False(t, run.StartedAt.IsZero())
	})

	t.Run("rejects invalid run", func(t *testing.T) {
		t.Parallel()
		db := mustOpenDB(t)

		err := sqlite.NewRunService(db).CreateRun(context.Background(), &helparc.Run{
			StartID: 10, EndID: 5, URLTemplate: "https://example.com/%d",
		})
		require.Error(t, err)
		assert.Equal(t, helparc.EINVALID, helparc.ErrorCode(err))
	})
}

func TestRunService_FinishRun(t *testing.T) {
	t.Parallel()

	t.Run("stores final statistics", func(t *testing.T) {
		t.Parallel()
		db := mustOpenDB(t)
		svc := sqlite.NewRunService(db)
		run := mustCreateRun(t, db)

		summary := &helparc.Summary{
			TotalPagesChecked: 61,
			SuccessfulScrapes: 40,
			FailedScrapes:     6,
			NotFound:          15,
			SuccessRate:       40.0 / 61.0,
		}
		require.NoError(t, svc.FinishRun(context.Background(), run.ID, summary))

		got, err := svc.FindRunByID(context.Background(), run.ID)
		require.NoError(t, err)
		assert.Equal(t, 61, got.TotalPagesChecked)
		assert.Equal(t, 40, got.SuccessfulScrapes)
		assert.Equal(t, 6, got.FailedScrapes)
		assert.Equal(t, 15, got.NotFound)
		assert.InDelta(t, 40.0/61.0, got.SuccessRate, 1e-9)
		assert.False(t, got.FinishedAt.IsZero())
	})

	t.Run("returns ENOTFOUND for unknown run", func(t *testing.T) {
		t.Parallel()
		db := mustOpenDB(t)

		err := sqlite.NewRunService(db).FinishRun(context.Background(), "missing", &helparc.Summary{})
		require.Error(t, err)
		assert.Equal(t, helparc.ENOTFOUND, helparc.ErrorCode(err))
	})
}

func TestRunService_FindRunByID(t *testing.T) {
	t.Parallel()

	t.Run("returns stored run", func(t *testing.T) {
		t.Parallel()
		db := mustOpenDB(t)
		run := mustCreateRun(t, db)

		got, err := sqlite.NewRunService(db).FindRunByID(context.Background(), run.ID)
		require.NoError(t, err)
		assert.Equal(t, run.ID, got.ID)
		assert.Equal(t, 5290, got.StartID)
		assert.Equal(t, 5350, got.EndID)
		assert.True(t, got.FinishedAt.IsZero())
	})

	t.Run("returns ENOTFOUND for unknown id", func(t *testing.T) {
		t.Parallel()
		db := mustOpenDB(t)

		_, err := sqlite.NewRunService(db).FindRunByID(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, helparc.ENOTFOUND, helparc.ErrorCode(err))
	})
}

func TestRunService_FindRuns(t *testing.T) {
	t.Parallel()

	t.Run("returns most recent first", func(t *testing.T) {
		t.Parallel()
		db := mustOpenDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		first := mustCreateRun(t, db)
		// Started_at has second resolution in RFC3339.
		time.Sleep(1100 * time.Millisecond)
		second := mustCreateRun(t, db)

		runs, err := svc.FindRuns(ctx, helparc.RunFilter{})
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, second.ID, runs[0].ID)
		assert.Equal(t, first.ID, runs[1].ID)
	})

	t.Run("filters by id", func(t *testing.T) {
		t.Parallel()
		db := mustOpenDB(t)
		run := mustCreateRun(t, db)
		mustCreateRun(t, db)

		runs, err := sqlite.NewRunService(db).FindRuns(context.Background(), helparc.RunFilter{ID: &run.ID})
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, run.ID, runs[0].ID)
	})

	t.Run("applies limit", func(t *testing.T) {
		t.Parallel()
		db := mustOpenDB(t)
		mustCreateRun(t, db)
		mustCreateRun(t, db)
		mustCreateRun(t, db)

		runs, err := sqlite.NewRunService(db).FindRuns(context.Background(), helparc.RunFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, runs, 2)
	})
}
