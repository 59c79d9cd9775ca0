package scrape_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/helparc/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacer_Wait(t *testing.T) {
	t.Parallel()

	t.Run("zero delay never blocks", func(t *testing.T) {
		t.Parallel()

		p := scrape.NewPacer(0)

		start := time.Now()
		for range 10 {
			require.NoError(t, p.Wait(context.Background()))
		}
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("first wait already pays the delay", func(t *testing.T) {
		t.Parallel()

		p := scrape.NewPacer(50 * time.Millisecond)

		start := time.Now()
		require.NoError(t, p.Wait(context.Background()))
		assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	})

	t.Run("canceled context interrupts the wait", func(t *testing.T) {
		t.Parallel()

		p := scrape.NewPacer(time.Hour)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		require.Error(t, p.Wait(ctx))
	})
}
