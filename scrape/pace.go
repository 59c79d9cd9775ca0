package scrape

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer enforces the fixed politeness delay between pages using a token
// bucket. The initial token is drained at construction so every Wait,
// including the first, blocks for the full delay.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer with the given inter-page delay. A zero or
// negative delay yields a Pacer that never blocks.
func NewPacer(delay time.Duration) *Pacer {
	if delay <= 0 {
		return &Pacer{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	l := rate.NewLimiter(rate.Every(delay), 1)
	l.Allow()
	return &Pacer{limiter: l}
}

// Wait blocks until the delay has elapsed or the context is canceled.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
