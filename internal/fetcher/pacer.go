package fetcher

import (
	"context"
	"time"
)

// Pacer spaces out consecutive requests to the same upstream.
type Pacer struct {
	delay time.Duration
}

// NewPacer returns a Pacer that waits delay between pages. A non-positive
// delay disables pacing.
func NewPacer(delay time.Duration) *Pacer {
	return &Pacer{delay: delay}
}

// Wait blocks for the configured delay or until ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(p.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
