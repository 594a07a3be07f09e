package scheduler

import (
	"context"
	"time"
)

// Refresher blocks until the next display refresh.
type Refresher interface {
	WaitRefresh(ctx context.Context) error
}

// RefreshFunc adapts a function to the Refresher interface.
type RefreshFunc func(ctx context.Context) error

// WaitRefresh calls f.
func (f RefreshFunc) WaitRefresh(ctx context.Context) error { return f(ctx) }

// TickerRefresh emits refresh pulses at a fixed interval. Pulses missed
// while the caller was busy are dropped rather than queued.
type TickerRefresh struct {
	t *time.Ticker
}

// NewTickerRefresh starts a pulse source. Non-positive intervals default to
// 60 pulses per second.
func NewTickerRefresh(interval time.Duration) *TickerRefresh {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &TickerRefresh{t: time.NewTicker(interval)}
}

// WaitRefresh blocks until the next pulse or until ctx is done.
func (r *TickerRefresh) WaitRefresh(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-r.t.C:
		return nil
	}
}

// Stop releases the ticker.
func (r *TickerRefresh) Stop() { r.t.Stop() }
