package providers

import (
	"context"
	"math/rand/v2"
	"time"

	"proplink/internal/registry/sources"
)

// Latency simulates the network delay of a portal call.
type Latency interface {
	// Wait blocks for the simulated delay or until ctx is done.
	Wait(ctx context.Context, r sources.LatencyRange) error
}

// RandomLatency waits a uniformly random duration within the portal's range.
type RandomLatency struct{}

func (RandomLatency) Wait(ctx context.Context, r sources.LatencyRange) error {
	d := r.Min
	if span := r.Max - r.Min; span > 0 {
		d += time.Duration(rand.Int64N(int64(span) + 1))
	}
	return sleep(ctx, d)
}

// NoLatency answers immediately.
type NoLatency struct{}

func (NoLatency) Wait(ctx context.Context, _ sources.LatencyRange) error {
	return ctx.Err()
}

// FixedLatency always waits the same duration regardless of the portal range.
type FixedLatency time.Duration

func (f FixedLatency) Wait(ctx context.Context, _ sources.LatencyRange) error {
	return sleep(ctx, time.Duration(f))
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
