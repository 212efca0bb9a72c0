package driver

import (
	"context"
	"time"
)

// Pacer decides how long the driver waits before each step.
type Pacer interface {
	// Wait blocks until the next step may run or ctx is done.
	Wait(ctx context.Context) error
}

// Interval returns a Pacer that waits d before each step. d <= 0 behaves like NoDelay.
func Interval(d time.Duration) Pacer {
	if d <= 0 {
		return NoDelay()
	}
	return intervalPacer{d: d}
}

// NoDelay returns a Pacer that never waits but still honors cancellation.
func NoDelay() Pacer { return noDelay{} }

type intervalPacer struct{ d time.Duration }

func (p intervalPacer) Wait(ctx context.Context) error {
	t := time.NewTimer(p.d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type noDelay struct{}

func (noDelay) Wait(ctx context.Context) error { return ctx.Err() }
