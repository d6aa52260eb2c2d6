// Package latency provides the injectable wait and clock primitives used to
// simulate slow backend work.
package latency

import (
	"context"
	"time"
)

// Waiter blocks for a duration or until ctx is cancelled.
type Waiter interface {
	// Wait returns nil after d has elapsed, or ctx.Err() if ctx ends first.
	Wait(ctx context.Context, d time.Duration) error
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Timer is the production Waiter backed by time.Timer.
type Timer struct{}

// Wait implements Waiter. Non-positive durations return immediately
// unless ctx is already done.
func (Timer) Wait(ctx context.Context, d time.Duration) error {
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

// SystemClock returns wall-clock time in UTC.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now().UTC() }
