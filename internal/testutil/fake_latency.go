// Package testutil provides test doubles shared across package tests.
package testutil

import (
	"context"
	"sync"
	"time"
)

// FakeWaiter records requested waits and returns immediately. A cancelled
// context still yields ctx.Err(), matching latency.Timer.
type FakeWaiter struct {
	mu    sync.Mutex
	waits []time.Duration
	// Err, when non-nil, is returned from every Wait.
	Err error
}

// Wait records d and returns without sleeping.
func (w *FakeWaiter) Wait(ctx context.Context, d time.Duration) error {
	w.mu.Lock()
	w.waits = append(w.waits, d)
	err := w.Err
	w.mu.Unlock()
	if err != nil {
		return err
	}
	return ctx.Err()
}

// Waits returns a copy of all recorded durations.
func (w *FakeWaiter) Waits() []time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]time.Duration(nil), w.waits...)
}

// FakeClock is a manually advanced clock.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock set to now.
func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
