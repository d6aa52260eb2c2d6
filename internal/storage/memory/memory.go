// Package memory implements the storage interfaces with a process-local slice.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	forecast "github.com/eugener/forecast/internal"
)

// Store is a slice-backed forecast store. A single RWMutex guards the
// collection so touches never race with readers.
type Store struct {
	mu        sync.RWMutex
	forecasts []forecast.Forecast
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// Get returns a copy of the forecast at id.
func (s *Store) Get(_ context.Context, id int) (*forecast.Forecast, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id < 0 || id >= len(s.forecasts) {
		return nil, fmt.Errorf("forecast %d: %w", id, forecast.ErrNotFound)
	}
	f := s.forecasts[id]
	return &f, nil
}

// All returns a snapshot of the collection.
func (s *Store) All(_ context.Context) ([]forecast.Forecast, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]forecast.Forecast, len(s.forecasts))
	copy(out, s.forecasts)
	return out, nil
}

// Touch sets LastModified of the forecast at id.
func (s *Store) Touch(_ context.Context, id int, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id < 0 || id >= len(s.forecasts) {
		return fmt.Errorf("forecast %d: %w", id, forecast.ErrNotFound)
	}
	s.forecasts[id].LastModified = at
	return nil
}

// Count returns the number of stored forecasts.
func (s *Store) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.forecasts), nil
}

// Seed appends fs, assigning IDs by position.
func (s *Store) Seed(_ context.Context, fs []forecast.Forecast) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range fs {
		f.ID = len(s.forecasts)
		s.forecasts = append(s.forecasts, f)
	}
	return nil
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() error { return nil }
