// Package storage defines persistence interfaces for the forecast service.
package storage

import (
	"context"
	"time"

	forecast "github.com/eugener/forecast/internal"
)

// ForecastStore manages the forecast collection. IDs are ordinal positions
// assigned in insertion order starting at zero.
type ForecastStore interface {
	// Get returns a copy of the forecast at id, or forecast.ErrNotFound
	// when id does not index the collection.
	Get(ctx context.Context, id int) (*forecast.Forecast, error)
	// All returns copies of every forecast ordered by ID.
	All(ctx context.Context) ([]forecast.Forecast, error)
	// Touch overwrites the LastModified timestamp of the forecast at id.
	Touch(ctx context.Context, id int, at time.Time) error
	// Count returns the collection size.
	Count(ctx context.Context) (int, error)
	// Seed appends forecasts; their ID fields are ignored and reassigned.
	Seed(ctx context.Context, fs []forecast.Forecast) error
}

// Store combines the forecast store with lifecycle hooks.
type Store interface {
	ForecastStore
	Ping(ctx context.Context) error
	Close() error
}
