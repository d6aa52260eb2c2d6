// Package forecast defines domain types for the forecast service.
// This package has no project imports -- it is the dependency root.
package forecast

import (
	"context"
	"time"
)

// --- Forecast ---

// Forecast is a single weather forecast entity. ID is its ordinal position
// in the backing collection.
type Forecast struct {
	ID           int
	Date         time.Time
	TemperatureC int
	Summary      string
	LastModified time.Time
}

// TemperatureF converts TemperatureC to Fahrenheit using the integer
// approximation clients of this API have always seen.
func (f Forecast) TemperatureF() int {
	return 32 + int(float64(f.TemperatureC)/0.5556)
}

// MaxLastModified returns the latest LastModified across fs.
// The zero time is returned for an empty slice.
func MaxLastModified(fs []Forecast) time.Time {
	var latest time.Time
	for _, f := range fs {
		if f.LastModified.After(latest) {
			latest = f.LastModified
		}
	}
	return latest
}

// --- Context keys ---

type contextKey int

const ctxKeyMeta contextKey = 0

// requestMeta bundles per-request values into a single context allocation.
type requestMeta struct {
	RequestID string
}

// metaFromContext returns the requestMeta stored in ctx, or nil.
func metaFromContext(ctx context.Context) *requestMeta {
	m, _ := ctx.Value(ctxKeyMeta).(*requestMeta)
	return m
}

// RequestIDFromContext extracts the request ID from context.
func RequestIDFromContext(ctx context.Context) string {
	if m := metaFromContext(ctx); m != nil {
		return m.RequestID
	}
	return ""
}

// ContextWithRequestID returns a context carrying the given request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyMeta, &requestMeta{RequestID: id})
}
