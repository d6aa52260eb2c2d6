package testutil

import (
	"context"
	"testing"
	"time"

	forecast "github.com/eugener/forecast/internal"
	"github.com/eugener/forecast/internal/storage/memory"
)

// Seed instants used across tests.
var (
	FirstModified  = time.Date(2022, 1, 1, 7, 0, 0, 0, time.UTC)
	SecondModified = time.Date(2022, 1, 2, 8, 0, 0, 0, time.UTC)
)

// SeedForecasts returns the two forecasts the service ships with.
func SeedForecasts() []forecast.Forecast {
	return []forecast.Forecast{
		{
			Date:         time.Date(2022, 1, 1, 7, 0, 0, 0, time.UTC),
			LastModified: FirstModified,
			Summary:      "summary 1",
			TemperatureC: -12,
		},
		{
			Date:         time.Date(2022, 2, 1, 7, 0, 0, 0, time.UTC),
			LastModified: SecondModified,
			Summary:      "summary 2",
			TemperatureC: -11,
		},
	}
}

// NewSeededStore returns a memory store holding SeedForecasts.
func NewSeededStore(t testing.TB) *memory.Store {
	t.Helper()
	s := memory.New()
	if err := s.Seed(context.Background(), SeedForecasts()); err != nil {
		t.Fatal(err)
	}
	return s
}
