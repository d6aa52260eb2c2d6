package config

import (
	"context"
	"fmt"
	"log/slog"

	forecast "github.com/eugener/forecast/internal"
	"github.com/eugener/forecast/internal/storage"
)

// Bootstrap seeds the store from the config file when it holds no forecasts.
// A non-empty store (e.g. a reused sqlite file) is left untouched.
func Bootstrap(ctx context.Context, cfg *Config, store storage.ForecastStore) error {
	n, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("count forecasts: %w", err)
	}
	if n > 0 {
		slog.Info("store already seeded, skipping bootstrap", "forecasts", n)
		return nil
	}

	fs := make([]forecast.Forecast, len(cfg.Forecasts))
	for i, e := range cfg.Forecasts {
		fs[i] = forecast.Forecast{
			Date:         e.Date.UTC(),
			LastModified: e.LastModified.UTC(),
			Summary:      e.Summary,
			TemperatureC: e.TemperatureC,
		}
	}
	if err := store.Seed(ctx, fs); err != nil {
		return fmt.Errorf("seed forecasts: %w", err)
	}
	slog.Info("bootstrapped forecasts", "count", len(fs))
	return nil
}
