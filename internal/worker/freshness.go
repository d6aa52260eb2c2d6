package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	forecast "github.com/eugener/forecast/internal"
	"github.com/eugener/forecast/internal/latency"
)

const defaultFreshnessInterval = 15 * time.Second

// CollectionReader is the store view consumed by FreshnessReporter.
type CollectionReader interface {
	All(ctx context.Context) ([]forecast.Forecast, error)
}

// FreshnessReporter periodically publishes the age of the most recently
// modified forecast, i.e. how long the collection ETag has been stable.
type FreshnessReporter struct {
	store    CollectionReader
	gauge    prometheus.Gauge
	clock    latency.Clock
	interval time.Duration
}

// NewFreshnessReporter creates a reporter sampling store every interval.
// A nil clock selects latency.SystemClock.
func NewFreshnessReporter(store CollectionReader, gauge prometheus.Gauge, clock latency.Clock, interval time.Duration) *FreshnessReporter {
	if clock == nil {
		clock = latency.SystemClock{}
	}
	if interval <= 0 {
		interval = defaultFreshnessInterval
	}
	return &FreshnessReporter{store: store, gauge: gauge, clock: clock, interval: interval}
}

// Name returns the worker identifier.
func (f *FreshnessReporter) Name() string { return "freshness_reporter" }

// Run samples immediately, then on every tick until ctx is cancelled.
func (f *FreshnessReporter) Run(ctx context.Context) error {
	f.sample(ctx)

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			f.sample(ctx)
		case <-ctx.Done():
			return nil
		}
	}
}

func (f *FreshnessReporter) sample(ctx context.Context) {
	fs, err := f.store.All(ctx)
	if err != nil {
		if ctx.Err() == nil {
			slog.Warn("freshness sample failed", "error", err)
		}
		return
	}
	if len(fs) == 0 {
		return
	}
	age := f.clock.Now().Sub(forecast.MaxLastModified(fs))
	f.gauge.Set(max(0, age.Seconds()))
}
