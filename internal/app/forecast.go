package app

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	forecast "github.com/eugener/forecast/internal"
	"github.com/eugener/forecast/internal/latency"
	"github.com/eugener/forecast/internal/storage"
	"github.com/eugener/forecast/internal/telemetry"
)

// DefaultDelay is the simulated backend latency applied to full reads and
// to touches.
const DefaultDelay = time.Second

// ServiceOptions tunes ForecastService. Zero values select production defaults.
type ServiceOptions struct {
	Delay   time.Duration      // simulated backend latency; negative disables
	Waiter  latency.Waiter     // nil = latency.Timer
	Clock   latency.Clock      // nil = latency.SystemClock
	Metrics *telemetry.Metrics // nil = no metrics
}

// ForecastService exposes forecast lookups, the slow full read behind a cache
// miss, and last-modified touches.
type ForecastService struct {
	store   storage.ForecastStore
	delay   time.Duration
	waiter  latency.Waiter
	clock   latency.Clock
	metrics *telemetry.Metrics
	tracer  trace.Tracer
}

// NewForecastService returns a ForecastService backed by store.
func NewForecastService(store storage.ForecastStore, opts ServiceOptions) *ForecastService {
	s := &ForecastService{
		store:   store,
		delay:   opts.Delay,
		waiter:  opts.Waiter,
		clock:   opts.Clock,
		metrics: opts.Metrics,
		tracer:  telemetry.Tracer("github.com/eugener/forecast/internal/app"),
	}
	if s.delay == 0 {
		s.delay = DefaultDelay
	}
	if s.waiter == nil {
		s.waiter = latency.Timer{}
	}
	if s.clock == nil {
		s.clock = latency.SystemClock{}
	}
	return s
}

// Lookup returns the forecast at id without any simulated latency.
// It returns forecast.ErrNotFound when id does not index the collection.
func (s *ForecastService) Lookup(ctx context.Context, id int) (*forecast.Forecast, error) {
	return s.store.Get(ctx, id)
}

// LookupAll returns the whole collection without any simulated latency.
func (s *ForecastService) LookupAll(ctx context.Context) ([]forecast.Forecast, error) {
	return s.store.All(ctx)
}

// Load performs the slow read that precedes a full response for resource.
// It honours ctx cancellation.
func (s *ForecastService) Load(ctx context.Context, resource string) error {
	ctx, span := s.tracer.Start(ctx, "forecast.load",
		trace.WithAttributes(attribute.String("forecast.resource", resource)),
	)
	defer span.End()

	if err := s.wait(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load interrupted")
		return err
	}
	return nil
}

// Touch sets the LastModified of the forecast at id to the current time and
// then waits out the simulated write latency. The timestamp change is kept
// even if ctx is cancelled during the wait.
func (s *ForecastService) Touch(ctx context.Context, id int) error {
	ctx, span := s.tracer.Start(ctx, "forecast.touch",
		trace.WithAttributes(attribute.Int("forecast.id", id)),
	)
	defer span.End()

	if err := s.store.Touch(ctx, id, s.clock.Now()); err != nil {
		span.RecordError(err)
		return err
	}
	if s.metrics != nil {
		s.metrics.Touches.Inc()
	}
	if err := s.wait(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "touch interrupted")
		return err
	}
	return nil
}

func (s *ForecastService) wait(ctx context.Context) error {
	if s.delay < 0 {
		return nil
	}
	if err := s.waiter.Wait(ctx, s.delay); err != nil {
		return fmt.Errorf("%w: %w", forecast.ErrUnavailable, err)
	}
	return nil
}
