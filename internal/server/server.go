// Package server implements the HTTP transport layer for the forecast service.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/eugener/forecast/internal/app"
	"github.com/eugener/forecast/internal/telemetry"
)

// ReadyChecker reports whether the system is ready to serve traffic.
type ReadyChecker func(ctx context.Context) error

// Deps holds all dependencies for the HTTP server.
type Deps struct {
	Forecasts      *app.ForecastService
	ReadyCheck     ReadyChecker       // nil = always ready (for tests)
	Cache          Cache              // nil = no body caching
	CacheTTL       time.Duration      // TTL for cached bodies
	Metrics        *telemetry.Metrics // nil = no request metrics
	MetricsHandler http.Handler       // nil = no /metrics endpoint
}

// New creates an http.Handler with all routes and middleware wired.
func New(deps Deps) http.Handler {
	s := &server{deps: deps}

	r := chi.NewRouter()

	// Global middleware
	r.Use(s.recovery)
	r.Use(s.requestID)
	r.Use(s.logging)
	if deps.Metrics != nil {
		r.Use(metricsMiddleware(deps.Metrics))
	}

	// System endpoints
	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	r.Route("/WeatherForecast", func(r chi.Router) {
		r.Get("/", s.handleListForecasts)
		r.Get("/{id}", s.handleGetForecast)
		r.Put("/{id}", s.handleTouchForecast)
	})

	return r
}

type server struct {
	deps Deps
}
