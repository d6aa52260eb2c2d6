// Package telemetry provides observability primitives for the forecast service.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus collectors for the service.
type Metrics struct {
	RequestsTotal        *prometheus.CounterVec
	RequestDuration      *prometheus.HistogramVec
	ActiveRequests       prometheus.Gauge
	ConditionalDecisions *prometheus.CounterVec
	Touches              prometheus.Counter
	CacheHits            prometheus.Counter
	CacheMisses          prometheus.Counter
	CollectionAge        prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "forecast",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),

		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:                       "forecast",
			Name:                            "request_duration_seconds",
			Help:                            "HTTP request duration in seconds.",
			NativeHistogramBucketFactor:     1.1,
			NativeHistogramMaxBucketNumber:  100,
			NativeHistogramMinResetDuration: 0,
		}, []string{"method", "path"}),

		ActiveRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "forecast",
			Name:      "active_requests",
			Help:      "Number of currently active requests.",
		}),

		ConditionalDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "forecast",
			Name:      "conditional_decisions_total",
			Help:      "If-None-Match evaluations by resource and outcome.",
		}, []string{"resource", "decision"}),

		Touches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "forecast",
			Name:      "touches_total",
			Help:      "Total last-modified updates.",
		}),

		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "forecast",
			Name:      "body_cache_hits_total",
			Help:      "Total rendered-body cache hits.",
		}),

		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "forecast",
			Name:      "body_cache_misses_total",
			Help:      "Total rendered-body cache misses.",
		}),

		CollectionAge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "forecast",
			Name:      "collection_age_seconds",
			Help:      "Seconds since the most recent forecast modification.",
		}),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.ActiveRequests,
		m.ConditionalDecisions,
		m.Touches,
		m.CacheHits,
		m.CacheMisses,
		m.CollectionAge,
	)

	return m
}
