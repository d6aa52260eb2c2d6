package main

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eugener/forecast/internal/app"
	"github.com/eugener/forecast/internal/cache"
	"github.com/eugener/forecast/internal/config"
	"github.com/eugener/forecast/internal/server"
	"github.com/eugener/forecast/internal/storage"
	"github.com/eugener/forecast/internal/storage/memory"
	"github.com/eugener/forecast/internal/storage/sqlite"
	"github.com/eugener/forecast/internal/telemetry"
	"github.com/eugener/forecast/internal/worker"
)

func run(configPath string) error {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	slog.Info("starting forecast", "version", version, "addr", cfg.Server.Addr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Open store
	store, err := openStore(cfg.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := config.Bootstrap(ctx, cfg, store); err != nil {
		return err
	}

	// Tracing
	if cfg.Telemetry.Tracing.Enabled {
		shutdown, err := telemetry.SetupTracing(ctx, telemetry.TracingOptions{
			Endpoint:       cfg.Telemetry.Tracing.Endpoint,
			SampleRate:     cfg.Telemetry.Tracing.SampleRate,
			ServiceVersion: version,
		})
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(context.WithoutCancel(ctx)); err != nil {
				slog.Warn("tracing shutdown", "error", err)
			}
		}()
	}

	// Metrics
	var (
		metrics        *telemetry.Metrics
		metricsHandler http.Handler
	)
	if cfg.Telemetry.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics = telemetry.NewMetrics(reg)
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	// Wire services
	svc := app.NewForecastService(store, app.ServiceOptions{
		Delay:   cfg.Forecast.Delay,
		Metrics: metrics,
	})

	deps := server.Deps{
		Forecasts:      svc,
		ReadyCheck:     store.Ping,
		Metrics:        metrics,
		MetricsHandler: metricsHandler,
	}
	if cfg.Cache.Enabled {
		bodies, err := cache.NewMemory(cfg.Cache.MaxSize, cfg.Cache.TTL)
		if err != nil {
			return err
		}
		deps.Cache = bodies
		deps.CacheTTL = cfg.Cache.TTL
	}

	workers := []worker.Worker{
		&worker.HTTPServer{
			Server: &http.Server{
				Addr:         cfg.Server.Addr,
				Handler:      server.New(deps),
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
			},
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
		},
	}
	if metrics != nil {
		workers = append(workers, worker.NewFreshnessReporter(
			store, metrics.CollectionAge, nil, cfg.Telemetry.Freshness.Interval,
		))
	}

	if err := worker.NewRunner(workers...).Run(ctx); err != nil {
		return err
	}

	slog.Info("forecast stopped")
	return nil
}

func openStore(cfg config.DatabaseConfig) (storage.Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return sqlite.New(cfg.DSN)
	default:
		return memory.New(), nil
	}
}
