// Package config handles YAML configuration loading with environment variable expansion.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"go.yaml.in/yaml/v3"
)

// Storage drivers accepted in DatabaseConfig.Driver.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config is the top-level service configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Forecast  ForecastConfig  `yaml:"forecast"`
	Cache     CacheConfig     `yaml:"cache"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Forecasts []ForecastEntry `yaml:"forecasts"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig selects the forecast store.
type DatabaseConfig struct {
	Driver string `yaml:"driver"` // "memory" or "sqlite"
	DSN    string `yaml:"dsn"`    // sqlite file path or ":memory:"
}

// ForecastConfig tunes the forecast endpoints.
type ForecastConfig struct {
	Delay time.Duration `yaml:"delay"` // simulated backend latency; negative disables
}

// CacheConfig holds rendered-body cache settings. Disabled by default: a
// hit skips the simulated latency.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	MaxSize int           `yaml:"max_size"`
	TTL     time.Duration `yaml:"ttl"`
}

// TelemetryConfig holds observability settings.
type TelemetryConfig struct {
	Metrics   MetricsConfig   `yaml:"metrics"`
	Tracing   TracingConfig   `yaml:"tracing"`
	Freshness FreshnessConfig `yaml:"freshness"`
}

// MetricsConfig controls Prometheus metrics.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// TracingConfig controls OpenTelemetry tracing.
type TracingConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Endpoint   string  `yaml:"endpoint"`    // OTLP gRPC endpoint
	SampleRate float64 `yaml:"sample_rate"` // 0.0 to 1.0
}

// FreshnessConfig controls the collection age reporter.
type FreshnessConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// ForecastEntry is a forecast seed in the config file.
type ForecastEntry struct {
	Date         time.Time `yaml:"date"`
	LastModified time.Time `yaml:"last_modified"`
	Summary      string    `yaml:"summary"`
	TemperatureC int       `yaml:"temperature_c"`
}

// DefaultForecasts is the seed collection used when the config file
// lists none.
func DefaultForecasts() []ForecastEntry {
	return []ForecastEntry{
		{
			Date:         time.Date(2022, 1, 1, 7, 0, 0, 0, time.UTC),
			LastModified: time.Date(2022, 1, 1, 7, 0, 0, 0, time.UTC),
			Summary:      "summary 1",
			TemperatureC: -12,
		},
		{
			Date:         time.Date(2022, 2, 1, 7, 0, 0, 0, time.UTC),
			LastModified: time.Date(2022, 1, 2, 8, 0, 0, 0, time.UTC),
			Summary:      "summary 2",
			TemperatureC: -11,
		},
	}
}

var envPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnv replaces ${VAR} patterns with environment variable values.
func expandEnv(data []byte) []byte {
	return envPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		varName := string(match[2 : len(match)-1])
		if val, ok := os.LookupEnv(varName); ok {
			return []byte(val)
		}
		return match
	})
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Driver: DriverMemory,
			DSN:    ":memory:",
		},
		Forecast: ForecastConfig{
			Delay: time.Second,
		},
		Cache: CacheConfig{
			MaxSize: 1_000,
			TTL:     5 * time.Minute,
		},
		Telemetry: TelemetryConfig{
			Metrics:   MetricsConfig{Enabled: true},
			Freshness: FreshnessConfig{Interval: 15 * time.Second},
		},
	}
}

// Load reads and parses a YAML config file, expanding environment variables.
// An empty path yields Default with the built-in seed forecasts.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		data = expandEnv(data)
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	if len(cfg.Forecasts) == 0 {
		cfg.Forecasts = DefaultForecasts()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverMemory, DriverSQLite:
	default:
		return fmt.Errorf("config: unknown database driver %q", c.Database.Driver)
	}
	if c.Cache.Enabled && c.Cache.MaxSize <= 0 {
		return fmt.Errorf("config: cache.max_size must be positive")
	}
	if c.Telemetry.Tracing.Enabled && c.Telemetry.Tracing.Endpoint == "" {
		return fmt.Errorf("config: telemetry.tracing.endpoint is required when tracing is enabled")
	}
	return nil
}
