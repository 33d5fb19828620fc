// Package config assembles the numconv server configuration from
// defaults, an optional YAML file and environment variables, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	envcfg "numconv/pkg/config"
)

// Config is the complete server configuration.
type Config struct {
	Version   string          `yaml:"version"`
	HTTP      HTTPConfig      `yaml:"http"`
	History   HistoryConfig   `yaml:"history"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Logging   LoggingConfig   `yaml:"logging"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

// HTTPConfig controls the listener.
type HTTPConfig struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
}

// HistoryConfig controls the rolling result history.
type HistoryConfig struct {
	// Size is the number of results kept per operation.
	Size int `yaml:"size"`
	// Retention drops entries older than this. Zero keeps entries forever.
	Retention time.Duration `yaml:"retention"`
	// SweepSchedule is the cron expression of the retention sweep.
	SweepSchedule string `yaml:"sweep_schedule"`
}

// RateLimitConfig controls the per-client token bucket.
type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"`
	RequestsPerSecond float64 `yaml:"rps"`
	Burst             int     `yaml:"burst"`
	TrustForwardedFor bool    `yaml:"trust_forwarded_for"`
}

// LoggingConfig selects the slog level and handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TracingConfig controls span sampling.
type TracingConfig struct {
	SampleRatio float64 `yaml:"sample_ratio"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Version: "dev",
		HTTP: HTTPConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
		History: HistoryConfig{
			Size:          5,
			Retention:     24 * time.Hour,
			SweepSchedule: "@every 10m",
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 20,
			Burst:             40,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Tracing: TracingConfig{
			SampleRatio: 1,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file named by
// CONFIG_FILE (if set), then environment overrides. The result is validated.
func Load() (*Config, error) {
	cfg := Default()

	if path := envcfg.GetEnvString("CONFIG_FILE", ""); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile is Load without environment overrides. Used by tests and tools.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.mergeFile(path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	// fields absent from the file keep their current values
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Version = envcfg.GetEnvString("VERSION", c.Version)

	c.HTTP.Addr = envcfg.GetEnvString("HTTP_ADDR", c.HTTP.Addr)
	c.HTTP.ReadHeaderTimeout = envcfg.GetEnvDuration("HTTP_READ_HEADER_TIMEOUT", c.HTTP.ReadHeaderTimeout)
	c.HTTP.ShutdownTimeout = envcfg.GetEnvDuration("SHUTDOWN_TIMEOUT", c.HTTP.ShutdownTimeout)

	c.History.Size = envcfg.GetEnvInt("HISTORY_SIZE", c.History.Size)
	c.History.Retention = envcfg.GetEnvDuration("HISTORY_RETENTION", c.History.Retention)
	c.History.SweepSchedule = envcfg.GetEnvString("HISTORY_SWEEP_SCHEDULE", c.History.SweepSchedule)

	c.RateLimit.Enabled = envcfg.GetEnvBool("RATELIMIT_ENABLED", c.RateLimit.Enabled)
	c.RateLimit.RequestsPerSecond = envcfg.GetEnvFloat("RATELIMIT_RPS", c.RateLimit.RequestsPerSecond)
	c.RateLimit.Burst = envcfg.GetEnvInt("RATELIMIT_BURST", c.RateLimit.Burst)
	c.RateLimit.TrustForwardedFor = envcfg.GetEnvBool("RATELIMIT_TRUST_FORWARDED_FOR", c.RateLimit.TrustForwardedFor)

	c.Logging.Level = envcfg.GetEnvString("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = envcfg.GetEnvString("LOG_FORMAT", c.Logging.Format)

	c.Tracing.SampleRatio = envcfg.GetEnvFloat("TRACING_SAMPLE_RATIO", c.Tracing.SampleRatio)
}

// Validate checks every field and returns all problems joined together.
func (c *Config) Validate() error {
	var errs []error

	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http addr: cannot be empty"))
	}
	if err := envcfg.ValidatePositiveDuration(c.HTTP.ReadHeaderTimeout); err != nil {
		errs = append(errs, fmt.Errorf("http read header timeout: %w", err))
	}
	if err := envcfg.ValidatePositiveDuration(c.HTTP.ShutdownTimeout); err != nil {
		errs = append(errs, fmt.Errorf("shutdown timeout: %w", err))
	}
	if err := envcfg.ValidateIntRange(c.History.Size, 1, 1000); err != nil {
		errs = append(errs, fmt.Errorf("history size: %w", err))
	}
	if err := envcfg.ValidateNonNegativeDuration(c.History.Retention); err != nil {
		errs = append(errs, fmt.Errorf("history retention: %w", err))
	}
	if c.History.Retention > 0 {
		if err := envcfg.ValidateCronSchedule(c.History.SweepSchedule); err != nil {
			errs = append(errs, fmt.Errorf("history sweep schedule: %w", err))
		}
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 {
			errs = append(errs, fmt.Errorf("ratelimit rps: must be positive, got %g", c.RateLimit.RequestsPerSecond))
		}
		if err := envcfg.ValidateIntRange(c.RateLimit.Burst, 1, 100000); err != nil {
			errs = append(errs, fmt.Errorf("ratelimit burst: %w", err))
		}
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log format: must be json or text, got %q", c.Logging.Format))
	}
	if err := envcfg.ValidateFloatRange(c.Tracing.SampleRatio, 0, 1); err != nil {
		errs = append(errs, fmt.Errorf("tracing sample ratio: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
