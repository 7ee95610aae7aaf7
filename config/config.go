package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/alem-hub/person-registry/pkg/logger"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Demo run behaviour
	Run RunConfig

	// Observability
	Observability ObservabilityConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string      `env:"REGISTRY_APP_NAME" envDefault:"person-registry"`
	Environment Environment `env:"REGISTRY_ENV"      envDefault:"development"`
}

// RunConfig controls how the console demonstration reacts to failures.
type RunConfig struct {
	// IsolateFailures keeps going after a record fails to build.
	// When false the first failure aborts the whole run.
	IsolateFailures bool `env:"REGISTRY_ISOLATE_FAILURES" envDefault:"true"`

	// Strict turns any reported error into a non-zero exit status.
	Strict bool `env:"REGISTRY_STRICT" envDefault:"false"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string `env:"REGISTRY_LOG_LEVEL"  envDefault:"warn"` // debug, info, warn, error
	LogFormat string `env:"REGISTRY_LOG_FORMAT" envDefault:"json"` // json, text
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	switch c.App.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		errs = append(errs, fmt.Sprintf("REGISTRY_ENV must be development or production, got %q", c.App.Environment))
	}

	if _, err := logger.ParseLevel(c.Observability.LogLevel); err != nil {
		errs = append(errs, "REGISTRY_LOG_LEVEL: "+err.Error())
	}
	if _, err := logger.ParseFormat(c.Observability.LogFormat); err != nil {
		errs = append(errs, "REGISTRY_LOG_FORMAT: "+err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// LoggerOptions converts the observability settings into logger options.
// Call after Validate; unknown values fall back to logger defaults.
func (c *Config) LoggerOptions() logger.Options {
	opts := logger.DefaultOptions()
	if lvl, err := logger.ParseLevel(c.Observability.LogLevel); err == nil {
		opts.Level = lvl
	}
	if f, err := logger.ParseFormat(c.Observability.LogFormat); err == nil {
		opts.Format = f
	}
	opts.AddCaller = c.IsDevelopment() && opts.Level == logger.LevelDebug
	return opts
}
