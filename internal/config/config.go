package config

import (
	"debroglie/pkg/physics"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment selects the logger flavor (development or production).
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// Constants are the physical constants every calculation runs with.
	Constants struct {
		// PlanckConstant in joule seconds
		PlanckConstant float64 `env:"PLANCK_CONSTANT" env-default:"6.62607015e-34" yaml:"planckConstant"`
		// SpeedOfLight in meters per second
		SpeedOfLight float64 `env:"SPEED_OF_LIGHT" env-default:"299792458" yaml:"speedOfLight"`
		// AvogadroNumber in entities per mole
		AvogadroNumber float64 `env:"AVOGADRO_NUMBER" env-default:"6.02214076e23" yaml:"avogadroNumber"`
	} `yaml:"constants"`

	Spectrum struct {
		// TablePath points to a CSV, YAML or TOML band table; empty means the embedded default table.
		TablePath string `env:"SPECTRUM_TABLE_PATH" env-default:"" yaml:"tablePath"`
	} `yaml:"spectrum"`

	// HTTP configures the optional API server started by the serve command.
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"5s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"1m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"5s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigin is sent as Access-Control-Allow-Origin
		AllowedOrigin string `env:"HTTP_ALLOWED_ORIGIN" env-default:"*" yaml:"allowedOrigin"`
		// PprofPath mounts the profiling endpoints when set, e.g. /debug/pprof
		PprofPath string `env:"HTTP_PPROF_PATH" env-default:"" yaml:"pprofPath"`
	} `yaml:"http"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// PhysicsConstants returns the configured constants as a physics.Constants value.
func (c *Config) PhysicsConstants() physics.Constants {
	return physics.Constants{
		Planck:       c.Constants.PlanckConstant,
		SpeedOfLight: c.Constants.SpeedOfLight,
		Avogadro:     c.Constants.AvogadroNumber,
	}
}

// Load reads the yaml config file at configPath and applies env overrides.
// A missing file is not an error: defaults and environment variables are used.
func Load(configPath string) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(configPath)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	case errors.Is(statErr, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("could not stat config file: %w", statErr)
	}

	if err := cfg.PhysicsConstants().Validate(); err != nil {
		return nil, fmt.Errorf("invalid constants: %w", err)
	}

	return &cfg, nil
}
