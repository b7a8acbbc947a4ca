// Package config loads the seisdb server configuration from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wavefieldlabs/seisdb/model"
)

const envConfigPath = "SEISDB_CONFIG_PATH"

var (
	// ErrConfigNotFound is returned when the config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrInvalidConfig is returned when the config payload is malformed.
	ErrInvalidConfig = errors.New("config file is invalid")
)

// Config holds the server and CLI settings.
type Config struct {
	ListenAddr  string `yaml:"listen_addr"`
	MetricsAddr string `yaml:"metrics_addr"`

	// PlanetRadiusM selects the planet model the geometry projections use.
	PlanetRadiusM float64 `yaml:"planet_radius_m"`

	// Log and Tracing left entirely empty defer to the environment:
	// LOG_LEVEL / LOG_FORMAT and the SEISDB_TRACING_* variables.
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	Tracing struct {
		Enabled     bool    `yaml:"enabled"`
		Exporter    string  `yaml:"exporter"` // stdout | otlp
		Endpoint    string  `yaml:"endpoint"`
		SampleRatio float64 `yaml:"sample_ratio"`
	} `yaml:"tracing"`
}

// Default returns the configuration used when no file is present. The Log
// and Tracing sections stay zero so the environment fallbacks apply.
func Default() Config {
	var cfg Config
	cfg.ListenAddr = ":8080"
	cfg.MetricsAddr = ":9090"
	cfg.PlanetRadiusM = model.DefaultPlanetRadiusM
	return cfg
}

// Load reads and validates the configuration at path. An empty path falls
// back to the SEISDB_CONFIG_PATH environment variable; when that is unset
// too, defaults are returned.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(envConfigPath)
	}
	if path == "" {
		return Default(), nil
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if cfg.PlanetRadiusM <= 0 {
		return Config{}, fmt.Errorf("%w: planet_radius_m must be positive", ErrInvalidConfig)
	}
	return cfg, nil
}
