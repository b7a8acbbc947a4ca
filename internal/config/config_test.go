package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wavefieldlabs/seisdb/model"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SEISDB_CONFIG_PATH", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":8080" || cfg.MetricsAddr != ":9090" {
		t.Errorf("default addrs = %q, %q", cfg.ListenAddr, cfg.MetricsAddr)
	}
	if cfg.PlanetRadiusM != model.DefaultPlanetRadiusM {
		t.Errorf("default planet radius = %v", cfg.PlanetRadiusM)
	}
	// Empty log/tracing sections defer to the environment fallbacks.
	if cfg.Log.Level != "" || cfg.Log.Format != "" {
		t.Errorf("default log section = %+v, want empty", cfg.Log)
	}
	if cfg.Tracing.Enabled || cfg.Tracing.Exporter != "" {
		t.Errorf("default tracing section = %+v, want empty", cfg.Tracing)
	}
}

func TestLoad_File(t *testing.T) {
	payload := `
listen_addr: ":7070"
planet_radius_m: 3389500
log:
  level: debug
tracing:
  enabled: true
  exporter: otlp
  endpoint: collector:4317
`
	path := filepath.Join(t.TempDir(), "seisdb.yaml")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":7070" {
		t.Errorf("listen_addr = %q, want :7070", cfg.ListenAddr)
	}
	// Unset keys keep their defaults.
	if cfg.MetricsAddr != ":9090" {
		t.Errorf("metrics_addr = %q, want default :9090", cfg.MetricsAddr)
	}
	if cfg.PlanetRadiusM != 3389500 {
		t.Errorf("planet_radius_m = %v, want Mars radius", cfg.PlanetRadiusM)
	}
	if !cfg.Tracing.Enabled || cfg.Tracing.Exporter != "otlp" || cfg.Tracing.Endpoint != "collector:4317" {
		t.Errorf("tracing = %+v", cfg.Tracing)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("missing file err = %v, want ErrConfigNotFound", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte(":\n\t- not yaml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("malformed file err = %v, want ErrInvalidConfig", err)
	}

	negative := filepath.Join(t.TempDir(), "neg.yaml")
	if err := os.WriteFile(negative, []byte("planet_radius_m: -1"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(negative); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("negative radius err = %v, want ErrInvalidConfig", err)
	}
}
