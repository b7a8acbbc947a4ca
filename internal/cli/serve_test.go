package cli

import (
	"testing"

	"github.com/wavefieldlabs/seisdb/internal/config"
)

func TestTracingConfig_EnvFallback(t *testing.T) {
	t.Setenv("SEISDB_TRACING_ENABLED", "true")
	t.Setenv("SEISDB_TRACING_EXPORTER", "otlp")
	t.Setenv("SEISDB_OTLP_ENDPOINT", "collector:4317")
	t.Setenv("SEISDB_TRACING_SAMPLE_RATIO", "0.25")

	got := tracingConfig(config.Default())
	if !got.Enabled {
		t.Errorf("SEISDB_TRACING_ENABLED=true must enable tracing when the config file is silent")
	}
	if got.Exporter != "otlp" || got.Endpoint != "collector:4317" {
		t.Errorf("exporter/endpoint = %q/%q, want otlp/collector:4317", got.Exporter, got.Endpoint)
	}
	if got.SampleRatio != 0.25 {
		t.Errorf("sample ratio = %v, want 0.25", got.SampleRatio)
	}
}

func TestTracingConfig_FileWinsOverEnv(t *testing.T) {
	t.Setenv("SEISDB_TRACING_ENABLED", "true")
	t.Setenv("SEISDB_TRACING_EXPORTER", "otlp")

	cfg := config.Default()
	cfg.Tracing.Enabled = true
	cfg.Tracing.Exporter = "stdout"

	got := tracingConfig(cfg)
	if got.Exporter != "stdout" {
		t.Errorf("exporter = %q, config file must win over the environment", got.Exporter)
	}
	if got.SampleRatio != 1.0 {
		t.Errorf("unset sample ratio = %v, want default 1.0", got.SampleRatio)
	}
}

func TestTracingConfig_DisabledByDefault(t *testing.T) {
	t.Setenv("SEISDB_TRACING_ENABLED", "")
	t.Setenv("SEISDB_TRACING_EXPORTER", "")
	t.Setenv("SEISDB_OTLP_ENDPOINT", "")
	t.Setenv("SEISDB_TRACING_SAMPLE_RATIO", "")

	got := tracingConfig(config.Default())
	if got.Enabled {
		t.Errorf("tracing must stay disabled with no file and no env settings")
	}
}

func TestServerLogger(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	// Both paths must hand back a usable logger: env-driven when the config
	// file is silent, file-driven otherwise.
	if serverLogger(config.Default()) == nil {
		t.Fatalf("env-driven logger is nil")
	}

	cfg := config.Default()
	cfg.Log.Level = "warn"
	if serverLogger(cfg) == nil {
		t.Fatalf("file-driven logger is nil")
	}
}
