package observability

import "testing"

func TestTracingConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("SEISDB_TRACING_ENABLED", "")
	t.Setenv("SEISDB_TRACING_EXPORTER", "")
	t.Setenv("SEISDB_TRACING_SERVICE_NAME", "")
	t.Setenv("SEISDB_TRACING_SAMPLE_RATIO", "")
	t.Setenv("SEISDB_OTLP_ENDPOINT", "")

	cfg := TracingConfigFromEnv()
	if cfg.Enabled {
		t.Errorf("tracing enabled with no environment, want disabled")
	}
	if cfg.Exporter != "stdout" {
		t.Errorf("exporter = %q, want stdout", cfg.Exporter)
	}
	if cfg.ServiceName != "seisdb-api" {
		t.Errorf("service name = %q, want seisdb-api", cfg.ServiceName)
	}
	if cfg.SampleRatio != 1.0 {
		t.Errorf("sample ratio = %v, want 1.0", cfg.SampleRatio)
	}
}

func TestTracingConfigFromEnv_Values(t *testing.T) {
	t.Setenv("SEISDB_TRACING_ENABLED", "TRUE")
	t.Setenv("SEISDB_TRACING_EXPORTER", "OTLP")
	t.Setenv("SEISDB_TRACING_SERVICE_NAME", "seisdb-staging")
	t.Setenv("SEISDB_TRACING_SAMPLE_RATIO", "0.5")
	t.Setenv("SEISDB_OTLP_ENDPOINT", "collector:4317")

	cfg := TracingConfigFromEnv()
	if !cfg.Enabled {
		t.Errorf("SEISDB_TRACING_ENABLED=TRUE not honoured")
	}
	if cfg.Exporter != "otlp" {
		t.Errorf("exporter = %q, want lowercased otlp", cfg.Exporter)
	}
	if cfg.ServiceName != "seisdb-staging" || cfg.Endpoint != "collector:4317" {
		t.Errorf("service/endpoint = %q/%q", cfg.ServiceName, cfg.Endpoint)
	}
	if cfg.SampleRatio != 0.5 {
		t.Errorf("sample ratio = %v, want 0.5", cfg.SampleRatio)
	}
}

func TestTracingConfigFromEnv_BadRatioIgnored(t *testing.T) {
	t.Setenv("SEISDB_TRACING_SAMPLE_RATIO", "2.5")

	if cfg := TracingConfigFromEnv(); cfg.SampleRatio != 1.0 {
		t.Errorf("out-of-range ratio accepted: %v", cfg.SampleRatio)
	}
}
