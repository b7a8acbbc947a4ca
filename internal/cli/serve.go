package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/wavefieldlabs/seisdb/catalog"
	"github.com/wavefieldlabs/seisdb/internal/api"
	"github.com/wavefieldlabs/seisdb/internal/config"
	"github.com/wavefieldlabs/seisdb/internal/logging"
	"github.com/wavefieldlabs/seisdb/internal/observability"
	"github.com/wavefieldlabs/seisdb/parse"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand() *cobra.Command {
	var (
		configPath    string
		sourceFiles   []string
		receiverFiles []string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the catalog HTTP API with Prometheus metrics and optional tracing.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), cfg, sourceFiles, receiverFiles)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file (defaults to $SEISDB_CONFIG_PATH).")
	cmd.Flags().StringSliceVar(&sourceFiles, "source", nil, "Source file to preload into the catalog; repeatable.")
	cmd.Flags().StringSliceVar(&receiverFiles, "receivers", nil, "Receiver file to preload into the catalog; repeatable.")

	return cmd
}

func runServer(ctx context.Context, cfg config.Config, sourceFiles, receiverFiles []string) error {
	log := serverLogger(cfg)

	collector, err := observability.NewAPICollector(nil)
	if err != nil {
		return fmt.Errorf("initialise metrics collector: %w", err)
	}

	shutdownTracing, err := observability.InitTracing(ctx, tracingConfig(cfg), log)
	if err != nil {
		return fmt.Errorf("initialise tracing: %w", err)
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdownTracing, log)

	cat := catalog.New(catalog.WithMetricsRecorder(collector))
	if err := preloadCatalog(ctx, cat, log, sourceFiles, receiverFiles); err != nil {
		return err
	}

	server := api.New(cat,
		api.WithLogger(log),
		api.WithMetrics(collector),
		api.WithPlanetRadius(cfg.PlanetRadiusM),
	)

	apiSrv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.Routes(),
	}
	metricsSrv := serveMetrics(cfg.MetricsAddr, collector, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting catalog API server", logging.String("addr", cfg.ListenAddr))
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stopCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	select {
	case <-stopCtx.Done():
	case err := <-errCh:
		return fmt.Errorf("API server exited: %w", err)
	}

	log.Info(ctx, "shutting down catalog API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := apiSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn(ctx, "API server shutdown failed", logging.Err(err))
	}
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	return nil
}

// serverLogger builds the server logger from the config file; a config that
// says nothing about logging defers to LOG_LEVEL / LOG_FORMAT.
func serverLogger(cfg config.Config) logging.Logger {
	if cfg.Log.Level == "" && cfg.Log.Format == "" {
		return logging.NewFromEnv()
	}
	return logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
}

// tracingConfig builds the tracing setup from the config file; a config that
// says nothing about tracing defers to the SEISDB_TRACING_* variables. File
// values that are set win over the environment.
func tracingConfig(cfg config.Config) observability.TracingConfig {
	t := cfg.Tracing
	if !t.Enabled && t.Exporter == "" && t.Endpoint == "" && t.SampleRatio == 0 {
		return observability.TracingConfigFromEnv()
	}

	out := observability.TracingConfig{
		Enabled:     t.Enabled,
		ServiceName: "seisdb-api",
		Exporter:    t.Exporter,
		Endpoint:    t.Endpoint,
		SampleRatio: t.SampleRatio,
	}
	if out.Exporter == "" {
		out.Exporter = "stdout"
	}
	if out.SampleRatio == 0 {
		out.SampleRatio = 1.0
	}
	return out
}

// preloadCatalog seeds the catalog from files named on the command line, so a
// server can come up already knowing its event and station inventory.
func preloadCatalog(ctx context.Context, cat *catalog.Catalog, log logging.Logger, sourceFiles, receiverFiles []string) error {
	for i, path := range sourceFiles {
		src, err := parse.ParseSource(path)
		if err != nil {
			return fmt.Errorf("preload source: %w", err)
		}
		id := fmt.Sprintf("source-%d", i+1)
		if err := cat.AddSource(id, src); err != nil {
			return fmt.Errorf("preload source: %w", err)
		}
		log.Info(ctx, "preloaded source", logging.String("id", id), logging.String("path", path))
	}

	for _, path := range receiverFiles {
		receivers, err := parse.ParseReceivers(path)
		if err != nil {
			return fmt.Errorf("preload receivers: %w", err)
		}
		added := 0
		for _, r := range receivers {
			if err := cat.AddReceiver(r); err != nil {
				log.Warn(ctx, "skipping receiver", logging.String("code", r.Code()), logging.Err(err))
				continue
			}
			added++
		}
		log.Info(ctx, "preloaded receivers", logging.String("path", path), logging.Int("count", added))
	}
	return nil
}

func serveMetrics(addr string, collector *observability.APICollector, log logging.Logger) *http.Server {
	if collector == nil {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn(context.Background(), "metrics server exited", logging.Err(err))
		}
	}()

	log.Info(context.Background(), "serving Prometheus metrics", logging.String("addr", addr))
	return srv
}
