// Package api exposes the catalog over a small JSON HTTP surface, used for
// diagnostics and for feeding a wavefield-query frontend. The wavefield
// extraction itself lives elsewhere.
package api

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/wavefieldlabs/seisdb/catalog"
	"github.com/wavefieldlabs/seisdb/internal/logging"
	"github.com/wavefieldlabs/seisdb/internal/observability"
	"github.com/wavefieldlabs/seisdb/model"
)

// Server routes catalog requests. Construct with New, mount via Routes.
type Server struct {
	catalog *catalog.Catalog
	log     logging.Logger
	metrics *observability.APICollector
	tracer  trace.Tracer

	planetRadius float64
}

// Option configures a Server.
type Option func(*Server)

// WithLogger attaches a request logger. Defaults to Noop.
func WithLogger(log logging.Logger) Option {
	return func(s *Server) { s.log = log }
}

// WithMetrics attaches the Prometheus collector for per-route middleware.
func WithMetrics(m *observability.APICollector) Option {
	return func(s *Server) { s.metrics = m }
}

// WithPlanetRadius overrides the planet model used when rendering Cartesian
// coordinates. Defaults to the Earth radius.
func WithPlanetRadius(radiusM float64) Option {
	return func(s *Server) { s.planetRadius = radiusM }
}

// New constructs a Server over the given catalog.
func New(cat *catalog.Catalog, opts ...Option) *Server {
	s := &Server{
		catalog:      cat,
		log:          logging.Noop(),
		tracer:       otel.Tracer("seisdb/api"),
		planetRadius: model.DefaultPlanetRadiusM,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Routes returns the handler tree with logging, tracing, and metrics
// middleware applied per route.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/sources", s.wrap("/api/sources", s.handleSources))
	mux.Handle("/api/receivers", s.wrap("/api/receivers", s.handleReceivers))
	mux.Handle("/api/receivers/", s.wrap("/api/receivers/{code}", s.handleReceiver))
	mux.Handle("/api/parse/source", s.wrap("/api/parse/source", s.handleParseSource))
	mux.Handle("/api/parse/receivers", s.wrap("/api/parse/receivers", s.handleParseReceivers))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// wrap applies the middleware stack: request ID + logging + span, then
// metrics (so the recorded status is the one the handler wrote).
func (s *Server) wrap(route string, h http.HandlerFunc) http.Handler {
	var handler http.Handler = h
	if s.metrics != nil {
		handler = s.metrics.Middleware(route, handler)
	}

	inner := handler
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, reqLog := logging.WithRequestLogger(r.Context(), s.log)
		ctx, span := s.tracer.Start(ctx, route)
		defer span.End()

		reqLog.Debug(ctx, "handling request",
			logging.String("route", route),
			logging.String("method", r.Method),
		)
		inner.ServeHTTP(w, r.WithContext(ctx))
	})
}
