package bustracker

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/bus-tracker/config"
	"github.com/theoremus-urban-solutions/bus-tracker/schema"
)

// Server exposes the decoded feed over HTTP
type Server struct {
	cfg     config.AppConfig
	gate    *schema.Gate
	fetcher schema.Fetcher
	metrics *Metrics

	latestEpoch atomic.Uint64
	server      *http.Server
}

// NewServer wires the API around a schema gate and an upstream fetcher.
// metrics may be nil, in which case a private registry is used.
func NewServer(cfg config.AppConfig, gate *schema.Gate, fetcher schema.Fetcher, metrics *Metrics) *Server {
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	metrics.bindGate(gate)
	return &Server{cfg: cfg, gate: gate, fetcher: fetcher, metrics: metrics}
}

// Routes returns the HTTP handler for the API
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.Get("/api/health", s.handleHealth)
	r.Get("/api/buses", s.handleBuses)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	return r
}

// Start begins serving in the background
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       time.Duration(s.cfg.Server.ReadTimeoutMS) * time.Millisecond,
		WriteTimeout:      time.Duration(s.cfg.Server.WriteTimeoutMS) * time.Millisecond,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("addr", addr).Str("schema", s.gate.State().String()).Msg("server listening")
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// HandleGracefulShutdown blocks until SIGINT/SIGTERM and then shuts down
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info().Msg("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
		return
	}
	log.Info().Msg("server shut down successfully")
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
