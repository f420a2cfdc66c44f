// Package server assembles the HTTP API: routes, middleware chain, and
// graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Djalobre/kvotizza-fe-sub000/internal/domain"
	"github.com/Djalobre/kvotizza-fe-sub000/internal/server/handler"
	"github.com/Djalobre/kvotizza-fe-sub000/internal/server/middleware"
)

// Config holds the HTTP server configuration.
type Config struct {
	Port            int
	CORSOrigins     []string
	RateLimit       int           // requests per window per client; 0 disables
	RateLimitWindow time.Duration // defaults to 1s when RateLimit is set
}

// Handlers aggregates the handlers the server registers.
type Handlers struct {
	Health    *handler.HealthHandler
	Analysis  *handler.AnalysisHandler
	Schedules *handler.ScheduleHandler
}

// Server is the HTTP API server for the odds dashboard backend.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a Server with all routes registered. metricsHandler and
// limiter are optional; passing nil skips /metrics or rate limiting.
func New(cfg Config, handlers Handlers, metricsHandler http.Handler, limiter domain.RateLimiter, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", handlers.Health.HealthCheck)
	mux.HandleFunc("POST /api/analysis", handlers.Analysis.Analyze)
	mux.HandleFunc("GET /api/schedules", handlers.Schedules.ListSchedules)
	mux.HandleFunc("GET /api/schedules/{bookmaker}", handlers.Schedules.GetSchedule)

	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	var h http.Handler = mux
	if limiter != nil && cfg.RateLimit > 0 {
		window := cfg.RateLimitWindow
		if window <= 0 {
			window = time.Second
		}
		h = middleware.RateLimit(limiter, cfg.RateLimit, window)(h)
	}
	h = middleware.Logging(logger)(h)
	h = middleware.CORS(cfg.CORSOrigins)(h)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      h,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// Start begins listening. It blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("server: starting", slog.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: listen: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server: shutting down")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
