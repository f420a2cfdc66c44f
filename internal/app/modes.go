package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Djalobre/kvotizza-fe-sub000/internal/domain"
	"github.com/Djalobre/kvotizza-fe-sub000/internal/engine"
	"github.com/Djalobre/kvotizza-fe-sub000/internal/server"
	"github.com/Djalobre/kvotizza-fe-sub000/internal/server/handler"
	"github.com/Djalobre/kvotizza-fe-sub000/internal/service"
)

const shutdownTimeout = 10 * time.Second

// ServerMode runs the HTTP API until the context is cancelled.
func (a *App) ServerMode(ctx context.Context, deps *Dependencies) error {
	analysis := a.analysisService(deps)

	srv := server.New(
		server.Config{
			Port:        a.cfg.Server.Port,
			CORSOrigins: a.cfg.Server.CORSOrigins,
			RateLimit:   a.cfg.Server.RateLimit,
		},
		server.Handlers{
			Health:    handler.NewHealthHandler(a.logger),
			Analysis:  handler.NewAnalysisHandler(analysis, a.logger),
			Schedules: handler.NewScheduleHandler(deps.Table, a.logger),
		},
		deps.MetricsHandler,
		deps.RateLimiter,
		a.logger,
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("app: http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// AnalyzeMode runs a single analysis pass: it reads an AnalysisRequest from
// the input file, resolves offers, and writes the report as JSON to stdout.
func (a *App) AnalyzeMode(ctx context.Context, deps *Dependencies) error {
	if a.input == "" {
		return fmt.Errorf("app: analyze mode requires a selections file (-input)")
	}

	data, err := os.ReadFile(a.input)
	if err != nil {
		return fmt.Errorf("app: read selections file: %w", err)
	}
	var req domain.AnalysisRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("app: parse selections file: %w", err)
	}

	report, err := a.analysisService(deps).Analyze(ctx, req)
	if err != nil {
		return fmt.Errorf("app: analyze: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("app: encode report: %w", err)
	}
	return nil
}

func (a *App) analysisService(deps *Dependencies) *service.AnalysisService {
	offers := service.NewOfferService(deps.Feed, deps.OfferCache, a.logger)
	return service.NewAnalysisService(
		offers,
		engine.New(deps.Table),
		a.cfg.Analysis.FetchConcurrency,
		deps.Metrics,
		a.logger,
	)
}
