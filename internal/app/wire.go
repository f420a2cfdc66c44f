package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Djalobre/kvotizza-fe-sub000/internal/cache/redis"
	"github.com/Djalobre/kvotizza-fe-sub000/internal/config"
	"github.com/Djalobre/kvotizza-fe-sub000/internal/domain"
	"github.com/Djalobre/kvotizza-fe-sub000/internal/metrics"
	"github.com/Djalobre/kvotizza-fe-sub000/internal/platform/oddsfeed"
	"github.com/Djalobre/kvotizza-fe-sub000/internal/schedule"
	"github.com/Djalobre/kvotizza-fe-sub000/internal/store/postgres"
)

// Dependencies bundles the wired concrete implementations handed to the
// operating modes. Optional fields (OfferCache, RateLimiter) are nil when the
// corresponding backend is disabled.
type Dependencies struct {
	Feed           *oddsfeed.Client
	Table          domain.ScheduleTable
	OfferCache     domain.OfferCache
	RateLimiter    domain.RateLimiter
	Metrics        *metrics.Metrics
	MetricsHandler http.Handler
}

// Wire constructs all external dependencies from the configuration. The
// returned cleanup function closes them in reverse construction order.
func Wire(ctx context.Context, cfg *config.Config) (*Dependencies, func(), error) {
	logger := slog.Default().With(slog.String("component", "wire"))

	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	deps := &Dependencies{
		Feed: oddsfeed.NewClient(oddsfeed.Config{
			BaseURL: cfg.Feed.BaseURL,
			APIKey:  cfg.Feed.APIKey,
			Timeout: cfg.Feed.Timeout.Duration,
		}),
	}

	if cfg.Redis.Enabled {
		rdb, err := redis.New(ctx, redis.ClientConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("app: connect redis: %w", err)
		}
		closers = append(closers, func() {
			if err := rdb.Close(); err != nil {
				logger.Warn("closing redis client", slog.Any("error", err))
			}
		})
		deps.OfferCache = redis.NewOfferCache(rdb)
		if cfg.Server.RateLimit > 0 {
			deps.RateLimiter = redis.NewRateLimiter(rdb)
		}
		logger.InfoContext(ctx, "redis connected", slog.String("addr", cfg.Redis.Addr))
	}

	source, err := scheduleSource(ctx, cfg, &closers, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	schedules, err := source.Load(ctx)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("app: load bonus schedules: %w", err)
	}
	table, err := schedule.Build(schedules)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("app: build schedule table: %w", err)
	}
	deps.Table = table
	logger.InfoContext(ctx, "bonus schedules loaded",
		slog.String("source", cfg.Bonus.Source),
		slog.Int("bookmakers", table.Len()),
	)

	if strings.ToLower(cfg.Mode) == "server" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		deps.Metrics = metrics.New(reg)
		deps.MetricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	return deps, cleanup, nil
}

// scheduleSource picks the schedule backend named by bonus.source.
func scheduleSource(ctx context.Context, cfg *config.Config, closers *[]func(), logger *slog.Logger) (domain.ScheduleSource, error) {
	switch strings.ToLower(cfg.Bonus.Source) {
	case "", "builtin":
		return schedule.StaticSource{Schedules: schedule.Default()}, nil
	case "file":
		return schedule.FileSource{Path: cfg.Bonus.Path}, nil
	case "postgres":
		pg, err := postgres.New(ctx, postgres.ClientConfig{
			DSN:      cfg.Postgres.DSN,
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			Database: cfg.Postgres.Database,
			User:     cfg.Postgres.User,
			Password: cfg.Postgres.Password,
			SSLMode:  cfg.Postgres.SSLMode,
			MaxConns: cfg.Postgres.MaxConns,
		})
		if err != nil {
			return nil, fmt.Errorf("app: connect postgres: %w", err)
		}
		*closers = append(*closers, pg.Close)
		if err := pg.RunMigrations(ctx); err != nil {
			return nil, fmt.Errorf("app: run migrations: %w", err)
		}
		logger.InfoContext(ctx, "postgres connected", slog.String("database", cfg.Postgres.Database))
		return postgres.NewScheduleStore(pg.Pool()), nil
	default:
		return nil, fmt.Errorf("app: unknown bonus source %q", cfg.Bonus.Source)
	}
}
