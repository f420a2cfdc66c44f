package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Djalobre/kvotizza-fe-sub000/internal/domain"
	"github.com/Djalobre/kvotizza-fe-sub000/internal/engine"
	"github.com/Djalobre/kvotizza-fe-sub000/internal/metrics"
)

const defaultFetchConcurrency = 4

// AnalysisService runs the full computation pass: it fetches the match offers
// concurrently, degrades failed matches to "unavailable everywhere", and
// hands the joined offer set to the engine. The service holds no per-request
// state; calling Analyze any number of times with the same inputs is safe.
type AnalysisService struct {
	resolver    domain.OfferResolver
	engine      *engine.Engine
	concurrency int
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// NewAnalysisService creates an AnalysisService. concurrency bounds the
// parallel offer fetches; values below 1 fall back to the default. metrics
// may be nil.
func NewAnalysisService(
	resolver domain.OfferResolver,
	eng *engine.Engine,
	concurrency int,
	m *metrics.Metrics,
	logger *slog.Logger,
) *AnalysisService {
	if concurrency < 1 {
		concurrency = defaultFetchConcurrency
	}
	return &AnalysisService{
		resolver:    resolver,
		engine:      eng,
		concurrency: concurrency,
		metrics:     m,
		logger:      logger.With(slog.String("component", "analysis_service")),
	}
}

// Analyze computes the ranked report for one selection set and stake. The
// only error it can return is context cancellation during the fetch phase;
// per-match resolver failures degrade instead of aborting.
func (s *AnalysisService) Analyze(ctx context.Context, req domain.AnalysisRequest) (domain.AnalysisReport, error) {
	start := time.Now()

	offers, err := s.fetchOffers(ctx, req.Selections)
	if err != nil {
		return domain.AnalysisReport{}, fmt.Errorf("analysis_service: fetch offers: %w", err)
	}

	res := s.engine.Analyze(req.Selections, offers, req.Stake)

	report := domain.AnalysisReport{
		ID:          uuid.NewString(),
		Stake:       req.Stake,
		Rankings:    res.Rankings,
		Breakdown:   res.Breakdown,
		Bonuses:     res.Bonuses,
		BestBonus:   res.BestBonus,
		Suggestions: res.Suggestions,
		CreatedAt:   time.Now().UTC(),
	}

	s.metrics.AnalysisDone(time.Since(start).Seconds())
	s.logger.InfoContext(ctx, "analysis completed",
		slog.String("report_id", report.ID),
		slog.Int("selections", len(req.Selections)),
		slog.Int("matches", len(offers)),
		slog.Int("ranked_bookmakers", len(res.Rankings)),
		slog.Duration("duration", time.Since(start)),
	)

	return report, nil
}

// fetchOffers resolves every distinct match concurrently. A match whose
// resolve fails is simply absent from the returned map; only cancellation of
// ctx aborts the join.
func (s *AnalysisService) fetchOffers(ctx context.Context, selections []domain.Selection) (map[int]domain.MatchOffer, error) {
	matchIDs := distinctMatchIDs(selections)

	offers := make(map[int]domain.MatchOffer, len(matchIDs))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, matchID := range matchIDs {
		g.Go(func() error {
			offer, err := s.resolver.Resolve(ctx, matchID)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s.metrics.OfferFetchFailed()
				s.logger.WarnContext(ctx, "match offer unavailable",
					slog.Int("match_id", matchID),
					slog.String("error", err.Error()),
				)
				return nil // degrade, don't abort
			}
			mu.Lock()
			offers[matchID] = offer
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return offers, nil
}

func distinctMatchIDs(selections []domain.Selection) []int {
	var ids []int
	seen := make(map[int]bool)
	for _, sel := range selections {
		if !seen[sel.MatchID] {
			seen[sel.MatchID] = true
			ids = append(ids, sel.MatchID)
		}
	}
	return ids
}
