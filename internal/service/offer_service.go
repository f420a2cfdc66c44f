// Package service hosts the application services that sit between the HTTP
// layer and the engine: offer resolution (cache plus feed) and the analysis
// pipeline.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Djalobre/kvotizza-fe-sub000/internal/domain"
)

// Feed is the slice of the odds-feed client the offer service needs.
type Feed interface {
	MatchOffer(ctx context.Context, matchID int) (domain.MatchOffer, error)
}

// OfferService implements domain.OfferResolver: cache first, feed on a miss,
// cache backfill on the way out. The cache is optional; a nil cache means
// every resolve goes to the feed.
type OfferService struct {
	feed   Feed
	cache  domain.OfferCache
	logger *slog.Logger
}

// NewOfferService creates an OfferService. cache may be nil.
func NewOfferService(feed Feed, cache domain.OfferCache, logger *slog.Logger) *OfferService {
	return &OfferService{
		feed:   feed,
		cache:  cache,
		logger: logger.With(slog.String("component", "offer_service")),
	}
}

// Resolve returns the full per-bookmaker offer for one match.
func (s *OfferService) Resolve(ctx context.Context, matchID int) (domain.MatchOffer, error) {
	if s.cache != nil {
		offer, err := s.cache.Get(ctx, matchID)
		if err == nil {
			return offer, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "offer cache read failed",
				slog.Int("match_id", matchID),
				slog.String("error", err.Error()),
			)
			// Cache trouble is never fatal; fall through to the feed.
		}
	}

	offer, err := s.feed.MatchOffer(ctx, matchID)
	if err != nil {
		return domain.MatchOffer{}, fmt.Errorf("offer_service: resolve match %d: %w: %w", matchID, domain.ErrOfferUnavailable, err)
	}

	if s.cache != nil {
		if cacheErr := s.cache.Set(ctx, offer); cacheErr != nil {
			s.logger.WarnContext(ctx, "offer cache write failed",
				slog.Int("match_id", matchID),
				slog.String("error", cacheErr.Error()),
			)
		}
	}

	return offer, nil
}
