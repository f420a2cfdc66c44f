package domain

import (
	"context"
	"time"
)

// OfferResolver supplies the full per-bookmaker market offer for one match.
// Resolution may fail per match (feed outage, unknown match); callers treat a
// failed match as unavailable at every bookmaker rather than aborting.
type OfferResolver interface {
	Resolve(ctx context.Context, matchID int) (MatchOffer, error)
}

// OfferCache is a short-lived cache in front of the odds feed.
// Get returns ErrNotFound on a miss.
type OfferCache interface {
	Get(ctx context.Context, matchID int) (MatchOffer, error)
	Set(ctx context.Context, offer MatchOffer) error
}

// ScheduleSource loads the bonus-schedule table at process start. The table
// is versionable configuration; swapping sources never requires engine
// changes.
type ScheduleSource interface {
	Load(ctx context.Context) ([]BookmakerBonusSchedule, error)
}

// RateLimiter limits request rates per key, e.g. per client IP on the
// analysis endpoint.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}
