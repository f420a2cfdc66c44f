package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Djalobre/kvotizza-fe-sub000/internal/domain"
)

// offerTTL keeps cached offers fresh enough for pre-match odds; the feed is
// the source of truth and quotes move slowly outside live play.
const offerTTL = 90 * time.Second

// OfferCache implements domain.OfferCache with JSON-serialized MatchOffers.
//
// Key schema:
//
//	offer:{matchID} - string value containing the JSON offer
type OfferCache struct {
	rdb *redis.Client
}

// NewOfferCache creates an OfferCache backed by the given Client.
func NewOfferCache(c *Client) *OfferCache {
	return &OfferCache{rdb: c.rdb}
}

func offerKey(matchID int) string {
	return fmt.Sprintf("offer:%d", matchID)
}

// Get retrieves a cached offer. It returns domain.ErrNotFound on a miss.
func (oc *OfferCache) Get(ctx context.Context, matchID int) (domain.MatchOffer, error) {
	data, err := oc.rdb.Get(ctx, offerKey(matchID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.MatchOffer{}, domain.ErrNotFound
		}
		return domain.MatchOffer{}, fmt.Errorf("redis: get offer %d: %w", matchID, err)
	}

	var offer domain.MatchOffer
	if err := json.Unmarshal(data, &offer); err != nil {
		return domain.MatchOffer{}, fmt.Errorf("redis: unmarshal offer %d: %w", matchID, err)
	}
	return offer, nil
}

// Set stores an offer with the standard TTL.
func (oc *OfferCache) Set(ctx context.Context, offer domain.MatchOffer) error {
	data, err := json.Marshal(offer)
	if err != nil {
		return fmt.Errorf("redis: marshal offer %d: %w", offer.MatchID, err)
	}
	if err := oc.rdb.Set(ctx, offerKey(offer.MatchID), data, offerTTL).Err(); err != nil {
		return fmt.Errorf("redis: set offer %d: %w", offer.MatchID, err)
	}
	return nil
}
