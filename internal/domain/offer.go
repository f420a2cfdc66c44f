// Package domain defines the core value types of the odds-comparison engine:
// market offers as delivered by the upstream feed, user selections, bonus
// schedules, and the derived analysis output. It also declares the collaborator
// interfaces (offer resolution, caching, schedule loading) implemented by the
// platform, cache, and store packages.
package domain

import "math"

// Trend indicates the short-term direction of a quoted price.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendNone Trend = "none"
)

// Odd is a single quoted price for one bet type within a category.
// The bet type is unique within its category.
type Odd struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
	Trend Trend   `json:"trend"`
}

// Playable reports whether the odd can participate in an accumulator.
// Quotes below 1.0, zero, negative, or non-finite are treated as unavailable.
func (o Odd) Playable() bool {
	return o.Value >= 1.0 && !math.IsInf(o.Value, 0) && !math.IsNaN(o.Value)
}

// Category groups the odds a bookmaker quotes for one market category,
// e.g. "Konačni ishod" or "Ukupno golova". Category names are unique within
// a bookmaker's offer.
type Category struct {
	Name string `json:"name"`
	Odds []Odd  `json:"odds"`
}

// Find returns the odd for the given bet type, if quoted.
func (c Category) Find(betType string) (Odd, bool) {
	for _, o := range c.Odds {
		if o.Type == betType {
			return o, true
		}
	}
	return Odd{}, false
}

// BookmakerOffer is one bookmaker's full offer for a single match.
type BookmakerOffer struct {
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
}

// FindOdd looks up the odd for a category / bet-type pair within the offer.
func (b BookmakerOffer) FindOdd(category, betType string) (Odd, bool) {
	for _, c := range b.Categories {
		if c.Name == category {
			return c.Find(betType)
		}
	}
	return Odd{}, false
}

// MatchOffer is the complete per-bookmaker market offer for one match as
// delivered by the feed. It is immutable once handed to the engine; a
// computation pass never modifies it.
type MatchOffer struct {
	MatchID         int              `json:"matchId"`
	BookmakerOffers []BookmakerOffer `json:"bookmakerOffers"`
}
