package oddsfeed

import "github.com/Djalobre/kvotizza-fe-sub000/internal/domain"

// Wire types mirror the backend payload. They are converted to domain types
// at the package boundary so the rest of the system never sees feed JSON.

type matchOfferPayload struct {
	MatchID    int                `json:"matchId"`
	Bookmakers []bookmakerPayload `json:"bookmakerOffers"`
}

type bookmakerPayload struct {
	Name       string            `json:"name"`
	Categories []categoryPayload `json:"categories"`
}

type categoryPayload struct {
	Name string       `json:"name"`
	Odds []oddPayload `json:"odds"`
}

type oddPayload struct {
	Type  string   `json:"type"`
	Value *float64 `json:"value"`
	Trend string   `json:"trend"`
}

// toDomain converts the wire payload. Null odds values land as 0 and are
// filtered out by Odd.Playable downstream; unknown trends become "none".
func (p matchOfferPayload) toDomain(matchID int) domain.MatchOffer {
	offer := domain.MatchOffer{
		MatchID:         matchID,
		BookmakerOffers: make([]domain.BookmakerOffer, 0, len(p.Bookmakers)),
	}
	for _, b := range p.Bookmakers {
		bo := domain.BookmakerOffer{
			Name:       b.Name,
			Categories: make([]domain.Category, 0, len(b.Categories)),
		}
		for _, c := range b.Categories {
			cat := domain.Category{
				Name: c.Name,
				Odds: make([]domain.Odd, 0, len(c.Odds)),
			}
			for _, o := range c.Odds {
				var value float64
				if o.Value != nil {
					value = *o.Value
				}
				cat.Odds = append(cat.Odds, domain.Odd{
					Type:  o.Type,
					Value: value,
					Trend: parseTrend(o.Trend),
				})
			}
			bo.Categories = append(bo.Categories, cat)
		}
		offer.BookmakerOffers = append(offer.BookmakerOffers, bo)
	}
	return offer
}

func parseTrend(s string) domain.Trend {
	switch s {
	case string(domain.TrendUp):
		return domain.TrendUp
	case string(domain.TrendDown):
		return domain.TrendDown
	default:
		return domain.TrendNone
	}
}
