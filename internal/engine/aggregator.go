package engine

import "github.com/Djalobre/kvotizza-fe-sub000/internal/domain"

// Aggregation is the output of the cross-bookmaker aggregation step.
type Aggregation struct {
	// Universe is the fixed bookmaker iteration order for this pass: the
	// union of bookmaker names across all resolved match offers, in order of
	// first encounter while walking the distinct match IDs in selection order.
	Universe  []string
	Summaries []domain.BookmakerSummary
	Breakdown []domain.SelectionBreakdown
	Resolved  []domain.ResolvedSelection
}

// Aggregate resolves every selection against every bookmaker in the universe.
// Matches absent from offers (resolver failure or unknown match) count as
// unavailable at every bookmaker; unavailable selections never enter an odds
// product. Only bookmakers fulfilling at least one selection get a summary.
func (e *Engine) Aggregate(selections []domain.Selection, offers map[int]domain.MatchOffer) Aggregation {
	universe := bookmakerUniverse(selections, offers)

	type tally struct {
		product float64
		count   int
		missing []domain.Selection
	}
	tallies := make([]tally, len(universe))
	for i := range tallies {
		tallies[i].product = 1 // empty product
	}

	breakdown := make([]domain.SelectionBreakdown, 0, len(selections))
	var resolved []domain.ResolvedSelection

	for _, sel := range selections {
		offer, haveOffer := offers[sel.MatchID]

		quotes := make([]domain.BookmakerQuote, 0, len(universe))
		var best domain.BookmakerQuote
		for i, name := range universe {
			quote := domain.BookmakerQuote{Bookmaker: name}
			if haveOffer {
				if bo, ok := findBookmaker(offer, name); ok {
					if odd, ok := bo.FindOdd(sel.Category, sel.BetType); ok && odd.Playable() {
						quote.Odds = odd.Value
						quote.Available = true
					}
				}
			}
			quotes = append(quotes, quote)

			if !quote.Available {
				tallies[i].missing = append(tallies[i].missing, sel)
				continue
			}
			tallies[i].product *= quote.Odds
			tallies[i].count++
			resolved = append(resolved, domain.ResolvedSelection{
				MatchID:   sel.MatchID,
				Bookmaker: name,
				Category:  sel.Category,
				BetType:   sel.BetType,
				Odds:      quote.Odds,
			})
			// Strict comparison keeps the first bookmaker in universe order
			// on equal best prices.
			if quote.Odds > best.Odds {
				best = quote
			}
		}

		breakdown = append(breakdown, domain.SelectionBreakdown{
			Selection:     sel,
			Quotes:        quotes,
			BestOdds:      best.Odds,
			BestBookmaker: best.Bookmaker,
		})
	}

	var summaries []domain.BookmakerSummary
	for i, name := range universe {
		if tallies[i].count == 0 {
			continue
		}
		summaries = append(summaries, domain.BookmakerSummary{
			Bookmaker:         name,
			OddsProduct:       tallies[i].product,
			AvailableCount:    tallies[i].count,
			MissingSelections: tallies[i].missing,
			AllAvailable:      len(tallies[i].missing) == 0,
		})
	}

	return Aggregation{
		Universe:  universe,
		Summaries: summaries,
		Breakdown: breakdown,
		Resolved:  resolved,
	}
}

// bookmakerUniverse builds the fixed bookmaker order for one pass. Iterating
// the distinct match IDs in selection order (rather than the offers map) keeps
// the order independent of fetch completion order.
func bookmakerUniverse(selections []domain.Selection, offers map[int]domain.MatchOffer) []string {
	var universe []string
	seen := make(map[string]bool)
	visited := make(map[int]bool)
	for _, sel := range selections {
		if visited[sel.MatchID] {
			continue
		}
		visited[sel.MatchID] = true
		offer, ok := offers[sel.MatchID]
		if !ok {
			continue
		}
		for _, bo := range offer.BookmakerOffers {
			if !seen[bo.Name] {
				seen[bo.Name] = true
				universe = append(universe, bo.Name)
			}
		}
	}
	return universe
}

func findBookmaker(offer domain.MatchOffer, name string) (domain.BookmakerOffer, bool) {
	for _, bo := range offer.BookmakerOffers {
		if bo.Name == name {
			return bo, true
		}
	}
	return domain.BookmakerOffer{}, false
}
