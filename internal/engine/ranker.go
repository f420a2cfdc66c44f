package engine

import (
	"sort"

	"github.com/Djalobre/kvotizza-fe-sub000/internal/domain"
)

// Rank merges the aggregator summaries with the bonus results and returns a
// new slice sorted descending by potential win (stake times odds product plus
// any bonus). Index 0 is the recommended bookmaker. The sort is stable, so
// equal potential wins keep universe order.
func (e *Engine) Rank(summaries []domain.BookmakerSummary, bonuses []domain.BonusResult, stake float64) []domain.BookmakerSummary {
	if stake < 0 {
		stake = 0
	}
	bonusByBookmaker := make(map[string]float64, len(bonuses))
	for _, b := range bonuses {
		bonusByBookmaker[b.Bookmaker] = b.BonusAmount
	}

	ranked := make([]domain.BookmakerSummary, len(summaries))
	copy(ranked, summaries)
	for i := range ranked {
		ranked[i].BonusAmount = bonusByBookmaker[ranked[i].Bookmaker]
		ranked[i].PotentialWin = stake*ranked[i].OddsProduct + ranked[i].BonusAmount
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PotentialWin > ranked[j].PotentialWin
	})
	return ranked
}
