package engine

import (
	"fmt"
	"strings"

	"github.com/Djalobre/kvotizza-fe-sub000/internal/domain"
)

// Suggestions inspects every schedule with conditional tiers and proposes
// selection changes that would unlock a larger bonus than the one currently
// achieved. For each exclude tier blocked by present categories, it computes
// the bonus the tier's main percent would grant if the blocking picks were
// replaced, and emits a suggestion only when that beats the current bonus.
// Suggestions never mutate anything.
func (e *Engine) Suggestions(resolved []domain.ResolvedSelection, bonuses []domain.BonusResult, stake float64) []domain.Suggestion {
	if stake < 0 {
		stake = 0
	}
	current := make(map[string]float64, len(bonuses))
	for _, b := range bonuses {
		current[b.Bookmaker] = b.BonusAmount
	}

	var out []domain.Suggestion
	for _, sched := range e.table.All() {
		if !sched.HasConditionalTiers() {
			continue
		}
		own := filterByBookmaker(resolved, sched.Bookmaker)
		if len(own) == 0 {
			continue
		}
		for _, th := range sched.Thresholds {
			if th.Condition.Mode != domain.FilterExclude {
				continue
			}
			blocked := blockedCategories(own, th.Condition)
			if len(blocked) == 0 {
				continue
			}
			if len(own) < th.MinSelections {
				continue
			}
			qualifying := qualifyingSelections(own, th.MinOdds)
			if len(qualifying) < th.MinSelections {
				continue
			}
			potential := stake * oddsProduct(qualifying) * th.BonusPercent / 100
			if potential <= current[sched.Bookmaker] {
				continue
			}
			out = append(out, domain.Suggestion{
				Bookmaker: sched.Bookmaker,
				Text: fmt.Sprintf("Swap your %s picks to unlock the %g%% bonus at %s",
					strings.Join(blocked, ", "), th.BonusPercent, sched.Bookmaker),
				PotentialBonus: potential,
				CurrentBonus:   current[sched.Bookmaker],
			})
		}
	}
	return out
}

// blockedCategories returns the distinct excluded categories present among
// the bookmaker's selections, in selection order.
func blockedCategories(selections []domain.ResolvedSelection, filter domain.CategoryFilter) []string {
	var out []string
	seen := make(map[string]bool)
	for _, rs := range selections {
		if filter.Matches(rs.Category) && !seen[rs.Category] {
			seen[rs.Category] = true
			out = append(out, rs.Category)
		}
	}
	return out
}
