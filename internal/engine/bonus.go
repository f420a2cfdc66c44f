package engine

import (
	"sort"

	"github.com/Djalobre/kvotizza-fe-sub000/internal/domain"
)

// CalculateBonusForBookmaker evaluates one bookmaker's bonus schedule against
// the resolved selections. Thresholds are walked in descending minSelections
// order and the first tier whose qualifying-subset size meets its minimum is
// applied, regardless of whether a later tier would yield a higher percent.
// That walk order is long-standing observed behavior; tests pin it.
//
// A bookmaker without a configured schedule, or with no qualifying tier,
// yields a zero-valued result rather than an error.
func (e *Engine) CalculateBonusForBookmaker(resolved []domain.ResolvedSelection, bookmaker string, stake float64) domain.BonusResult {
	if stake < 0 {
		stake = 0
	}
	result := domain.BonusResult{Bookmaker: bookmaker}

	sched, ok := e.table.Lookup(bookmaker)
	if !ok {
		return result
	}
	own := filterByBookmaker(resolved, bookmaker)
	if len(own) == 0 {
		return result
	}

	for _, th := range thresholdsByMinSelectionsDesc(sched.Thresholds) {
		qualifying := qualifyingSelections(own, th.MinOdds)
		if len(qualifying) < th.MinSelections {
			continue
		}

		percent := th.BonusPercent
		var satisfied *bool
		if th.Conditional() {
			// The condition is judged against the full bookmaker-filtered
			// set, not the odds-qualifying subset.
			hit := anySelectionMatches(own, th.Condition)
			sat := hit
			if th.Condition.Mode == domain.FilterExclude {
				sat = !hit
			}
			satisfied = &sat
			if !sat {
				percent = fallbackPercent(th)
			}
			result.ConditionDescription = th.Description
		}

		applied := th
		product := oddsProduct(qualifying)
		result.AppliedThreshold = &applied
		result.QualifyingSelections = qualifying
		result.QualifyingOddsProduct = product
		result.BonusPercent = percent
		result.BonusAmount = stake * product * percent / 100
		result.ConditionSatisfied = satisfied
		return result
	}

	return result
}

// CalculateAllBonuses groups the resolved selections by bookmaker (in order
// of first appearance) and evaluates each bookmaker's schedule. Only entries
// with a positive bonus amount are returned.
func (e *Engine) CalculateAllBonuses(resolved []domain.ResolvedSelection, stake float64) []domain.BonusResult {
	var out []domain.BonusResult
	seen := make(map[string]bool)
	for _, rs := range resolved {
		if seen[rs.Bookmaker] {
			continue
		}
		seen[rs.Bookmaker] = true
		res := e.CalculateBonusForBookmaker(resolved, rs.Bookmaker, stake)
		if res.BonusAmount > 0 {
			out = append(out, res)
		}
	}
	return out
}

// BestBonus returns the entry with the maximum bonus amount, or nil when no
// bookmaker qualifies. Equal amounts resolve to the earlier entry.
func BestBonus(results []domain.BonusResult) *domain.BonusResult {
	var best *domain.BonusResult
	for i := range results {
		if best == nil || results[i].BonusAmount > best.BonusAmount {
			best = &results[i]
		}
	}
	if best == nil {
		return nil
	}
	cp := *best
	return &cp
}

// thresholdsByMinSelectionsDesc returns a copy sorted descending by
// minSelections. The sort is stable, so configured order decides between
// tiers with equal minimums.
func thresholdsByMinSelectionsDesc(thresholds []domain.BonusThreshold) []domain.BonusThreshold {
	sorted := make([]domain.BonusThreshold, len(thresholds))
	copy(sorted, thresholds)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinSelections > sorted[j].MinSelections
	})
	return sorted
}

func filterByBookmaker(resolved []domain.ResolvedSelection, bookmaker string) []domain.ResolvedSelection {
	var out []domain.ResolvedSelection
	for _, rs := range resolved {
		if rs.Bookmaker == bookmaker {
			out = append(out, rs)
		}
	}
	return out
}

func qualifyingSelections(selections []domain.ResolvedSelection, minOdds float64) []domain.ResolvedSelection {
	var out []domain.ResolvedSelection
	for _, rs := range selections {
		if rs.Odds >= minOdds {
			out = append(out, rs)
		}
	}
	return out
}

func anySelectionMatches(selections []domain.ResolvedSelection, filter domain.CategoryFilter) bool {
	for _, rs := range selections {
		if filter.Matches(rs.Category) {
			return true
		}
	}
	return false
}

// fallbackPercent is the percent applied when a conditional tier's condition
// is not satisfied: the alternative percent when configured, otherwise the
// main percent.
func fallbackPercent(th domain.BonusThreshold) float64 {
	if th.AlternativePercent != nil {
		return *th.AlternativePercent
	}
	return th.BonusPercent
}

func oddsProduct(selections []domain.ResolvedSelection) float64 {
	product := 1.0
	for _, rs := range selections {
		product *= rs.Odds
	}
	return product
}
