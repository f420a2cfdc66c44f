// Package engine implements the cross-bookmaker odds aggregation and
// accumulator-bonus resolution pipeline. The engine is a stateless,
// side-effect-free calculator: its only input besides the per-call arguments
// is the read-only bonus-schedule table injected at construction, and every
// derived value lives and dies within a single Analyze pass.
package engine

import "github.com/Djalobre/kvotizza-fe-sub000/internal/domain"

// Engine evaluates selection sets against the bookmaker universe and the
// configured bonus schedules. It is safe for concurrent use.
type Engine struct {
	table domain.ScheduleTable
}

// New creates an Engine bound to the given schedule table.
func New(table domain.ScheduleTable) *Engine {
	return &Engine{table: table}
}

// Result is the complete output of one computation pass.
type Result struct {
	Rankings    []domain.BookmakerSummary
	Breakdown   []domain.SelectionBreakdown
	Bonuses     []domain.BonusResult
	BestBonus   *domain.BonusResult
	Suggestions []domain.Suggestion
}

// Analyze runs the full pipeline: aggregation, bonus evaluation, advisor
// suggestions, and ranking. Rerunning with identical inputs yields an
// identical Result.
func (e *Engine) Analyze(selections []domain.Selection, offers map[int]domain.MatchOffer, stake float64) Result {
	agg := e.Aggregate(selections, offers)
	bonuses := e.CalculateAllBonuses(agg.Resolved, stake)
	return Result{
		Rankings:    e.Rank(agg.Summaries, bonuses, stake),
		Breakdown:   agg.Breakdown,
		Bonuses:     bonuses,
		BestBonus:   BestBonus(bonuses),
		Suggestions: e.Suggestions(agg.Resolved, bonuses, stake),
	}
}
