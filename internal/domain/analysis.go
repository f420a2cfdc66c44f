package domain

import "time"

// BookmakerQuote is one bookmaker's price for a single selection; Available
// is false when the bookmaker does not quote the category / bet-type pair
// (or the match could not be resolved at all).
type BookmakerQuote struct {
	Bookmaker string  `json:"bookmaker"`
	Odds      float64 `json:"odds,omitempty"`
	Available bool    `json:"available"`
}

// SelectionBreakdown is the per-selection view across the bookmaker universe:
// every bookmaker's quote plus the best available price. Ties on the best
// price resolve to the first bookmaker in universe order.
type SelectionBreakdown struct {
	Selection     Selection        `json:"selection"`
	Quotes        []BookmakerQuote `json:"quotes"`
	BestOdds      float64          `json:"bestOdds"`
	BestBookmaker string           `json:"bestBookmaker,omitempty"`
}

// BookmakerSummary is the per-bookmaker accumulator view: which selections the
// bookmaker can fulfil, the accumulator odds product over those, and (after
// ranking) the potential win including any bonus. Summaries exist only for
// bookmakers that can fulfil at least one selection.
type BookmakerSummary struct {
	Bookmaker         string      `json:"bookmaker"`
	OddsProduct       float64     `json:"oddsProduct"`
	PotentialWin      float64     `json:"potentialWin"`
	BonusAmount       float64     `json:"bonusAmount"`
	AvailableCount    int         `json:"availableCount"`
	MissingSelections []Selection `json:"missingSelections,omitempty"`
	AllAvailable      bool        `json:"allAvailable"`
}

// Suggestion proposes a selection change that would unlock a larger bonus
// than the one currently achieved at the named bookmaker. Suggestions are
// advisory only; nothing acts on them.
type Suggestion struct {
	Bookmaker      string  `json:"bookmaker"`
	Text           string  `json:"text"`
	PotentialBonus float64 `json:"potentialBonus"`
	CurrentBonus   float64 `json:"currentBonus"`
}

// AnalysisRequest carries one computation pass's inputs: the ordered
// selection set and the stake. The stake is supplied per call, never stored.
type AnalysisRequest struct {
	Selections []Selection `json:"selections"`
	Stake      float64     `json:"stake"`
}

// AnalysisReport is the full computed output for one request: the ranked
// bookmaker table (index 0 is the recommendation), the per-selection price
// breakdown, the per-bookmaker bonus evaluation, and advisor suggestions.
type AnalysisReport struct {
	ID          string               `json:"id"`
	Stake       float64              `json:"stake"`
	Rankings    []BookmakerSummary   `json:"rankings"`
	Breakdown   []SelectionBreakdown `json:"breakdown"`
	Bonuses     []BonusResult        `json:"bonuses"`
	BestBonus   *BonusResult         `json:"bestBonus,omitempty"`
	Suggestions []Suggestion         `json:"suggestions,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
}
