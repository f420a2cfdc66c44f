package domain

// FilterMode is the closed set of category-condition kinds a bonus tier can
// carry. Code that switches on a FilterMode should handle every constant.
type FilterMode string

const (
	// FilterNone marks a plain, unconditional tier.
	FilterNone FilterMode = "none"
	// FilterExclude: the tier's main percent applies only when none of the
	// listed categories appear among the bookmaker's selections.
	FilterExclude FilterMode = "exclude"
	// FilterInclude: the tier's main percent applies only when at least one
	// of the listed categories appears among the bookmaker's selections.
	FilterInclude FilterMode = "include"
)

// Valid reports whether m is one of the defined filter modes.
func (m FilterMode) Valid() bool {
	switch m {
	case FilterNone, FilterExclude, FilterInclude:
		return true
	default:
		return false
	}
}

// CategoryFilter is the condition attached to a conditional bonus tier.
// The zero value is the absent condition (FilterMode "" is normalized to
// FilterNone by the schedule loader).
type CategoryFilter struct {
	Mode       FilterMode `json:"mode"`
	Categories []string   `json:"categories,omitempty"`
}

// Matches reports whether the given category name is in the filter's set.
func (f CategoryFilter) Matches(category string) bool {
	for _, c := range f.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// BonusThreshold is one tier of a bookmaker's accumulator bonus schedule: a
// minimum leg count, a minimum per-leg price, and the percent granted.
//
// AlternativePercent is the percent used when a conditional tier's condition
// is not satisfied; when nil, the main BonusPercent is used as the fallback.
type BonusThreshold struct {
	MinSelections      int            `json:"minSelections"`
	MinOdds            float64        `json:"minOdds"`
	BonusPercent       float64        `json:"bonusPercent"`
	AlternativePercent *float64       `json:"alternativePercent,omitempty"`
	Condition          CategoryFilter `json:"condition"`
	Description        string         `json:"description,omitempty"`
}

// Conditional reports whether the tier carries a category condition.
func (t BonusThreshold) Conditional() bool {
	return t.Condition.Mode == FilterExclude || t.Condition.Mode == FilterInclude
}

// BookmakerBonusSchedule is one bookmaker's full tier table. It is static
// configuration: loaded once at process start and read-only afterwards.
type BookmakerBonusSchedule struct {
	Bookmaker  string           `json:"bookmaker"`
	Thresholds []BonusThreshold `json:"thresholds"`
}

// HasConditionalTiers reports whether any tier carries a category condition.
func (s BookmakerBonusSchedule) HasConditionalTiers() bool {
	for _, t := range s.Thresholds {
		if t.Conditional() {
			return true
		}
	}
	return false
}

// ScheduleTable is the immutable collection of every bookmaker's bonus
// schedule. It is built once by the schedule loader and injected into the
// engine; there is no process-wide singleton.
type ScheduleTable struct {
	schedules []BookmakerBonusSchedule
	byName    map[string]int
}

// NewScheduleTable builds a table from the given schedules, preserving their
// order. Later duplicates of a bookmaker name are ignored; the loader rejects
// duplicates before construction.
func NewScheduleTable(schedules []BookmakerBonusSchedule) ScheduleTable {
	t := ScheduleTable{
		schedules: make([]BookmakerBonusSchedule, len(schedules)),
		byName:    make(map[string]int, len(schedules)),
	}
	copy(t.schedules, schedules)
	for i, s := range t.schedules {
		if _, ok := t.byName[s.Bookmaker]; !ok {
			t.byName[s.Bookmaker] = i
		}
	}
	return t
}

// Lookup returns the schedule for the given bookmaker, if one is configured.
func (t ScheduleTable) Lookup(bookmaker string) (BookmakerBonusSchedule, bool) {
	i, ok := t.byName[bookmaker]
	if !ok {
		return BookmakerBonusSchedule{}, false
	}
	return t.schedules[i], true
}

// All returns the schedules in table order.
func (t ScheduleTable) All() []BookmakerBonusSchedule {
	out := make([]BookmakerBonusSchedule, len(t.schedules))
	copy(out, t.schedules)
	return out
}

// Len returns the number of configured bookmakers.
func (t ScheduleTable) Len() int { return len(t.schedules) }

// BonusResult is the outcome of evaluating one bookmaker's schedule against
// the user's selections. A zero-valued result (no applied threshold, zero
// amount) means no tier qualified; that is not an error.
type BonusResult struct {
	Bookmaker             string              `json:"bookmaker"`
	QualifyingSelections  []ResolvedSelection `json:"qualifyingSelections,omitempty"`
	AppliedThreshold      *BonusThreshold     `json:"appliedThreshold,omitempty"`
	BonusAmount           float64             `json:"bonusAmount"`
	BonusPercent          float64             `json:"bonusPercent"`
	QualifyingOddsProduct float64             `json:"qualifyingOddsProduct"`
	ConditionSatisfied    *bool               `json:"conditionSatisfied,omitempty"`
	ConditionDescription  string              `json:"conditionDescription,omitempty"`
}
