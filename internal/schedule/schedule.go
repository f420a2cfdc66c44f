// Package schedule loads and validates the bookmaker bonus-schedule table.
// The table is static configuration: it is read once at process start from a
// TOML file, from Postgres, or from the built-in defaults, validated, and
// handed to the engine as an immutable domain.ScheduleTable. Adjusting tiers
// never requires engine changes.
package schedule

import (
	"context"
	"fmt"
	"strings"

	"github.com/Djalobre/kvotizza-fe-sub000/internal/domain"
)

// Build validates the given schedules and assembles the immutable table.
// A zero-valued condition mode is normalized to FilterNone first, so sources
// may leave plain tiers' conditions unset.
func Build(schedules []domain.BookmakerBonusSchedule) (domain.ScheduleTable, error) {
	for i := range schedules {
		for j := range schedules[i].Thresholds {
			if schedules[i].Thresholds[j].Condition.Mode == "" {
				schedules[i].Thresholds[j].Condition.Mode = domain.FilterNone
			}
		}
	}
	if err := Validate(schedules); err != nil {
		return domain.ScheduleTable{}, err
	}
	return domain.NewScheduleTable(schedules), nil
}

// Validate checks the whole table and reports every problem found.
func Validate(schedules []domain.BookmakerBonusSchedule) error {
	var errs []string

	seen := make(map[string]bool)
	for _, s := range schedules {
		name := strings.TrimSpace(s.Bookmaker)
		if name == "" {
			errs = append(errs, "schedule with empty bookmaker name")
			continue
		}
		if seen[name] {
			errs = append(errs, fmt.Sprintf("%s: duplicate schedule", name))
		}
		seen[name] = true

		if len(s.Thresholds) == 0 {
			errs = append(errs, fmt.Sprintf("%s: no thresholds", name))
		}
		for i, t := range s.Thresholds {
			if t.MinSelections < 1 {
				errs = append(errs, fmt.Sprintf("%s: threshold %d: min_selections must be >= 1, got %d", name, i, t.MinSelections))
			}
			if t.MinOdds < 1.0 {
				errs = append(errs, fmt.Sprintf("%s: threshold %d: min_odds must be >= 1.0, got %g", name, i, t.MinOdds))
			}
			if t.BonusPercent <= 0 {
				errs = append(errs, fmt.Sprintf("%s: threshold %d: bonus_percent must be > 0, got %g", name, i, t.BonusPercent))
			}
			if t.AlternativePercent != nil && *t.AlternativePercent <= 0 {
				errs = append(errs, fmt.Sprintf("%s: threshold %d: alternative_percent must be > 0, got %g", name, i, *t.AlternativePercent))
			}
			if !t.Condition.Mode.Valid() {
				errs = append(errs, fmt.Sprintf("%s: threshold %d: unknown condition %q", name, i, t.Condition.Mode))
				continue
			}
			if t.Conditional() && len(t.Condition.Categories) == 0 {
				errs = append(errs, fmt.Sprintf("%s: threshold %d: %s condition without categories", name, i, t.Condition.Mode))
			}
			if !t.Conditional() && len(t.Condition.Categories) > 0 {
				errs = append(errs, fmt.Sprintf("%s: threshold %d: categories set without a condition", name, i))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", domain.ErrInvalidSchedule, strings.Join(errs, "\n  - "))
	}
	return nil
}

// StaticSource serves a fixed in-memory schedule list, used for the built-in
// defaults and in tests.
type StaticSource struct {
	Schedules []domain.BookmakerBonusSchedule
}

// Load implements domain.ScheduleSource.
func (s StaticSource) Load(context.Context) ([]domain.BookmakerBonusSchedule, error) {
	return s.Schedules, nil
}
