package schedule

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/Djalobre/kvotizza-fe-sub000/internal/domain"
)

// FileSource loads the schedule table from a TOML file. See
// bonus_schedules.toml at the repository root for the expected layout.
type FileSource struct {
	Path string
}

// fileTable mirrors the TOML layout.
type fileTable struct {
	Schedules []scheduleEntry `toml:"schedule"`
}

type scheduleEntry struct {
	Bookmaker  string           `toml:"bookmaker"`
	Thresholds []thresholdEntry `toml:"thresholds"`
}

type thresholdEntry struct {
	MinSelections      int      `toml:"min_selections"`
	MinOdds            float64  `toml:"min_odds"`
	BonusPercent       float64  `toml:"bonus_percent"`
	AlternativePercent *float64 `toml:"alternative_percent"`
	Condition          string   `toml:"condition"`
	Categories         []string `toml:"categories"`
	Description        string   `toml:"description"`
}

// Load implements domain.ScheduleSource. The returned schedules are not yet
// validated; Build does that.
func (s FileSource) Load(context.Context) ([]domain.BookmakerBonusSchedule, error) {
	var table fileTable
	if _, err := toml.DecodeFile(s.Path, &table); err != nil {
		return nil, fmt.Errorf("schedule: decode %s: %w", s.Path, err)
	}

	schedules := make([]domain.BookmakerBonusSchedule, 0, len(table.Schedules))
	for _, entry := range table.Schedules {
		sched := domain.BookmakerBonusSchedule{
			Bookmaker:  entry.Bookmaker,
			Thresholds: make([]domain.BonusThreshold, 0, len(entry.Thresholds)),
		}
		for _, te := range entry.Thresholds {
			sched.Thresholds = append(sched.Thresholds, domain.BonusThreshold{
				MinSelections:      te.MinSelections,
				MinOdds:            te.MinOdds,
				BonusPercent:       te.BonusPercent,
				AlternativePercent: te.AlternativePercent,
				Condition:          parseCondition(te.Condition, te.Categories),
				Description:        te.Description,
			})
		}
		schedules = append(schedules, sched)
	}
	return schedules, nil
}

// parseCondition normalizes the loose file representation into the closed
// CategoryFilter variant. Unknown modes pass through so Validate can name
// them.
func parseCondition(mode string, categories []string) domain.CategoryFilter {
	switch mode {
	case "", string(domain.FilterNone):
		return domain.CategoryFilter{Mode: domain.FilterNone, Categories: categories}
	case string(domain.FilterExclude):
		return domain.CategoryFilter{Mode: domain.FilterExclude, Categories: categories}
	case string(domain.FilterInclude):
		return domain.CategoryFilter{Mode: domain.FilterInclude, Categories: categories}
	default:
		return domain.CategoryFilter{Mode: domain.FilterMode(mode), Categories: categories}
	}
}
