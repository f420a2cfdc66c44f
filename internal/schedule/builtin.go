package schedule

import "github.com/Djalobre/kvotizza-fe-sub000/internal/domain"

func pct(v float64) *float64 { return &v }

// Default returns the built-in schedule table matching the bonus terms the
// dashboard ships with. Deployments normally override it with a file or the
// Postgres table; the builtin keeps the binary usable with zero config.
func Default() []domain.BookmakerBonusSchedule {
	return []domain.BookmakerBonusSchedule{
		{
			Bookmaker: "Mozzartbet",
			Thresholds: []domain.BonusThreshold{
				{
					MinSelections:      5,
					MinOdds:            1.35,
					BonusPercent:       3,
					AlternativePercent: pct(2),
					Condition: domain.CategoryFilter{
						Mode:       domain.FilterExclude,
						Categories: []string{"Konačni ishod"},
					},
					Description: "Full bonus without Konačni ishod picks",
				},
				{
					MinSelections:      10,
					MinOdds:            1.35,
					BonusPercent:       7,
					AlternativePercent: pct(5),
					Condition: domain.CategoryFilter{
						Mode:       domain.FilterExclude,
						Categories: []string{"Konačni ishod"},
					},
					Description: "Full bonus without Konačni ishod picks",
				},
				{
					MinSelections:      15,
					MinOdds:            1.35,
					BonusPercent:       15,
					AlternativePercent: pct(10),
					Condition: domain.CategoryFilter{
						Mode:       domain.FilterExclude,
						Categories: []string{"Konačni ishod"},
					},
					Description: "Full bonus without Konačni ishod picks",
				},
			},
		},
		{
			Bookmaker: "Pinnbet",
			Thresholds: []domain.BonusThreshold{
				{MinSelections: 5, MinOdds: 1.35, BonusPercent: 3},
				{MinSelections: 10, MinOdds: 1.35, BonusPercent: 8},
				{MinSelections: 15, MinOdds: 1.35, BonusPercent: 20},
			},
		},
		{
			Bookmaker: "Meridianbet",
			Thresholds: []domain.BonusThreshold{
				{MinSelections: 4, MinOdds: 1.30, BonusPercent: 2},
				{MinSelections: 8, MinOdds: 1.30, BonusPercent: 6},
				{MinSelections: 12, MinOdds: 1.30, BonusPercent: 12},
			},
		},
		{
			Bookmaker: "Maxbet",
			Thresholds: []domain.BonusThreshold{
				{MinSelections: 5, MinOdds: 1.40, BonusPercent: 5},
				{MinSelections: 10, MinOdds: 1.40, BonusPercent: 12},
			},
		},
		{
			Bookmaker: "Soccerbet",
			Thresholds: []domain.BonusThreshold{
				{MinSelections: 6, MinOdds: 1.25, BonusPercent: 3},
				{MinSelections: 12, MinOdds: 1.25, BonusPercent: 10},
			},
		},
		{
			Bookmaker: "Balkanbet",
			Thresholds: []domain.BonusThreshold{
				{
					MinSelections:      5,
					MinOdds:            1.30,
					BonusPercent:       5,
					AlternativePercent: pct(3),
					Condition: domain.CategoryFilter{
						Mode:       domain.FilterInclude,
						Categories: []string{"Ukupno golova"},
					},
					Description: "Full bonus with at least one Ukupno golova pick",
				},
				{MinSelections: 10, MinOdds: 1.30, BonusPercent: 12},
			},
		},
	}
}
