package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Djalobre/kvotizza-fe-sub000/internal/domain"
)

// ScheduleStore implements domain.ScheduleSource against the
// bonus_thresholds table. Rows are grouped by bookmaker; position fixes the
// tier order within a schedule, bookmaker name fixes the table order.
type ScheduleStore struct {
	pool *pgxpool.Pool
}

// NewScheduleStore creates a ScheduleStore backed by the given pool.
func NewScheduleStore(pool *pgxpool.Pool) *ScheduleStore {
	return &ScheduleStore{pool: pool}
}

// Load reads the full schedule table. The result is not yet validated;
// schedule.Build does that.
func (s *ScheduleStore) Load(ctx context.Context) ([]domain.BookmakerBonusSchedule, error) {
	const query = `
		SELECT bookmaker, min_selections, min_odds, bonus_percent,
		       alternative_percent, condition, categories, description
		FROM bonus_thresholds
		ORDER BY bookmaker, position, id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: load bonus schedules: %w", err)
	}
	defer rows.Close()

	var schedules []domain.BookmakerBonusSchedule
	index := make(map[string]int)

	for rows.Next() {
		var (
			bookmaker  string
			th         domain.BonusThreshold
			condition  string
			categories []string
		)
		if err := rows.Scan(
			&bookmaker, &th.MinSelections, &th.MinOdds, &th.BonusPercent,
			&th.AlternativePercent, &condition, &categories, &th.Description,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan bonus threshold: %w", err)
		}
		th.Condition = domain.CategoryFilter{
			Mode:       normalizeMode(condition),
			Categories: categories,
		}

		i, ok := index[bookmaker]
		if !ok {
			i = len(schedules)
			index[bookmaker] = i
			schedules = append(schedules, domain.BookmakerBonusSchedule{Bookmaker: bookmaker})
		}
		schedules[i].Thresholds = append(schedules[i].Thresholds, th)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate bonus thresholds: %w", err)
	}

	return schedules, nil
}

// normalizeMode maps the stored text to the closed FilterMode set, passing
// unknown values through for validation to reject by name.
func normalizeMode(s string) domain.FilterMode {
	switch s {
	case "", string(domain.FilterNone):
		return domain.FilterNone
	case string(domain.FilterExclude):
		return domain.FilterExclude
	case string(domain.FilterInclude):
		return domain.FilterInclude
	default:
		return domain.FilterMode(s)
	}
}
