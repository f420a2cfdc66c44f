package handler

import (
	"log/slog"
	"net/http"

	"github.com/Djalobre/kvotizza-fe-sub000/internal/domain"
)

// ScheduleHandler exposes the loaded bonus-schedule table so the dashboard
// can render each bookmaker's bonus terms.
type ScheduleHandler struct {
	table  domain.ScheduleTable
	logger *slog.Logger
}

// NewScheduleHandler creates a ScheduleHandler over the immutable table.
func NewScheduleHandler(table domain.ScheduleTable, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		table:  table,
		logger: logger,
	}
}

// listSchedulesResponse wraps the schedule list with a count.
type listSchedulesResponse struct {
	Schedules []domain.BookmakerBonusSchedule `json:"schedules"`
	Total     int                             `json:"total"`
}

// ListSchedules returns every bookmaker's bonus schedule.
// GET /api/schedules
func (h *ScheduleHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	schedules := h.table.All()
	writeJSON(w, http.StatusOK, listSchedulesResponse{
		Schedules: schedules,
		Total:     len(schedules),
	})
}

// GetSchedule returns one bookmaker's schedule.
// GET /api/schedules/{bookmaker}
func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("bookmaker")
	if name == "" {
		writeError(w, http.StatusBadRequest, "missing bookmaker name")
		return
	}
	sched, ok := h.table.Lookup(name)
	if !ok {
		writeError(w, http.StatusNotFound, "no bonus schedule for bookmaker")
		return
	}
	writeJSON(w, http.StatusOK, sched)
}
