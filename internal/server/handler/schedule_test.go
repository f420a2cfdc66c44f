package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Djalobre/kvotizza-fe-sub000/internal/domain"
)

func testTable() domain.ScheduleTable {
	return domain.NewScheduleTable([]domain.BookmakerBonusSchedule{
		{
			Bookmaker: "Mozzartbet",
			Thresholds: []domain.BonusThreshold{
				{MinSelections: 5, MinOdds: 1.35, BonusPercent: 3, Condition: domain.CategoryFilter{Mode: domain.FilterNone}},
			},
		},
		{
			Bookmaker: "Pinnbet",
			Thresholds: []domain.BonusThreshold{
				{MinSelections: 5, MinOdds: 1.35, BonusPercent: 3, Condition: domain.CategoryFilter{Mode: domain.FilterNone}},
			},
		},
	})
}

func TestScheduleHandler_ListSchedules(t *testing.T) {
	h := NewScheduleHandler(testTable(), discardLogger())

	rec := httptest.NewRecorder()
	h.ListSchedules(rec, httptest.NewRequest(http.MethodGet, "/api/schedules", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp listSchedulesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Total != 2 || len(resp.Schedules) != 2 {
		t.Errorf("Total = %d, len = %d, want 2/2", resp.Total, len(resp.Schedules))
	}
	if resp.Schedules[0].Bookmaker != "Mozzartbet" {
		t.Errorf("first bookmaker = %q, want Mozzartbet (table order)", resp.Schedules[0].Bookmaker)
	}
}

func TestScheduleHandler_GetSchedule(t *testing.T) {
	h := NewScheduleHandler(testTable(), discardLogger())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/schedules/{bookmaker}", h.GetSchedule)

	t.Run("known bookmaker", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/schedules/Pinnbet", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var sched domain.BookmakerBonusSchedule
		if err := json.Unmarshal(rec.Body.Bytes(), &sched); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if sched.Bookmaker != "Pinnbet" {
			t.Errorf("Bookmaker = %q, want Pinnbet", sched.Bookmaker)
		}
	})

	t.Run("unknown bookmaker", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/schedules/Nobody", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})
}

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler(discardLogger())

	rec := httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %v, want ok", body["status"])
	}
}
