package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Djalobre/kvotizza-fe-sub000/internal/domain"
)

// maxSelections caps one request's selection set; the dashboard never sends
// more than a ticket's worth of picks.
const maxSelections = 50

// AnalysisService defines what the analysis handler requires from the
// service layer.
type AnalysisService interface {
	Analyze(ctx context.Context, req domain.AnalysisRequest) (domain.AnalysisReport, error)
}

// AnalysisHandler serves the bet-analysis endpoint.
type AnalysisHandler struct {
	analysis AnalysisService
	logger   *slog.Logger
}

// NewAnalysisHandler creates an AnalysisHandler.
func NewAnalysisHandler(analysis AnalysisService, logger *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysis: analysis,
		logger:   logger,
	}
}

// Analyze computes the ranked cross-bookmaker report for a selection set.
// POST /api/analysis
//
// Body: {"selections": [...], "stake": 100}
// An empty selection set is valid and yields an empty report.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := validateRequest(req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	report, err := h.analysis.Analyze(r.Context(), req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return // client went away
		}
		h.logger.ErrorContext(r.Context(), "handler: analysis failed",
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func validateRequest(req domain.AnalysisRequest) string {
	if req.Stake < 0 {
		return "stake must be non-negative"
	}
	if len(req.Selections) > maxSelections {
		return "too many selections"
	}
	for _, sel := range req.Selections {
		if sel.MatchID <= 0 {
			return "selection with invalid matchId"
		}
		if sel.Category == "" || sel.BetType == "" {
			return "selection with empty category or betType"
		}
	}
	return ""
}
