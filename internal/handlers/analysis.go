package handlers

import (
	"net/http"
	"strconv"

	"github.com/betanalytics/analytics-api/internal/models"
)

// AnalyzeMatch returns the prediction, team profiles, league trends and
// market comparison for a match
// @Summary Analyze Match
// @Tags Analysis
// @Produce json
// @Param matchId path int true "Match ID"
// @Success 200 {object} models.AnalysisResult
// @Failure 404 {object} map[string]string
// @Router /analysis/match/{matchId} [get]
func (h *Handler) AnalyzeMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "matchId")
	if !ok {
		return
	}
	result, err := h.analysis.AnalyzeMatch(r.Context(), id)
	if err != nil {
		h.serviceError(w, err, "Failed to analyze match")
		return
	}
	h.jsonResponse(w, http.StatusOK, result)
}

// AnnotateMatch stores the predicted outcome and confidence on the match
// @Summary Annotate Match
// @Tags Analysis
// @Produce json
// @Security AdminToken
// @Param matchId path int true "Match ID"
// @Success 200 {object} models.MatchAnnotation
// @Failure 404 {object} map[string]string
// @Router /analysis/match/{matchId}/annotate [post]
func (h *Handler) AnnotateMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "matchId")
	if !ok {
		return
	}
	annotation, err := h.analysis.AnnotateMatch(r.Context(), id)
	if err != nil {
		h.serviceError(w, err, "Failed to annotate match")
		return
	}
	h.jsonResponse(w, http.StatusOK, annotation)
}

// GetTrends scans finished matches for betting trends
// @Summary League Trends
// @Tags Analysis
// @Produce json
// @Param league query string false "League (substring, case-insensitive)"
// @Param trend_type query string false "Single trend type, e.g. over_2_5"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Unknown trend type"
// @Router /analysis/trends [get]
func (h *Handler) GetTrends(w http.ResponseWriter, r *http.Request) {
	filter := models.TrendFilter{
		League: r.URL.Query().Get("league"),
		Type:   r.URL.Query().Get("trend_type"),
	}
	trends, err := h.analysis.Trends(r.Context(), filter)
	if err != nil {
		h.serviceError(w, err, "Failed to detect trends")
		return
	}

	league := filter.League
	if league == "" {
		league = "all"
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"league": league,
		"trends": trends,
	})
}

// GetTeamForm returns a team's most recent finished matches
// @Summary Team Form
// @Tags Analysis
// @Produce json
// @Param teamId path int true "Team ID"
// @Param window query int false "Number of matches" default(5)
// @Success 200 {object} models.TeamFormResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /analysis/team/{teamId}/form [get]
func (h *Handler) GetTeamForm(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "teamId")
	if !ok {
		return
	}

	window := h.formWindow
	if v := r.URL.Query().Get("window"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "Invalid window")
			return
		}
		window = n
	}

	form, err := h.analysis.TeamForm(r.Context(), id, window)
	if err != nil {
		h.serviceError(w, err, "Failed to build team form")
		return
	}
	h.jsonResponse(w, http.StatusOK, form)
}

// GetPredictionHistory returns the logged predictions for a match, newest first
// @Summary Prediction History
// @Tags Analysis
// @Produce json
// @Param matchId path int true "Match ID"
// @Param limit query int false "Maximum snapshots (max 500)" default(100)
// @Success 200 {object} models.PredictionHistory
// @Failure 503 {object} map[string]string "Prediction log disabled"
// @Router /analysis/match/{matchId}/history [get]
func (h *Handler) GetPredictionHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "matchId")
	if !ok {
		return
	}
	if h.history == nil {
		h.errorResponse(w, http.StatusServiceUnavailable, "Prediction log disabled")
		return
	}
	_, limit := pagination(r)

	history, err := h.history.History(r.Context(), id, limit)
	if err != nil {
		h.serviceError(w, err, "Failed to read prediction history")
		return
	}
	h.jsonResponse(w, http.StatusOK, history)
}
