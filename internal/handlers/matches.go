package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/betanalytics/analytics-api/internal/models"
)

// ListMatches returns matches, newest first
// @Summary List Matches
// @Tags Matches
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size (max 1000)" default(100)
// @Param date_from query string false "Earliest kick-off (YYYY-MM-DD or RFC 3339)"
// @Param date_to query string false "Latest kick-off (YYYY-MM-DD or RFC 3339)"
// @Param status query string false "scheduled, finished, postponed or cancelled"
// @Param league query string false "League (substring, case-insensitive)"
// @Param team_id query int false "Only matches involving this team"
// @Success 200 {array} models.Match
// @Failure 400 {object} map[string]string
// @Router /matches [get]
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	q := r.URL.Query()

	filter := models.MatchFilter{
		League: q.Get("league"),
		Order:  models.SortDesc,
		Limit:  limit,
		Offset: offset,
	}

	if v := q.Get("status"); v != "" {
		filter.Status = models.MatchStatus(v)
		if !filter.Status.Valid() {
			h.errorResponse(w, http.StatusBadRequest, "Invalid status")
			return
		}
	}
	if v := q.Get("team_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			h.errorResponse(w, http.StatusBadRequest, "Invalid team_id")
			return
		}
		filter.TeamID = id
	}
	if v := q.Get("date_from"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "Invalid date_from")
			return
		}
		filter.DateFrom = t
	}
	if v := q.Get("date_to"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "Invalid date_to")
			return
		}
		// A bare date covers the whole day
		if len(v) == len("2006-01-02") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		filter.DateTo = t
	}

	h.listMatches(w, r, filter)
}

// TodayMatches returns the matches kicking off today (UTC)
// @Summary Today's Matches
// @Tags Matches
// @Produce json
// @Success 200 {array} models.Match
// @Router /matches/today [get]
func (h *Handler) TodayMatches(w http.ResponseWriter, r *http.Request) {
	start := time.Now().UTC().Truncate(24 * time.Hour)
	h.listMatches(w, r, models.MatchFilter{
		DateFrom: start,
		DateTo:   start.Add(24*time.Hour - time.Nanosecond),
		Order:    models.SortAsc,
	})
}

func (h *Handler) listMatches(w http.ResponseWriter, r *http.Request, filter models.MatchFilter) {
	matches, err := h.store.GetMatches(r.Context(), filter)
	if err != nil {
		h.serviceError(w, err, "Failed to list matches")
		return
	}
	h.jsonResponse(w, http.StatusOK, matches)
}

// GetMatch returns one match
// @Summary Get Match
// @Tags Matches
// @Produce json
// @Param matchId path int true "Match ID"
// @Success 200 {object} models.Match
// @Failure 404 {object} map[string]string
// @Router /matches/{matchId} [get]
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "matchId")
	if !ok {
		return
	}
	match, err := h.store.GetMatch(r.Context(), id)
	if err != nil {
		h.serviceError(w, err, "Failed to get match")
		return
	}
	h.jsonResponse(w, http.StatusOK, match)
}

// CreateMatch records a fixture, optionally with its result and odds
// @Summary Create Match
// @Tags Matches
// @Accept json
// @Produce json
// @Security AdminToken
// @Param match body models.MatchCreateRequest true "Match"
// @Success 201 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string "Unknown team"
// @Router /matches [post]
func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req models.MatchCreateRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	match, err := req.ToMatch()
	if err != nil {
		h.serviceError(w, err, "Invalid match")
		return
	}
	if err := h.store.CreateMatch(r.Context(), match); err != nil {
		h.serviceError(w, err, "Failed to create match")
		return
	}

	if match.IsFinished() {
		h.refreshAfterResult(r.Context(), match)
	}
	h.jsonResponse(w, http.StatusCreated, match)
}

// UpdateMatch edits a match; recording or changing a result refreshes both teams
// @Summary Update Match
// @Tags Matches
// @Accept json
// @Produce json
// @Security AdminToken
// @Param matchId path int true "Match ID"
// @Param match body models.MatchUpdateRequest true "Fields to change"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/{matchId} [put]
func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "matchId")
	if !ok {
		return
	}
	var req models.MatchUpdateRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	match, err := h.store.GetMatch(r.Context(), id)
	if err != nil {
		h.serviceError(w, err, "Failed to get match")
		return
	}

	resultChanged, err := req.Apply(match)
	if err != nil {
		h.serviceError(w, err, "Invalid match update")
		return
	}
	if err := h.store.UpdateMatch(r.Context(), match); err != nil {
		h.serviceError(w, err, "Failed to update match")
		return
	}

	if resultChanged {
		h.refreshAfterResult(r.Context(), match)
	}
	h.jsonResponse(w, http.StatusOK, match)
}

// refreshAfterResult rebuilds both teams' aggregates and drops cached trends.
// Failures are logged; the next scheduled recompute repairs them.
func (h *Handler) refreshAfterResult(ctx context.Context, m *models.Match) {
	for _, teamID := range []int64{m.HomeTeamID, m.AwayTeamID} {
		if _, err := h.stats.Recompute(ctx, teamID); err != nil {
			h.logger.Errorw("Failed to recompute team after result", "match_id", m.ID, "team_id", teamID, "error", err)
		}
	}
	if err := h.trends.Invalidate(ctx); err != nil {
		h.logger.Warnw("Failed to invalidate trend cache", "match_id", m.ID, "error", err)
	}
}
