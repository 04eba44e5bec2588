package handlers

import (
	"net/http"

	"github.com/betanalytics/analytics-api/internal/models"
)

// ListTeams returns a page of teams
// @Summary List Teams
// @Tags Teams
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size (max 1000)" default(100)
// @Param country query string false "Country (substring, case-insensitive)"
// @Param league query string false "League (substring, case-insensitive)"
// @Param include_inactive query bool false "Include soft-deleted teams"
// @Success 200 {array} models.Team
// @Router /teams [get]
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	q := r.URL.Query()

	teams, err := h.store.ListTeams(r.Context(), models.TeamFilter{
		Country:    q.Get("country"),
		League:     q.Get("league"),
		ActiveOnly: q.Get("include_inactive") != "true",
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		h.serviceError(w, err, "Failed to list teams")
		return
	}
	h.jsonResponse(w, http.StatusOK, teams)
}

// GetTeam returns one team with its aggregate statistics
// @Summary Get Team
// @Tags Teams
// @Produce json
// @Param teamId path int true "Team ID"
// @Success 200 {object} models.Team
// @Failure 404 {object} map[string]string
// @Router /teams/{teamId} [get]
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "teamId")
	if !ok {
		return
	}
	team, err := h.store.GetTeam(r.Context(), id)
	if err != nil {
		h.serviceError(w, err, "Failed to get team")
		return
	}
	h.jsonResponse(w, http.StatusOK, team)
}

// CreateTeam registers a team with empty statistics
// @Summary Create Team
// @Tags Teams
// @Accept json
// @Produce json
// @Security AdminToken
// @Param team body models.TeamCreateRequest true "Team"
// @Success 201 {object} models.Team
// @Failure 400 {object} map[string]string
// @Router /teams [post]
func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req models.TeamCreateRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	team := &models.Team{
		Name:      req.Name,
		ShortName: req.ShortName,
		LogoURL:   req.LogoURL,
		League:    req.League,
		Country:   req.Country,
		Founded:   req.Founded,
	}
	if err := h.store.CreateTeam(r.Context(), team); err != nil {
		h.serviceError(w, err, "Failed to create team")
		return
	}

	h.logger.Infow("Team created", "team_id", team.ID, "name", team.Name)
	h.jsonResponse(w, http.StatusCreated, team)
}

// UpdateTeam edits a team's descriptive fields
// @Summary Update Team
// @Tags Teams
// @Accept json
// @Produce json
// @Security AdminToken
// @Param teamId path int true "Team ID"
// @Param team body models.TeamUpdateRequest true "Fields to change"
// @Success 200 {object} models.Team
// @Failure 404 {object} map[string]string
// @Router /teams/{teamId} [put]
func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "teamId")
	if !ok {
		return
	}
	var req models.TeamUpdateRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	team, err := h.store.GetTeam(r.Context(), id)
	if err != nil {
		h.serviceError(w, err, "Failed to get team")
		return
	}
	req.Apply(team)
	if err := h.store.UpdateTeamProfile(r.Context(), team); err != nil {
		h.serviceError(w, err, "Failed to update team")
		return
	}
	h.jsonResponse(w, http.StatusOK, team)
}

// DeleteTeam soft-deletes a team; its matches are kept
// @Summary Deactivate Team
// @Tags Teams
// @Produce json
// @Security AdminToken
// @Param teamId path int true "Team ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{teamId} [delete]
func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "teamId")
	if !ok {
		return
	}
	if err := h.store.DeactivateTeam(r.Context(), id); err != nil {
		h.serviceError(w, err, "Failed to deactivate team")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]string{"message": "Team deactivated"})
}

// RecomputeTeam rebuilds one team's aggregate from its finished matches
// @Summary Recompute Team Statistics
// @Tags Teams
// @Produce json
// @Security AdminToken
// @Param teamId path int true "Team ID"
// @Success 200 {object} models.Team
// @Failure 404 {object} map[string]string
// @Router /teams/{teamId}/recompute [post]
func (h *Handler) RecomputeTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "teamId")
	if !ok {
		return
	}
	team, err := h.stats.Recompute(r.Context(), id)
	if err != nil {
		h.serviceError(w, err, "Failed to recompute team statistics")
		return
	}
	h.jsonResponse(w, http.StatusOK, team)
}
