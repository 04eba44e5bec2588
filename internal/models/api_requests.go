package models

import "time"

type TeamCreateRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	ShortName string `json:"short_name" validate:"max=10"`
	LogoURL   string `json:"logo_url" validate:"omitempty,max=255,url"`
	League    string `json:"league_name" validate:"max=100"`
	Country   string `json:"country" validate:"max=50"`
	Founded   int    `json:"founded" validate:"omitempty,gte=1800,lte=2100"`
}

// TeamUpdateRequest carries partial updates; nil fields are left untouched.
// Counters are owned by the statistics recompute and cannot be set here.
type TeamUpdateRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=100"`
	ShortName *string `json:"short_name" validate:"omitempty,max=10"`
	LogoURL   *string `json:"logo_url" validate:"omitempty,max=255"`
	League    *string `json:"league_name" validate:"omitempty,max=100"`
	Country   *string `json:"country" validate:"omitempty,max=50"`
	Founded   *int    `json:"founded" validate:"omitempty,gte=1800,lte=2100"`
}

// Apply copies the set fields onto the team.
func (r *TeamUpdateRequest) Apply(t *Team) {
	if r.Name != nil {
		t.Name = *r.Name
	}
	if r.ShortName != nil {
		t.ShortName = *r.ShortName
	}
	if r.LogoURL != nil {
		t.LogoURL = *r.LogoURL
	}
	if r.League != nil {
		t.League = *r.League
	}
	if r.Country != nil {
		t.Country = *r.Country
	}
	if r.Founded != nil {
		t.Founded = *r.Founded
	}
}

type MatchCreateRequest struct {
	ExternalID string      `json:"external_id" validate:"max=50"`
	HomeTeamID int64       `json:"home_team_id" validate:"required,gt=0"`
	AwayTeamID int64       `json:"away_team_id" validate:"required,gt=0,nefield=HomeTeamID"`
	League     string      `json:"league_name" validate:"max=100"`
	Season     string      `json:"season" validate:"max=10"`
	Round      string      `json:"round" validate:"max=50"`
	MatchDate  time.Time   `json:"match_date" validate:"required"`
	Status     MatchStatus `json:"status" validate:"omitempty,oneof=scheduled finished postponed cancelled"`
	HomeGoals  *int        `json:"home_goals" validate:"omitempty,gte=0"`
	AwayGoals  *int        `json:"away_goals" validate:"omitempty,gte=0"`
	OddsRequest
}

// OddsRequest carries decimal prices, each strictly greater than 1.
type OddsRequest struct {
	HomeOdds    *float64 `json:"home_odds" validate:"omitempty,gt=1"`
	DrawOdds    *float64 `json:"draw_odds" validate:"omitempty,gt=1"`
	AwayOdds    *float64 `json:"away_odds" validate:"omitempty,gt=1"`
	Over25Odds  *float64 `json:"over_2_5_odds" validate:"omitempty,gt=1"`
	Under25Odds *float64 `json:"under_2_5_odds" validate:"omitempty,gt=1"`
	BTTSYesOdds *float64 `json:"btts_yes_odds" validate:"omitempty,gt=1"`
	BTTSNoOdds  *float64 `json:"btts_no_odds" validate:"omitempty,gt=1"`
}

func (r *OddsRequest) apply(o *MatchOdds) {
	for _, f := range []struct {
		src *float64
		dst **float64
	}{
		{r.HomeOdds, &o.HomeOdds},
		{r.DrawOdds, &o.DrawOdds},
		{r.AwayOdds, &o.AwayOdds},
		{r.Over25Odds, &o.Over25Odds},
		{r.Under25Odds, &o.Under25Odds},
		{r.BTTSYesOdds, &o.BTTSYesOdds},
		{r.BTTSNoOdds, &o.BTTSNoOdds},
	} {
		if f.src != nil {
			v := *f.src
			*f.dst = &v
		}
	}
}

// ToMatch builds a new match. A finished status requires both scores,
// from which the result fields are derived.
func (r *MatchCreateRequest) ToMatch() (*Match, error) {
	m := &Match{
		ExternalID: r.ExternalID,
		HomeTeamID: r.HomeTeamID,
		AwayTeamID: r.AwayTeamID,
		League:     r.League,
		Season:     r.Season,
		Round:      r.Round,
		MatchDate:  r.MatchDate,
		Status:     r.Status,
	}
	if m.Status == "" {
		m.Status = StatusScheduled
	}
	r.OddsRequest.apply(&m.MatchOdds)
	if m.Status == StatusFinished {
		if r.HomeGoals == nil || r.AwayGoals == nil {
			return nil, ErrInconsistentResult
		}
		m.ApplyResult(*r.HomeGoals, *r.AwayGoals)
	}
	return m, m.Validate()
}

// MatchUpdateRequest is the result-update path. Setting both scores finishes the match.
type MatchUpdateRequest struct {
	League    *string      `json:"league_name" validate:"omitempty,max=100"`
	Season    *string      `json:"season" validate:"omitempty,max=10"`
	Round     *string      `json:"round" validate:"omitempty,max=50"`
	MatchDate *time.Time   `json:"match_date"`
	Status    *MatchStatus `json:"status" validate:"omitempty,oneof=scheduled finished postponed cancelled"`
	HomeGoals *int         `json:"home_goals" validate:"omitempty,gte=0"`
	AwayGoals *int         `json:"away_goals" validate:"omitempty,gte=0"`
	OddsRequest
}

// Apply merges the update into m and reports whether the match transitioned
// into (or changed its result while) finished.
func (r *MatchUpdateRequest) Apply(m *Match) (resultChanged bool, err error) {
	if r.League != nil {
		m.League = *r.League
	}
	if r.Season != nil {
		m.Season = *r.Season
	}
	if r.Round != nil {
		m.Round = *r.Round
	}
	if r.MatchDate != nil {
		m.MatchDate = *r.MatchDate
	}
	r.OddsRequest.apply(&m.MatchOdds)

	wasFinished := m.IsFinished()
	prevHome, prevAway := m.Score()

	if r.Status != nil && *r.Status != StatusFinished {
		m.Status = *r.Status
		m.HomeGoals, m.AwayGoals = nil, nil
		m.Winner, m.TotalGoals, m.BothTeamsScored = "", 0, false
		return wasFinished, m.Validate()
	}

	finishing := (r.Status != nil && *r.Status == StatusFinished) || r.HomeGoals != nil || r.AwayGoals != nil
	if !finishing {
		return false, m.Validate()
	}

	home, away := prevHome, prevAway
	if r.HomeGoals != nil {
		home = *r.HomeGoals
	}
	if r.AwayGoals != nil {
		away = *r.AwayGoals
	}
	if !wasFinished && (r.HomeGoals == nil || r.AwayGoals == nil) {
		return false, ErrInconsistentResult
	}
	m.ApplyResult(home, away)
	return !wasFinished || home != prevHome || away != prevAway, m.Validate()
}
