package models

import (
	"errors"
	"fmt"
	"time"
)

// MatchStatus is the lifecycle state of a fixture
type MatchStatus string

const (
	StatusScheduled MatchStatus = "scheduled"
	StatusFinished  MatchStatus = "finished"
	StatusPostponed MatchStatus = "postponed"
	StatusCancelled MatchStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s MatchStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusFinished, StatusPostponed, StatusCancelled:
		return true
	}
	return false
}

// Outcome is the result of a finished match from the fixture's point of view
type Outcome string

const (
	OutcomeHome Outcome = "home"
	OutcomeDraw Outcome = "draw"
	OutcomeAway Outcome = "away"
)

// OutcomeFor returns the outcome implied by a scoreline.
func OutcomeFor(homeGoals, awayGoals int) Outcome {
	switch {
	case homeGoals > awayGoals:
		return OutcomeHome
	case homeGoals < awayGoals:
		return OutcomeAway
	default:
		return OutcomeDraw
	}
}

var ErrInconsistentResult = errors.New("inconsistent match result")

// Match is a single fixture between two teams
type Match struct {
	ID           int64       `json:"id"`
	ExternalID   string      `json:"external_id,omitempty"`
	HomeTeamID   int64       `json:"home_team_id"`
	AwayTeamID   int64       `json:"away_team_id"`
	HomeTeamName string      `json:"home_team_name,omitempty"`
	AwayTeamName string      `json:"away_team_name,omitempty"`
	League       string      `json:"league_name,omitempty"`
	Season       string      `json:"season,omitempty"`
	Round        string      `json:"round,omitempty"`
	MatchDate    time.Time   `json:"match_date"`
	Status       MatchStatus `json:"status"`

	// Result (only set when finished)
	HomeGoals       *int    `json:"home_goals"`
	AwayGoals       *int    `json:"away_goals"`
	Winner          Outcome `json:"winner,omitempty"`
	TotalGoals      int     `json:"total_goals"`
	BothTeamsScored bool    `json:"both_teams_scored"`

	MatchOdds

	// Analysis annotations
	PredictionConfidence *float64 `json:"prediction_confidence"`
	PredictedResult      string   `json:"predicted_result,omitempty"`
	AnalysisNotes        string   `json:"analysis_notes,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// MatchOdds holds decimal bookmaker prices; nil means not quoted
type MatchOdds struct {
	HomeOdds    *float64 `json:"home_odds"`
	DrawOdds    *float64 `json:"draw_odds"`
	AwayOdds    *float64 `json:"away_odds"`
	Over25Odds  *float64 `json:"over_2_5_odds"`
	Under25Odds *float64 `json:"under_2_5_odds"`
	BTTSYesOdds *float64 `json:"btts_yes_odds"`
	BTTSNoOdds  *float64 `json:"btts_no_odds"`
}

// HasMatchOdds reports whether all three 1X2 prices are quoted.
func (o MatchOdds) HasMatchOdds() bool {
	return o.HomeOdds != nil && o.DrawOdds != nil && o.AwayOdds != nil
}

// IsFinished reports whether the match has a recorded result.
func (m *Match) IsFinished() bool {
	return m.Status == StatusFinished && m.HomeGoals != nil && m.AwayGoals != nil
}

// Score returns the scoreline, zero for unplayed matches.
func (m *Match) Score() (home, away int) {
	if m.HomeGoals != nil {
		home = *m.HomeGoals
	}
	if m.AwayGoals != nil {
		away = *m.AwayGoals
	}
	return home, away
}

// ApplyResult marks the match finished and derives every result field from the score.
func (m *Match) ApplyResult(homeGoals, awayGoals int) {
	h, a := homeGoals, awayGoals
	m.Status = StatusFinished
	m.HomeGoals = &h
	m.AwayGoals = &a
	m.TotalGoals = h + a
	m.BothTeamsScored = h > 0 && a > 0
	m.Winner = OutcomeFor(h, a)
}

// Validate checks the result invariants of a finished match.
func (m *Match) Validate() error {
	if !m.Status.Valid() {
		return fmt.Errorf("unknown status %q", m.Status)
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("%w: team %d cannot play itself", ErrInconsistentResult, m.HomeTeamID)
	}
	if m.Status != StatusFinished {
		return nil
	}
	if m.HomeGoals == nil || m.AwayGoals == nil {
		return fmt.Errorf("%w: finished match without score", ErrInconsistentResult)
	}
	h, a := *m.HomeGoals, *m.AwayGoals
	if h < 0 || a < 0 {
		return fmt.Errorf("%w: negative goals %d-%d", ErrInconsistentResult, h, a)
	}
	if m.TotalGoals != h+a {
		return fmt.Errorf("%w: total_goals %d for score %d-%d", ErrInconsistentResult, m.TotalGoals, h, a)
	}
	if m.BothTeamsScored != (h > 0 && a > 0) {
		return fmt.Errorf("%w: both_teams_scored mismatch for score %d-%d", ErrInconsistentResult, h, a)
	}
	if m.Winner != OutcomeFor(h, a) {
		return fmt.Errorf("%w: winner %q for score %d-%d", ErrInconsistentResult, m.Winner, h, a)
	}
	return nil
}

// Involves reports whether the team played in the match.
func (m *Match) Involves(teamID int64) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

// MatchAnnotation is the analysis output written back onto a match
type MatchAnnotation struct {
	PredictionConfidence float64 `json:"prediction_confidence"`
	PredictedResult      Outcome `json:"predicted_result"`
	AnalysisNotes        string  `json:"analysis_notes"`
}

// SortOrder is the match date ordering of a query
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// MatchFilter narrows a match query; zero values mean "no filter".
type MatchFilter struct {
	TeamID   int64
	DateFrom time.Time
	DateTo   time.Time
	Status   MatchStatus
	League   string
	Order    SortOrder
	Limit    int
	Offset   int
}
