package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MatchPrediction is the probabilistic forecast for one fixture
type MatchPrediction struct {
	TotalGoalsPrediction float64 `json:"total_goals_prediction"`
	HomeWinProbability   float64 `json:"home_win_probability"`
	DrawProbability      float64 `json:"draw_probability"`
	AwayWinProbability   float64 `json:"away_win_probability"`
	BTTSProbability      float64 `json:"btts_probability"`
	DataSufficiency      bool    `json:"data_sufficiency"`

	ExpectedHomeGoals float64 `json:"expected_home_goals"`
	ExpectedAwayGoals float64 `json:"expected_away_goals"`
	MostLikelyScore   string  `json:"most_likely_score"`
	Over15Probability float64 `json:"over_1_5_probability"`
	Over25Probability float64 `json:"over_2_5_probability"`
}

// MostLikelyOutcome returns the outcome with the highest probability and that probability.
// Ties resolve in home, draw, away order.
func (p MatchPrediction) MostLikelyOutcome() (Outcome, float64) {
	outcome, best := OutcomeHome, p.HomeWinProbability
	if p.DrawProbability > best {
		outcome, best = OutcomeDraw, p.DrawProbability
	}
	if p.AwayWinProbability > best {
		outcome, best = OutcomeAway, p.AwayWinProbability
	}
	return outcome, best
}

// TrendResult is one trend statistic over a set of finished matches
type TrendResult struct {
	Type         string  `json:"type"`
	Description  string  `json:"description"`
	MatchesCount int     `json:"matches_count"`
	SuccessRate  float64 `json:"success_rate"`
	Confidence   float64 `json:"confidence"`
}

// MarketComparison sets the model against bookmaker 1X2 prices
type MarketComparison struct {
	Overround   float64 `json:"overround"`
	HomeImplied float64 `json:"home_implied"`
	DrawImplied float64 `json:"draw_implied"`
	AwayImplied float64 `json:"away_implied"`
	HomeEdge    float64 `json:"home_edge"`
	DrawEdge    float64 `json:"draw_edge"`
	AwayEdge    float64 `json:"away_edge"`
}

// AnalysisResult is the combined answer for one match
type AnalysisResult struct {
	MatchID     int64             `json:"match_id"`
	HomeTeam    TeamAnalysis      `json:"home_team"`
	AwayTeam    TeamAnalysis      `json:"away_team"`
	Predictions MatchPrediction   `json:"predictions"`
	Trends      []TrendResult     `json:"trends"`
	Market      *MarketComparison `json:"market,omitempty"`
}

// FormItem is one finished match seen from a single team's side
type FormItem struct {
	MatchID      int64     `json:"match_id"`
	Date         time.Time `json:"date"`
	Result       string    `json:"result"` // "W", "D", "L"
	GoalsFor     int       `json:"goals_for"`
	GoalsAgainst int       `json:"goals_against"`
	Opponent     string    `json:"opponent"`
	Venue        string    `json:"venue"` // "home", "away"
	Points       int       `json:"points"`
}

// TeamFormResult is a team's recent form, most recent first
type TeamFormResult struct {
	TeamID     int64      `json:"team_id"`
	TeamName   string     `json:"team_name"`
	RecentForm []FormItem `json:"recent_form"`
	FormString string     `json:"form_string"`
	Points     int        `json:"points"`
	Momentum   float64    `json:"momentum"`
}

// PredictionSnapshot is the analytics log row written for every analysis
type PredictionSnapshot struct {
	RunID              uuid.UUID `json:"run_id"`
	MatchID            int64     `json:"match_id"`
	HomeTeamID         int64     `json:"home_team_id"`
	AwayTeamID         int64     `json:"away_team_id"`
	League             string    `json:"league_name"`
	ComputedAt         time.Time `json:"computed_at"`
	LambdaHome         float64   `json:"lambda_home"`
	LambdaAway         float64   `json:"lambda_away"`
	HomeWinProbability float64   `json:"home_win_probability"`
	DrawProbability    float64   `json:"draw_probability"`
	AwayWinProbability float64   `json:"away_win_probability"`
	BTTSProbability    float64   `json:"btts_probability"`
	DataSufficient     bool      `json:"data_sufficient"`
}

// PredictionHistory is the logged predictions for one match, newest first.
// HomeWinDrift is the newest minus the oldest home-win probability.
type PredictionHistory struct {
	MatchID      int64                `json:"match_id"`
	Snapshots    []PredictionSnapshot `json:"snapshots"`
	HomeWinDrift float64              `json:"home_win_drift"`
}

// TrendFilter scopes a trend scan. An empty League covers every league and
// an empty Type returns every registered trend.
type TrendFilter struct {
	League string
	Type   string
}

// LeagueMatches reports whether league satisfies the filter: a
// case-insensitive substring match, empty filter matching everything.
func LeagueMatches(league, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(league), strings.ToLower(filter))
}
