package models

import "time"

// Team is the aggregate record for one club. The counters are owned by the
// statistics recompute; the derived averages must always match them.
type Team struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name,omitempty"`
	LogoURL   string `json:"logo_url,omitempty"`
	Country   string `json:"country,omitempty"`
	League    string `json:"league_name,omitempty"`
	Founded   int    `json:"founded,omitempty"`
	IsActive  bool   `json:"is_active"`

	TeamRecord

	AvgGoalsScored   float64 `json:"avg_goals_scored"`
	AvgGoalsConceded float64 `json:"avg_goals_conceded"`
	WinPercentage    float64 `json:"win_percentage"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// TeamRecord holds the cumulative counters of a team's finished matches.
type TeamRecord struct {
	GamesPlayed  int `json:"games_played"`
	Wins         int `json:"wins"`
	Draws        int `json:"draws"`
	Losses       int `json:"losses"`
	GoalsFor     int `json:"goals_for"`
	GoalsAgainst int `json:"goals_against"`

	HomeWins   int `json:"home_wins"`
	HomeDraws  int `json:"home_draws"`
	HomeLosses int `json:"home_losses"`
	AwayWins   int `json:"away_wins"`
	AwayDraws  int `json:"away_draws"`
	AwayLosses int `json:"away_losses"`
}

// Derive recomputes the averages from the counters.
// Zero games played yields zero averages.
func (t *Team) Derive() {
	t.AvgGoalsScored = 0
	t.AvgGoalsConceded = 0
	t.WinPercentage = 0
	if t.GamesPlayed <= 0 {
		return
	}
	n := float64(t.GamesPlayed)
	t.AvgGoalsScored = float64(t.GoalsFor) / n
	t.AvgGoalsConceded = float64(t.GoalsAgainst) / n
	t.WinPercentage = float64(t.Wins) / n
}

// HasHistory reports whether the team has at least one finished match on record.
func (t *Team) HasHistory() bool {
	return t.GamesPlayed > 0
}

// TeamAnalysis is the per-side team summary embedded in an analysis response.
type TeamAnalysis struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	GamesPlayed      int     `json:"games_played"`
	AvgGoalsScored   float64 `json:"avg_goals_scored"`
	AvgGoalsConceded float64 `json:"avg_goals_conceded"`
	WinPercentage    float64 `json:"win_percentage"`
	HomeWins         int     `json:"home_wins"`
	HomeDraws        int     `json:"home_draws"`
	HomeLosses       int     `json:"home_losses"`
	AwayWins         int     `json:"away_wins"`
	AwayDraws        int     `json:"away_draws"`
	AwayLosses       int     `json:"away_losses"`
}

// Analysis projects the team into its analysis summary.
func (t *Team) Analysis() TeamAnalysis {
	return TeamAnalysis{
		ID:               t.ID,
		Name:             t.Name,
		GamesPlayed:      t.GamesPlayed,
		AvgGoalsScored:   t.AvgGoalsScored,
		AvgGoalsConceded: t.AvgGoalsConceded,
		WinPercentage:    t.WinPercentage,
		HomeWins:         t.HomeWins,
		HomeDraws:        t.HomeDraws,
		HomeLosses:       t.HomeLosses,
		AwayWins:         t.AwayWins,
		AwayDraws:        t.AwayDraws,
		AwayLosses:       t.AwayLosses,
	}
}

// TeamFilter narrows a team listing.
type TeamFilter struct {
	Country    string
	League     string
	ActiveOnly bool
	Limit      int
	Offset     int
}
