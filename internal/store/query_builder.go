package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/betanalytics/analytics-api/internal/models"
)

// Dialect captures the SQL differences between the supported backends.
type Dialect struct {
	Name string
	// Numbered placeholders ($1, $2, ...) instead of ?
	Numbered bool
	// Case-insensitive LIKE operator
	ILike string
}

var (
	Postgres = Dialect{Name: "postgres", Numbered: true, ILike: "ILIKE"}
	SQLite   = Dialect{Name: "sqlite", ILike: "LIKE"}
)

// Rebind rewrites ? placeholders for the dialect.
func (d Dialect) Rebind(query string) string {
	if !d.Numbered {
		return query
	}
	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteByte(query[i])
	}
	return sb.String()
}

const (
	maxPageSize     = 1000
	defaultPageSize = 100
)

// pageSize caps limit at maxPageSize; a non-positive limit gets the default.
func pageSize(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	return min(limit, maxPageSize)
}

const teamColumns = `id, name, short_name, logo_url, country, league_name, founded, is_active,
	games_played, wins, draws, losses, goals_for, goals_against,
	home_wins, home_draws, home_losses, away_wins, away_draws, away_losses,
	avg_goals_scored, avg_goals_conceded, win_percentage, created_at, updated_at`

// BuildTeamQuery constructs a team listing ordered by name.
// A zero Limit in the filter returns every matching team.
func BuildTeamQuery(d Dialect, f models.TeamFilter) (string, []any) {
	query := "SELECT " + teamColumns + " FROM teams WHERE 1=1"
	var args []any

	if f.ActiveOnly {
		query += " AND is_active = ?"
		args = append(args, true)
	}
	if f.Country != "" {
		query += fmt.Sprintf(" AND country %s ?", d.ILike)
		args = append(args, "%"+f.Country+"%")
	}
	if f.League != "" {
		query += fmt.Sprintf(" AND league_name %s ?", d.ILike)
		args = append(args, "%"+f.League+"%")
	}

	query += " ORDER BY name, id"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", pageSize(f.Limit), max(f.Offset, 0))
	}
	return d.Rebind(query), args
}

const matchColumns = `m.id, m.external_id, m.home_team_id, m.away_team_id,
	COALESCE(ht.name, ''), COALESCE(awt.name, ''),
	m.league_name, m.season, m.round, m.match_date, m.status,
	m.home_goals, m.away_goals, m.winner, m.total_goals, m.both_teams_scored,
	m.home_odds, m.draw_odds, m.away_odds, m.over_2_5_odds, m.under_2_5_odds, m.btts_yes_odds, m.btts_no_odds,
	m.prediction_confidence, m.predicted_result, m.analysis_notes, m.created_at, m.updated_at`

const matchFrom = ` FROM matches m
	LEFT JOIN teams ht ON ht.id = m.home_team_id
	LEFT JOIN teams awt ON awt.id = m.away_team_id`

// BuildMatchQuery constructs a match query from the filter. Matches are
// ordered by date, newest first unless the filter asks otherwise; a zero
// Limit returns every matching row.
func BuildMatchQuery(d Dialect, f models.MatchFilter) (string, []any) {
	query := "SELECT " + matchColumns + matchFrom + " WHERE 1=1"
	var args []any

	if f.TeamID != 0 {
		query += " AND (m.home_team_id = ? OR m.away_team_id = ?)"
		args = append(args, f.TeamID, f.TeamID)
	}
	if f.Status != "" {
		query += " AND m.status = ?"
		args = append(args, string(f.Status))
	}
	if f.League != "" {
		query += fmt.Sprintf(" AND m.league_name %s ?", d.ILike)
		args = append(args, "%"+f.League+"%")
	}
	if !f.DateFrom.IsZero() {
		query += " AND m.match_date >= ?"
		args = append(args, f.DateFrom.UTC())
	}
	if !f.DateTo.IsZero() {
		query += " AND m.match_date <= ?"
		args = append(args, f.DateTo.UTC())
	}

	if f.Order == models.SortAsc {
		query += " ORDER BY m.match_date ASC, m.id ASC"
	} else {
		query += " ORDER BY m.match_date DESC, m.id DESC"
	}

	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", pageSize(f.Limit), max(f.Offset, 0))
	}
	return d.Rebind(query), args
}
