package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/betanalytics/analytics-api/internal/logic"
	"github.com/betanalytics/analytics-api/internal/models"
)

func scanTeam(row rowScanner) (*models.Team, error) {
	var t models.Team
	err := row.Scan(
		&t.ID, &t.Name, &t.ShortName, &t.LogoURL, &t.Country, &t.League, &t.Founded, &t.IsActive,
		&t.GamesPlayed, &t.Wins, &t.Draws, &t.Losses, &t.GoalsFor, &t.GoalsAgainst,
		&t.HomeWins, &t.HomeDraws, &t.HomeLosses, &t.AwayWins, &t.AwayDraws, &t.AwayLosses,
		&t.AvgGoalsScored, &t.AvgGoalsConceded, &t.WinPercentage, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) GetTeam(ctx context.Context, id int64) (*models.Team, error) {
	query := s.dialect.Rebind("SELECT " + teamColumns + " FROM teams WHERE id = ?")
	t, err := scanTeam(s.q.queryRow(ctx, query, id))
	if errors.Is(err, errNoRows) {
		return nil, &logic.NotFoundError{Entity: "team", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get team %d: %w", id, err)
	}
	return t, nil
}

func (s *Store) ListTeams(ctx context.Context, filter models.TeamFilter) ([]models.Team, error) {
	query, args := BuildTeamQuery(s.dialect, filter)
	r, err := s.q.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer r.Close()

	teams := []models.Team{}
	for r.Next() {
		t, err := scanTeam(r)
		if err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, *t)
	}
	return teams, r.Err()
}

func (s *Store) CreateTeam(ctx context.Context, t *models.Team) error {
	t.CreatedAt = time.Now().UTC()
	t.IsActive = true
	query := s.dialect.Rebind(`INSERT INTO teams (name, short_name, logo_url, country, league_name, founded, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`)
	err := s.q.queryRow(ctx, query,
		t.Name, t.ShortName, t.LogoURL, t.Country, t.League, t.Founded, t.IsActive, t.CreatedAt,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("create team: %w", err)
	}
	return nil
}

// UpdateTeamProfile writes the descriptive columns only; counters stay untouched.
func (s *Store) UpdateTeamProfile(ctx context.Context, t *models.Team) error {
	now := time.Now().UTC()
	query := s.dialect.Rebind(`UPDATE teams SET name = ?, short_name = ?, logo_url = ?, country = ?,
		league_name = ?, founded = ?, updated_at = ? WHERE id = ?`)
	n, err := s.q.exec(ctx, query, t.Name, t.ShortName, t.LogoURL, t.Country, t.League, t.Founded, now, t.ID)
	if err != nil {
		return fmt.Errorf("update team %d: %w", t.ID, err)
	}
	if n == 0 {
		return &logic.NotFoundError{Entity: "team", ID: t.ID}
	}
	t.UpdatedAt = &now
	return nil
}

// DeactivateTeam is a soft delete; matches keep referencing the team.
func (s *Store) DeactivateTeam(ctx context.Context, id int64) error {
	query := s.dialect.Rebind("UPDATE teams SET is_active = ?, updated_at = ? WHERE id = ?")
	n, err := s.q.exec(ctx, query, false, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("deactivate team %d: %w", id, err)
	}
	if n == 0 {
		return &logic.NotFoundError{Entity: "team", ID: id}
	}
	return nil
}

// SaveTeamAggregate publishes a recomputed aggregate with one UPDATE, so a
// concurrent reader sees either the old or the new row, never a mix.
func (s *Store) SaveTeamAggregate(ctx context.Context, t *models.Team) error {
	now := time.Now().UTC()
	query := s.dialect.Rebind(`UPDATE teams SET
		games_played = ?, wins = ?, draws = ?, losses = ?, goals_for = ?, goals_against = ?,
		home_wins = ?, home_draws = ?, home_losses = ?, away_wins = ?, away_draws = ?, away_losses = ?,
		avg_goals_scored = ?, avg_goals_conceded = ?, win_percentage = ?, updated_at = ?
		WHERE id = ?`)
	n, err := s.q.exec(ctx, query,
		t.GamesPlayed, t.Wins, t.Draws, t.Losses, t.GoalsFor, t.GoalsAgainst,
		t.HomeWins, t.HomeDraws, t.HomeLosses, t.AwayWins, t.AwayDraws, t.AwayLosses,
		t.AvgGoalsScored, t.AvgGoalsConceded, t.WinPercentage, now,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("save aggregate for team %d: %w", t.ID, err)
	}
	if n == 0 {
		return &logic.NotFoundError{Entity: "team", ID: t.ID}
	}
	t.UpdatedAt = &now
	return nil
}
