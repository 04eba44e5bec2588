package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/betanalytics/analytics-api/internal/logic"
	"github.com/betanalytics/analytics-api/internal/models"
)

func scanMatch(row rowScanner) (*models.Match, error) {
	var m models.Match
	err := row.Scan(
		&m.ID, &m.ExternalID, &m.HomeTeamID, &m.AwayTeamID,
		&m.HomeTeamName, &m.AwayTeamName,
		&m.League, &m.Season, &m.Round, &m.MatchDate, &m.Status,
		&m.HomeGoals, &m.AwayGoals, &m.Winner, &m.TotalGoals, &m.BothTeamsScored,
		&m.HomeOdds, &m.DrawOdds, &m.AwayOdds, &m.Over25Odds, &m.Under25Odds, &m.BTTSYesOdds, &m.BTTSNoOdds,
		&m.PredictionConfidence, &m.PredictedResult, &m.AnalysisNotes, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.MatchDate = m.MatchDate.UTC()
	return &m, nil
}

func (s *Store) GetMatch(ctx context.Context, id int64) (*models.Match, error) {
	query := s.dialect.Rebind("SELECT " + matchColumns + matchFrom + " WHERE m.id = ?")
	m, err := scanMatch(s.q.queryRow(ctx, query, id))
	if errors.Is(err, errNoRows) {
		return nil, &logic.NotFoundError{Entity: "match", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get match %d: %w", id, err)
	}
	return m, nil
}

func (s *Store) GetMatches(ctx context.Context, filter models.MatchFilter) ([]models.Match, error) {
	query, args := BuildMatchQuery(s.dialect, filter)
	r, err := s.q.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer r.Close()

	matches := []models.Match{}
	for r.Next() {
		m, err := scanMatch(r)
		if err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, *m)
	}
	return matches, r.Err()
}

func (s *Store) teamExists(ctx context.Context, id int64) error {
	var found int64
	err := s.q.queryRow(ctx, s.dialect.Rebind("SELECT id FROM teams WHERE id = ?"), id).Scan(&found)
	if errors.Is(err, errNoRows) {
		return &logic.NotFoundError{Entity: "team", ID: id}
	}
	return err
}

// CreateMatch validates the result fields and both team references before inserting.
func (s *Store) CreateMatch(ctx context.Context, m *models.Match) error {
	if err := m.Validate(); err != nil {
		return err
	}
	for _, id := range []int64{m.HomeTeamID, m.AwayTeamID} {
		if err := s.teamExists(ctx, id); err != nil {
			return err
		}
	}

	m.CreatedAt = time.Now().UTC()
	m.MatchDate = m.MatchDate.UTC()
	query := s.dialect.Rebind(`INSERT INTO matches (external_id, home_team_id, away_team_id, league_name, season, round,
		match_date, status, home_goals, away_goals, winner, total_goals, both_teams_scored,
		home_odds, draw_odds, away_odds, over_2_5_odds, under_2_5_odds, btts_yes_odds, btts_no_odds, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`)
	err := s.q.queryRow(ctx, query,
		m.ExternalID, m.HomeTeamID, m.AwayTeamID, m.League, m.Season, m.Round,
		m.MatchDate, string(m.Status), nullable(m.HomeGoals), nullable(m.AwayGoals), string(m.Winner), m.TotalGoals, m.BothTeamsScored,
		nullable(m.HomeOdds), nullable(m.DrawOdds), nullable(m.AwayOdds), nullable(m.Over25Odds), nullable(m.Under25Odds), nullable(m.BTTSYesOdds), nullable(m.BTTSNoOdds), m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("create match: %w", err)
	}
	return nil
}

// UpdateMatch writes the editable and result columns of an existing match.
func (s *Store) UpdateMatch(ctx context.Context, m *models.Match) error {
	if err := m.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	query := s.dialect.Rebind(`UPDATE matches SET league_name = ?, season = ?, round = ?, match_date = ?, status = ?,
		home_goals = ?, away_goals = ?, winner = ?, total_goals = ?, both_teams_scored = ?,
		home_odds = ?, draw_odds = ?, away_odds = ?, over_2_5_odds = ?, under_2_5_odds = ?, btts_yes_odds = ?, btts_no_odds = ?,
		updated_at = ? WHERE id = ?`)
	n, err := s.q.exec(ctx, query,
		m.League, m.Season, m.Round, m.MatchDate.UTC(), string(m.Status),
		nullable(m.HomeGoals), nullable(m.AwayGoals), string(m.Winner), m.TotalGoals, m.BothTeamsScored,
		nullable(m.HomeOdds), nullable(m.DrawOdds), nullable(m.AwayOdds), nullable(m.Over25Odds), nullable(m.Under25Odds), nullable(m.BTTSYesOdds), nullable(m.BTTSNoOdds),
		now, m.ID,
	)
	if err != nil {
		return fmt.Errorf("update match %d: %w", m.ID, err)
	}
	if n == 0 {
		return &logic.NotFoundError{Entity: "match", ID: m.ID}
	}
	m.UpdatedAt = &now
	return nil
}

func (s *Store) SaveMatchAnnotation(ctx context.Context, matchID int64, a models.MatchAnnotation) error {
	query := s.dialect.Rebind(`UPDATE matches SET prediction_confidence = ?, predicted_result = ?, analysis_notes = ?,
		updated_at = ? WHERE id = ?`)
	n, err := s.q.exec(ctx, query, a.PredictionConfidence, string(a.PredictedResult), a.AnalysisNotes, time.Now().UTC(), matchID)
	if err != nil {
		return fmt.Errorf("annotate match %d: %w", matchID, err)
	}
	if n == 0 {
		return &logic.NotFoundError{Entity: "match", ID: matchID}
	}
	return nil
}

// nullable dereferences optional columns so every driver sees a plain value or NULL.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
