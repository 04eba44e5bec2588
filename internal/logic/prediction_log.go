package logic

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/betanalytics/analytics-api/internal/models"
)

const maxHistoryRows = 500

type predictionHistoryService struct {
	ch driver.Conn
}

func NewPredictionHistoryService(ch driver.Conn) PredictionHistoryService {
	return &predictionHistoryService{ch: ch}
}

// History returns the logged predictions for a match, newest first.
func (s *predictionHistoryService) History(ctx context.Context, matchID int64, limit int) (*models.PredictionHistory, error) {
	if limit <= 0 || limit > maxHistoryRows {
		limit = maxHistoryRows
	}

	query := `
		SELECT
			run_id,
			match_id,
			home_team_id,
			away_team_id,
			league_name,
			computed_at,
			lambda_home,
			lambda_away,
			home_win_probability,
			draw_probability,
			away_win_probability,
			btts_probability,
			data_sufficient
		FROM prediction_log
		WHERE match_id = ?
		ORDER BY computed_at DESC
		LIMIT ?
	`
	rows, err := s.ch.Query(ctx, query, matchID, limit)
	if err != nil {
		return nil, fmt.Errorf("query prediction log: %w", err)
	}
	defer rows.Close()

	history := &models.PredictionHistory{MatchID: matchID, Snapshots: []models.PredictionSnapshot{}}
	for rows.Next() {
		var snap models.PredictionSnapshot
		var sufficient uint8
		if err := rows.Scan(
			&snap.RunID, &snap.MatchID, &snap.HomeTeamID, &snap.AwayTeamID, &snap.League, &snap.ComputedAt,
			&snap.LambdaHome, &snap.LambdaAway,
			&snap.HomeWinProbability, &snap.DrawProbability, &snap.AwayWinProbability, &snap.BTTSProbability,
			&sufficient,
		); err != nil {
			return nil, fmt.Errorf("scan prediction log: %w", err)
		}
		snap.DataSufficient = sufficient == 1
		history.Snapshots = append(history.Snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if n := len(history.Snapshots); n >= 2 {
		history.HomeWinDrift = history.Snapshots[0].HomeWinProbability - history.Snapshots[n-1].HomeWinProbability
	}
	return history, nil
}
