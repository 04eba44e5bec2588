package logic

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/betanalytics/analytics-api/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// recomputeConcurrency bounds parallel team rebuilds in RecomputeAll.
const recomputeConcurrency = 4

// ComputeTeamAggregate rebuilds the counters of team from scratch using only
// the finished matches it took part in. Other matches are ignored, so the
// result is idempotent for a fixed match set.
func ComputeTeamAggregate(team models.Team, matches []models.Match) models.Team {
	agg := team
	agg.TeamRecord = models.TeamRecord{}

	for i := range matches {
		m := &matches[i]
		if !m.IsFinished() || !m.Involves(team.ID) {
			continue
		}

		h, a := m.Score()
		home := m.HomeTeamID == team.ID
		goalsFor, goalsAgainst := h, a
		if !home {
			goalsFor, goalsAgainst = a, h
		}

		agg.GamesPlayed++
		agg.GoalsFor += goalsFor
		agg.GoalsAgainst += goalsAgainst

		winner := m.Winner
		if winner == "" {
			winner = models.OutcomeFor(h, a)
		}

		switch resultFor(winner, home) {
		case "W":
			agg.Wins++
			if home {
				agg.HomeWins++
			} else {
				agg.AwayWins++
			}
		case "D":
			agg.Draws++
			if home {
				agg.HomeDraws++
			} else {
				agg.AwayDraws++
			}
		default:
			agg.Losses++
			if home {
				agg.HomeLosses++
			} else {
				agg.AwayLosses++
			}
		}
	}

	agg.Derive()
	return agg
}

// resultFor maps a fixture outcome to W/D/L from one side's perspective.
func resultFor(winner models.Outcome, home bool) string {
	switch {
	case winner == models.OutcomeDraw:
		return "D"
	case (winner == models.OutcomeHome) == home:
		return "W"
	default:
		return "L"
	}
}

// RecomputeSummary reports the outcome of a full rebuild.
type RecomputeSummary struct {
	Teams   int `json:"teams"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

type statisticsService struct {
	repo   Repository
	logger *zap.SugaredLogger
}

func NewStatisticsService(repo Repository, logger *zap.SugaredLogger) StatisticsService {
	return &statisticsService{repo: repo, logger: logger}
}

// Recompute rebuilds one team's aggregate and publishes it atomically.
func (s *statisticsService) Recompute(ctx context.Context, teamID int64) (*models.Team, error) {
	start := time.Now()

	team, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	matches, err := s.repo.GetMatches(ctx, models.MatchFilter{
		TeamID: teamID,
		Status: models.StatusFinished,
		Order:  models.SortAsc,
	})
	if err != nil {
		recomputeFailures.Inc()
		return nil, fmt.Errorf("load matches for team %d: %w", teamID, err)
	}

	agg := ComputeTeamAggregate(*team, matches)
	if err := s.repo.SaveTeamAggregate(ctx, &agg); err != nil {
		recomputeFailures.Inc()
		return nil, fmt.Errorf("save aggregate for team %d: %w", teamID, err)
	}

	recomputeDuration.Observe(time.Since(start).Seconds())
	s.logger.Debugw("Team aggregate recomputed",
		"team_id", teamID,
		"games_played", agg.GamesPlayed,
		"win_percentage", agg.WinPercentage,
	)
	return &agg, nil
}

// RecomputeAll rebuilds every active team. A failure on one team is logged
// and counted; it does not stop the others.
func (s *statisticsService) RecomputeAll(ctx context.Context) (RecomputeSummary, error) {
	teams, err := s.repo.ListTeams(ctx, models.TeamFilter{ActiveOnly: true})
	if err != nil {
		return RecomputeSummary{}, fmt.Errorf("list teams: %w", err)
	}

	var updated, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(recomputeConcurrency)

	for _, team := range teams {
		teamID := team.ID
		g.Go(func() error {
			if _, err := s.Recompute(gctx, teamID); err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				failed.Add(1)
				s.logger.Errorw("Failed to recompute team", "team_id", teamID, "error", err)
				return nil
			}
			updated.Add(1)
			return nil
		})
	}

	err = g.Wait()
	summary := RecomputeSummary{
		Teams:   len(teams),
		Updated: int(updated.Load()),
		Failed:  int(failed.Load()),
	}
	if err != nil {
		return summary, err
	}

	s.logger.Infow("Team statistics recomputed", "teams", summary.Teams, "updated", summary.Updated, "failed", summary.Failed)
	return summary, nil
}
