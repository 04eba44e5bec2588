package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/betanalytics/analytics-api/internal/logic"
	"github.com/betanalytics/analytics-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, db, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "analytics.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return s
}

func createTeam(t *testing.T, s *Store, name string) *models.Team {
	t.Helper()
	team := &models.Team{Name: name, League: "Premier League", Country: "England"}
	require.NoError(t, s.CreateTeam(context.Background(), team))
	require.NotZero(t, team.ID)
	return team
}

func TestStore_TeamLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	arsenal := createTeam(t, s, "Arsenal")
	createTeam(t, s, "Chelsea")

	got, err := s.GetTeam(ctx, arsenal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arsenal", got.Name)
	assert.True(t, got.IsActive)
	assert.Zero(t, got.GamesPlayed)

	got.Country = "ENG"
	require.NoError(t, s.UpdateTeamProfile(ctx, got))

	teams, err := s.ListTeams(ctx, models.TeamFilter{Country: "eng", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, teams, 2)

	require.NoError(t, s.DeactivateTeam(ctx, arsenal.ID))
	active, err := s.ListTeams(ctx, models.TeamFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Chelsea", active[0].Name)

	_, err = s.GetTeam(ctx, 999)
	assert.ErrorIs(t, err, logic.ErrNotFound)
	assert.ErrorIs(t, s.DeactivateTeam(ctx, 999), logic.ErrNotFound)
}

func TestStore_MatchesAndFilters(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	home := createTeam(t, s, "Arsenal")
	away := createTeam(t, s, "Chelsea")

	day := time.Date(2024, 3, 2, 15, 0, 0, 0, time.UTC)
	played := &models.Match{HomeTeamID: home.ID, AwayTeamID: away.ID, League: "Premier League", MatchDate: day}
	played.ApplyResult(2, 1)
	require.NoError(t, s.CreateMatch(ctx, played))

	odds := 2.1
	upcoming := &models.Match{
		HomeTeamID: away.ID, AwayTeamID: home.ID, League: "Premier League",
		MatchDate: day.AddDate(0, 0, 14), Status: models.StatusScheduled,
		MatchOdds: models.MatchOdds{HomeOdds: &odds},
	}
	require.NoError(t, s.CreateMatch(ctx, upcoming))

	got, err := s.GetMatch(ctx, played.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arsenal", got.HomeTeamName)
	assert.Equal(t, "Chelsea", got.AwayTeamName)
	require.NotNil(t, got.HomeGoals)
	assert.Equal(t, 2, *got.HomeGoals)
	assert.Equal(t, models.OutcomeHome, got.Winner)
	assert.True(t, got.BothTeamsScored)
	assert.True(t, got.MatchDate.Equal(day))
	assert.NoError(t, got.Validate())

	next, err := s.GetMatch(ctx, upcoming.ID)
	require.NoError(t, err)
	assert.Nil(t, next.HomeGoals)
	require.NotNil(t, next.HomeOdds)
	assert.Equal(t, 2.1, *next.HomeOdds)

	all, err := s.GetMatches(ctx, models.MatchFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, upcoming.ID, all[0].ID, "newest first")

	finished, err := s.GetMatches(ctx, models.MatchFilter{TeamID: home.ID, Status: models.StatusFinished})
	require.NoError(t, err)
	require.Len(t, finished, 1)

	window, err := s.GetMatches(ctx, models.MatchFilter{DateFrom: day.Add(time.Hour), DateTo: day.AddDate(0, 1, 0)})
	require.NoError(t, err)
	require.Len(t, window, 1)
	assert.Equal(t, upcoming.ID, window[0].ID)

	none, err := s.GetMatches(ctx, models.MatchFilter{League: "serie"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_CreateMatchRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	home := createTeam(t, s, "Arsenal")

	err := s.CreateMatch(ctx, &models.Match{HomeTeamID: home.ID, AwayTeamID: 404, MatchDate: time.Now(), Status: models.StatusScheduled})
	assert.ErrorIs(t, err, logic.ErrNotFound)

	bad := &models.Match{HomeTeamID: home.ID, AwayTeamID: home.ID + 1, MatchDate: time.Now()}
	bad.ApplyResult(1, 0)
	bad.TotalGoals = 5
	assert.True(t, errors.Is(s.CreateMatch(ctx, bad), models.ErrInconsistentResult))
}

func TestStore_UpdateAndAnnotate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	home := createTeam(t, s, "Arsenal")
	away := createTeam(t, s, "Chelsea")

	m := &models.Match{HomeTeamID: home.ID, AwayTeamID: away.ID, MatchDate: time.Now(), Status: models.StatusScheduled}
	require.NoError(t, s.CreateMatch(ctx, m))

	m.ApplyResult(0, 0)
	require.NoError(t, s.UpdateMatch(ctx, m))

	require.NoError(t, s.SaveMatchAnnotation(ctx, m.ID, models.MatchAnnotation{
		PredictionConfidence: 0.42,
		PredictedResult:      models.OutcomeDraw,
		AnalysisNotes:        "tight",
	}))

	got, err := s.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeDraw, got.Winner)
	require.NotNil(t, got.PredictionConfidence)
	assert.Equal(t, 0.42, *got.PredictionConfidence)
	assert.Equal(t, "draw", got.PredictedResult)
	assert.NotNil(t, got.UpdatedAt)

	assert.ErrorIs(t, s.SaveMatchAnnotation(ctx, 777, models.MatchAnnotation{}), logic.ErrNotFound)
}

// Statistics recompute end to end against a real database.
func TestStore_RecomputeRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	home := createTeam(t, s, "Arsenal")
	away := createTeam(t, s, "Chelsea")

	for i, score := range [][2]int{{2, 0}, {1, 1}, {0, 3}} {
		m := &models.Match{HomeTeamID: home.ID, AwayTeamID: away.ID, MatchDate: time.Now().AddDate(0, 0, -i)}
		m.ApplyResult(score[0], score[1])
		require.NoError(t, s.CreateMatch(ctx, m))
	}

	svc := logic.NewStatisticsService(s, zap.NewNop().Sugar())
	summary, err := svc.RecomputeAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Updated)

	got, err := s.GetTeam(ctx, home.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.GamesPlayed)
	assert.Equal(t, 1, got.Wins)
	assert.Equal(t, 1, got.Draws)
	assert.Equal(t, 1, got.Losses)
	assert.Equal(t, 1, got.HomeWins)
	assert.InDelta(t, 1.0, got.AvgGoalsScored, 1e-9)
	assert.InDelta(t, 4.0/3, got.AvgGoalsConceded, 1e-9)
}

func TestStore_RecentFormBeyondPageSize(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	home := createTeam(t, s, "Arsenal")
	away := createTeam(t, s, "Chelsea")

	start := time.Date(2020, 1, 4, 15, 0, 0, 0, time.UTC)
	for i := 0; i < 150; i++ {
		m := &models.Match{HomeTeamID: home.ID, AwayTeamID: away.ID, League: "Premier League", MatchDate: start.AddDate(0, 0, 7*i)}
		m.ApplyResult(i%3, 1)
		require.NoError(t, s.CreateMatch(ctx, m))
	}

	form := logic.NewFormService(s)
	for _, window := range []int{100, 1000, 1001, 5000} {
		result, err := form.RecentForm(ctx, home.ID, window)
		require.NoError(t, err)
		assert.Len(t, result.RecentForm, min(window, 150), "window %d", window)
	}

	capped, err := s.GetMatches(ctx, models.MatchFilter{TeamID: home.ID, Limit: 5000})
	require.NoError(t, err)
	assert.Len(t, capped, 150)
}
