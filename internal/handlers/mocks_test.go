package handlers

import (
	"context"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/betanalytics/analytics-api/internal/logic"
	"github.com/betanalytics/analytics-api/internal/models"
)

// MockStore
type MockStore struct {
	GetTeamFunc           func(ctx context.Context, id int64) (*models.Team, error)
	ListTeamsFunc         func(ctx context.Context, filter models.TeamFilter) ([]models.Team, error)
	GetMatchFunc          func(ctx context.Context, id int64) (*models.Match, error)
	GetMatchesFunc        func(ctx context.Context, filter models.MatchFilter) ([]models.Match, error)
	CreateTeamFunc        func(ctx context.Context, team *models.Team) error
	UpdateTeamProfileFunc func(ctx context.Context, team *models.Team) error
	DeactivateTeamFunc    func(ctx context.Context, id int64) error
	CreateMatchFunc       func(ctx context.Context, match *models.Match) error
	UpdateMatchFunc       func(ctx context.Context, match *models.Match) error
	PingFunc              func(ctx context.Context) error
}

func (m *MockStore) GetTeam(ctx context.Context, id int64) (*models.Team, error) {
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(ctx, id)
	}
	return nil, &logic.NotFoundError{Entity: "team", ID: id}
}

func (m *MockStore) ListTeams(ctx context.Context, filter models.TeamFilter) ([]models.Team, error) {
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(ctx, filter)
	}
	return []models.Team{}, nil
}

func (m *MockStore) GetMatch(ctx context.Context, id int64) (*models.Match, error) {
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(ctx, id)
	}
	return nil, &logic.NotFoundError{Entity: "match", ID: id}
}

func (m *MockStore) GetMatches(ctx context.Context, filter models.MatchFilter) ([]models.Match, error) {
	if m.GetMatchesFunc != nil {
		return m.GetMatchesFunc(ctx, filter)
	}
	return []models.Match{}, nil
}

func (m *MockStore) SaveTeamAggregate(ctx context.Context, team *models.Team) error { return nil }

func (m *MockStore) SaveMatchAnnotation(ctx context.Context, matchID int64, a models.MatchAnnotation) error {
	return nil
}

func (m *MockStore) CreateTeam(ctx context.Context, team *models.Team) error {
	if m.CreateTeamFunc != nil {
		return m.CreateTeamFunc(ctx, team)
	}
	team.ID = 1
	team.IsActive = true
	return nil
}

func (m *MockStore) UpdateTeamProfile(ctx context.Context, team *models.Team) error {
	if m.UpdateTeamProfileFunc != nil {
		return m.UpdateTeamProfileFunc(ctx, team)
	}
	return nil
}

func (m *MockStore) DeactivateTeam(ctx context.Context, id int64) error {
	if m.DeactivateTeamFunc != nil {
		return m.DeactivateTeamFunc(ctx, id)
	}
	return nil
}

func (m *MockStore) CreateMatch(ctx context.Context, match *models.Match) error {
	if m.CreateMatchFunc != nil {
		return m.CreateMatchFunc(ctx, match)
	}
	match.ID = 1
	return nil
}

func (m *MockStore) UpdateMatch(ctx context.Context, match *models.Match) error {
	if m.UpdateMatchFunc != nil {
		return m.UpdateMatchFunc(ctx, match)
	}
	return nil
}

func (m *MockStore) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// MockStatisticsService
type MockStatisticsService struct {
	RecomputeFunc    func(ctx context.Context, teamID int64) (*models.Team, error)
	RecomputeAllFunc func(ctx context.Context) (logic.RecomputeSummary, error)
}

func (m *MockStatisticsService) Recompute(ctx context.Context, teamID int64) (*models.Team, error) {
	if m.RecomputeFunc != nil {
		return m.RecomputeFunc(ctx, teamID)
	}
	return &models.Team{ID: teamID}, nil
}

func (m *MockStatisticsService) RecomputeAll(ctx context.Context) (logic.RecomputeSummary, error) {
	if m.RecomputeAllFunc != nil {
		return m.RecomputeAllFunc(ctx)
	}
	return logic.RecomputeSummary{}, nil
}

// MockTrendService
type MockTrendService struct {
	DetectFunc      func(ctx context.Context, filter models.TrendFilter) ([]models.TrendResult, error)
	InvalidateCalls int
}

func (m *MockTrendService) Detect(ctx context.Context, filter models.TrendFilter) ([]models.TrendResult, error) {
	if m.DetectFunc != nil {
		return m.DetectFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockTrendService) Invalidate(ctx context.Context) error {
	m.InvalidateCalls++
	return nil
}

// MockAnalysisService
type MockAnalysisService struct {
	AnalyzeMatchFunc  func(ctx context.Context, matchID int64) (*models.AnalysisResult, error)
	AnnotateMatchFunc func(ctx context.Context, matchID int64) (*models.MatchAnnotation, error)
	TeamFormFunc      func(ctx context.Context, teamID int64, window int) (*models.TeamFormResult, error)
	TrendsFunc        func(ctx context.Context, filter models.TrendFilter) ([]models.TrendResult, error)
}

func (m *MockAnalysisService) AnalyzeMatch(ctx context.Context, matchID int64) (*models.AnalysisResult, error) {
	if m.AnalyzeMatchFunc != nil {
		return m.AnalyzeMatchFunc(ctx, matchID)
	}
	return &models.AnalysisResult{MatchID: matchID}, nil
}

func (m *MockAnalysisService) AnnotateMatch(ctx context.Context, matchID int64) (*models.MatchAnnotation, error) {
	if m.AnnotateMatchFunc != nil {
		return m.AnnotateMatchFunc(ctx, matchID)
	}
	return &models.MatchAnnotation{}, nil
}

func (m *MockAnalysisService) TeamForm(ctx context.Context, teamID int64, window int) (*models.TeamFormResult, error) {
	if m.TeamFormFunc != nil {
		return m.TeamFormFunc(ctx, teamID, window)
	}
	return &models.TeamFormResult{TeamID: teamID}, nil
}

func (m *MockAnalysisService) Trends(ctx context.Context, filter models.TrendFilter) ([]models.TrendResult, error) {
	if m.TrendsFunc != nil {
		return m.TrendsFunc(ctx, filter)
	}
	return []models.TrendResult{}, nil
}

// MockPgPool records schema executions.
type MockPgPool struct {
	ExecFunc func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (m *MockPgPool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (m *MockPgPool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (m *MockPgPool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if m.ExecFunc != nil {
		return m.ExecFunc(ctx, sql, args...)
	}
	return pgconn.CommandTag{}, nil
}
func (m *MockPgPool) Ping(ctx context.Context) error { return nil }

type MockClickHouseConn struct {
	driver.Conn
	ExecFunc func(ctx context.Context, query string, args ...interface{}) error
}

func (m *MockClickHouseConn) Exec(ctx context.Context, query string, args ...interface{}) error {
	if m.ExecFunc != nil {
		return m.ExecFunc(ctx, query, args...)
	}
	return nil
}

type MockQueue struct{ depth int }

func (m *MockQueue) QueueDepth() int { return m.depth }

// MockHistoryService
type MockHistoryService struct {
	HistoryFunc func(ctx context.Context, matchID int64, limit int) (*models.PredictionHistory, error)
}

func (m *MockHistoryService) History(ctx context.Context, matchID int64, limit int) (*models.PredictionHistory, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, matchID, limit)
	}
	return &models.PredictionHistory{MatchID: matchID}, nil
}
