package logic

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/betanalytics/analytics-api/internal/models"
)

// MockRepository is an in-memory Repository. The Func fields override the
// default behaviour when set.
type MockRepository struct {
	mu      sync.Mutex
	teams   map[int64]*models.Team
	matches []models.Match

	annotations map[int64]models.MatchAnnotation
	saves       int
	matchQuery  int

	GetMatchesFunc func(ctx context.Context, filter models.MatchFilter) ([]models.Match, error)
	SaveTeamFunc   func(ctx context.Context, team *models.Team) error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		teams:       make(map[int64]*models.Team),
		annotations: make(map[int64]models.MatchAnnotation),
	}
}

func (m *MockRepository) AddTeam(t models.Team) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.IsActive = true
	m.teams[t.ID] = &t
}

func (m *MockRepository) AddMatch(match models.Match) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.teams[match.HomeTeamID]; ok {
		match.HomeTeamName = t.Name
	}
	if t, ok := m.teams[match.AwayTeamID]; ok {
		match.AwayTeamName = t.Name
	}
	m.matches = append(m.matches, match)
}

func (m *MockRepository) GetTeam(ctx context.Context, id int64) (*models.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.teams[id]
	if !ok {
		return nil, &NotFoundError{Entity: "team", ID: id}
	}
	cp := *t
	return &cp, nil
}

func (m *MockRepository) ListTeams(ctx context.Context, filter models.TeamFilter) ([]models.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Team, 0, len(m.teams))
	for _, t := range m.teams {
		if filter.ActiveOnly && !t.IsActive {
			continue
		}
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockRepository) GetMatch(ctx context.Context, id int64) (*models.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.matches {
		if m.matches[i].ID == id {
			cp := m.matches[i]
			return &cp, nil
		}
	}
	return nil, &NotFoundError{Entity: "match", ID: id}
}

func (m *MockRepository) GetMatches(ctx context.Context, filter models.MatchFilter) ([]models.Match, error) {
	m.mu.Lock()
	m.matchQuery++
	m.mu.Unlock()
	if m.GetMatchesFunc != nil {
		return m.GetMatchesFunc(ctx, filter)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Match
	for _, match := range m.matches {
		if filter.TeamID != 0 && !match.Involves(filter.TeamID) {
			continue
		}
		if filter.Status != "" && match.Status != filter.Status {
			continue
		}
		if !models.LeagueMatches(match.League, filter.League) {
			continue
		}
		out = append(out, match)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if filter.Order == models.SortAsc {
			return out[i].MatchDate.Before(out[j].MatchDate)
		}
		return out[i].MatchDate.After(out[j].MatchDate)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m *MockRepository) SaveTeamAggregate(ctx context.Context, team *models.Team) error {
	if m.SaveTeamFunc != nil {
		if err := m.SaveTeamFunc(ctx, team); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.teams[team.ID]; !ok {
		return &NotFoundError{Entity: "team", ID: team.ID}
	}
	cp := *team
	m.teams[team.ID] = &cp
	m.saves++
	return nil
}

func (m *MockRepository) SaveMatchAnnotation(ctx context.Context, matchID int64, a models.MatchAnnotation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.matches {
		if m.matches[i].ID == matchID {
			m.annotations[matchID] = a
			return nil
		}
	}
	return &NotFoundError{Entity: "match", ID: matchID}
}

type trendCacheKey struct {
	version int64
	filter  models.TrendFilter
}

// MockTrendCache is a map-backed, versioned TrendCache.
type MockTrendCache struct {
	mu      sync.Mutex
	version int64
	entries map[trendCacheKey][]models.TrendResult
	GetErr  error
}

func NewMockTrendCache() *MockTrendCache {
	return &MockTrendCache{entries: make(map[trendCacheKey][]models.TrendResult)}
}

func (c *MockTrendCache) Get(ctx context.Context, filter models.TrendFilter) ([]models.TrendResult, int64, bool, error) {
	if c.GetErr != nil {
		return nil, 0, false, c.GetErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.entries[trendCacheKey{c.version, filter}]
	return r, c.version, ok, nil
}

func (c *MockTrendCache) Set(ctx context.Context, version int64, filter models.TrendFilter, results []models.TrendResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[trendCacheKey{version, filter}] = results
	return nil
}

func (c *MockTrendCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version++
	return nil
}

// MockSink records snapshots.
type MockSink struct {
	mu        sync.Mutex
	snapshots []*models.PredictionSnapshot
}

func (s *MockSink) Enqueue(snap *models.PredictionSnapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots = append(s.snapshots, snap)
	return true
}

var baseDate = time.Date(2024, 1, 6, 15, 0, 0, 0, time.UTC)

// finished builds a finished match played daysAfter baseDate.
func finished(id, home, away int64, homeGoals, awayGoals, daysAfter int) models.Match {
	m := models.Match{
		ID:         id,
		HomeTeamID: home,
		AwayTeamID: away,
		League:     "Premier League",
		MatchDate:  baseDate.AddDate(0, 0, daysAfter),
	}
	m.ApplyResult(homeGoals, awayGoals)
	return m
}

func scheduled(id, home, away int64, daysAfter int) models.Match {
	return models.Match{
		ID:         id,
		HomeTeamID: home,
		AwayTeamID: away,
		League:     "Premier League",
		MatchDate:  baseDate.AddDate(0, 0, daysAfter),
		Status:     models.StatusScheduled,
	}
}
