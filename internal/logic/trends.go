package logic

import (
	"context"
	"fmt"
	"math"

	"github.com/betanalytics/analytics-api/internal/models"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/distuv"
)

// TrendPredicate decides whether a finished match satisfies a trend.
type TrendPredicate func(m *models.Match) bool

// TrendDefinition is one registered trend type.
type TrendDefinition struct {
	Type        string
	Description string
	Predicate   TrendPredicate
}

// TrendRegistry is an ordered, immutable set of trend definitions.
type TrendRegistry struct {
	defs  []TrendDefinition
	index map[string]int
}

// NewTrendRegistry builds a registry, rejecting empty or duplicate types.
func NewTrendRegistry(defs ...TrendDefinition) (*TrendRegistry, error) {
	r := &TrendRegistry{index: make(map[string]int, len(defs))}
	for _, d := range defs {
		if d.Type == "" || d.Predicate == nil {
			return nil, fmt.Errorf("trend definition %q is incomplete", d.Type)
		}
		if _, dup := r.index[d.Type]; dup {
			return nil, fmt.Errorf("duplicate trend type %q", d.Type)
		}
		r.index[d.Type] = len(r.defs)
		r.defs = append(r.defs, d)
	}
	return r, nil
}

func totalOver(line int) TrendPredicate {
	return func(m *models.Match) bool { return m.TotalGoals > line }
}

func winnerIs(o models.Outcome) TrendPredicate {
	return func(m *models.Match) bool { return m.Winner == o }
}

// DefaultTrendRegistry returns the built-in trends.
func DefaultTrendRegistry() *TrendRegistry {
	r, err := NewTrendRegistry(
		TrendDefinition{"over_1_5", "Over 1.5 goals", totalOver(1)},
		TrendDefinition{"over_2_5", "Over 2.5 goals", totalOver(2)},
		TrendDefinition{"under_2_5", "Under 2.5 goals", func(m *models.Match) bool { return m.TotalGoals < 3 }},
		TrendDefinition{"over_3_5", "Over 3.5 goals", totalOver(3)},
		TrendDefinition{"btts", "Both teams to score", func(m *models.Match) bool { return m.BothTeamsScored }},
		TrendDefinition{"btts_no", "At least one team fails to score", func(m *models.Match) bool { return !m.BothTeamsScored }},
		TrendDefinition{"home_win", "Home win", winnerIs(models.OutcomeHome)},
		TrendDefinition{"draw", "Draw", winnerIs(models.OutcomeDraw)},
		TrendDefinition{"away_win", "Away win", winnerIs(models.OutcomeAway)},
		TrendDefinition{"clean_sheet", "At least one clean sheet", func(m *models.Match) bool {
			h, a := m.Score()
			return h == 0 || a == 0
		}},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Definitions returns the registered trends in registration order.
func (r *TrendRegistry) Definitions() []TrendDefinition {
	out := make([]TrendDefinition, len(r.defs))
	copy(out, r.defs)
	return out
}

func (r *TrendRegistry) Lookup(trendType string) (TrendDefinition, bool) {
	i, ok := r.index[trendType]
	if !ok {
		return TrendDefinition{}, false
	}
	return r.defs[i], true
}

// Select returns the definition for trendType, or all of them when it is empty.
func (r *TrendRegistry) Select(trendType string) ([]TrendDefinition, error) {
	if trendType == "" {
		return r.Definitions(), nil
	}
	d, ok := r.Lookup(trendType)
	if !ok {
		return nil, &NotFoundError{Entity: "trend type", ID: trendType}
	}
	return []TrendDefinition{d}, nil
}

// ZForConfidence returns the two-sided normal quantile for a confidence level
// in (0, 1), e.g. 1.96 for 0.95.
func ZForConfidence(level float64) float64 {
	return distuv.UnitNormal.Quantile(1 - (1-level)/2)
}

// WilsonLowerBound is the lower bound of the Wilson score interval for
// successes out of n trials. It is 0 when n is 0.
func WilsonLowerBound(successes, n int, z float64) float64 {
	if n <= 0 {
		return 0
	}
	nf := float64(n)
	p := float64(successes) / nf
	z2 := z * z

	centre := p + z2/(2*nf)
	margin := z * math.Sqrt(p*(1-p)/nf+z2/(4*nf*nf))
	lb := (centre - margin) / (1 + z2/nf)
	return math.Max(0, math.Min(1, lb))
}

// DetectTrends evaluates defs over the finished matches in one pass.
// Cancellation is checked between matches and returns ctx.Err().
func DetectTrends(ctx context.Context, matches []models.Match, defs []TrendDefinition, league string, z float64) ([]models.TrendResult, error) {
	hits := make([]int, len(defs))
	n := 0

	for i := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m := &matches[i]
		if !m.IsFinished() || !models.LeagueMatches(m.League, league) {
			continue
		}
		n++
		for j, d := range defs {
			if d.Predicate(m) {
				hits[j]++
			}
		}
	}

	results := make([]models.TrendResult, 0, len(defs))
	for j, d := range defs {
		r := models.TrendResult{
			Type:         d.Type,
			Description:  d.Description,
			MatchesCount: n,
		}
		if n > 0 {
			r.SuccessRate = float64(hits[j]) / float64(n)
			r.Confidence = WilsonLowerBound(hits[j], n, z)
		}
		results = append(results, r)
	}
	return results, nil
}

type trendService struct {
	repo     Repository
	registry *TrendRegistry
	cache    TrendCache
	z        float64
	logger   *zap.SugaredLogger
}

// NewTrendService wires trend detection. cache may be nil.
func NewTrendService(repo Repository, registry *TrendRegistry, cache TrendCache, confidenceLevel float64, logger *zap.SugaredLogger) TrendService {
	return &trendService{
		repo:     repo,
		registry: registry,
		cache:    cache,
		z:        ZForConfidence(confidenceLevel),
		logger:   logger,
	}
}

func (s *trendService) Detect(ctx context.Context, filter models.TrendFilter) ([]models.TrendResult, error) {
	defs, err := s.registry.Select(filter.Type)
	if err != nil {
		return nil, err
	}

	cacheable := false
	var version int64
	if s.cache != nil {
		cached, v, ok, err := s.cache.Get(ctx, filter)
		switch {
		case err != nil:
			trendCacheLookups.WithLabelValues("error").Inc()
			s.logger.Warnw("Trend cache read failed", "league", filter.League, "error", err)
		case ok:
			trendCacheLookups.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			trendCacheLookups.WithLabelValues("miss").Inc()
			cacheable, version = true, v
		}
	}

	matches, err := s.repo.GetMatches(ctx, models.MatchFilter{
		Status: models.StatusFinished,
		League: filter.League,
	})
	if err != nil {
		return nil, fmt.Errorf("load finished matches: %w", err)
	}

	results, err := DetectTrends(ctx, matches, defs, filter.League, s.z)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := s.cache.Set(ctx, version, filter, results); err != nil {
			s.logger.Warnw("Trend cache write failed", "league", filter.League, "error", err)
		}
	}
	return results, nil
}

func (s *trendService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(ctx)
}
