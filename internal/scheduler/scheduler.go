// Package scheduler runs the periodic analytics jobs: rebuilding every team
// aggregate and annotating the next scheduled matches with predictions.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/betanalytics/analytics-api/internal/logic"
	"github.com/betanalytics/analytics-api/internal/models"
	"go.uber.org/zap"
)

type Config struct {
	RecomputeInterval time.Duration
	AnnotateInterval  time.Duration
	AnnotateLimit     int
}

type Deps struct {
	Repo     logic.Repository
	Stats    logic.StatisticsService
	Trends   logic.TrendService
	Analysis logic.AnalysisService
	Logger   *zap.SugaredLogger
}

// Scheduler owns two ticker loops. Each loop runs its job once at start and
// never overlaps with itself.
type Scheduler struct {
	cfg  Config
	deps Deps
	now  func() time.Time
}

func New(cfg Config, deps Deps) *Scheduler {
	return &Scheduler{cfg: cfg, deps: deps, now: time.Now}
}

// Run blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.loop(ctx, "recompute", s.cfg.RecomputeInterval, func(ctx context.Context) error {
			_, err := s.RecomputeOnce(ctx)
			return err
		})
	}()
	go func() {
		defer wg.Done()
		s.loop(ctx, "annotate", s.cfg.AnnotateInterval, func(ctx context.Context) error {
			_, err := s.AnnotateUpcomingOnce(ctx)
			return err
		})
	}()
	wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, name string, interval time.Duration, job func(context.Context) error) {
	if interval <= 0 {
		s.deps.Logger.Infow("Scheduled job disabled", "job", name)
		return
	}
	s.deps.Logger.Infow("Starting scheduled job", "job", name, "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	run := func() {
		start := time.Now()
		if err := job(ctx); err != nil && ctx.Err() == nil {
			s.deps.Logger.Errorw("Scheduled job failed", "job", name, "error", err)
			return
		}
		s.deps.Logger.Debugw("Scheduled job finished", "job", name, "duration", time.Since(start))
	}

	run()
	for {
		select {
		case <-ctx.Done():
			s.deps.Logger.Infow("Stopping scheduled job", "job", name)
			return
		case <-ticker.C:
			run()
		}
	}
}

// RecomputeOnce rebuilds every active team and drops cached trends.
func (s *Scheduler) RecomputeOnce(ctx context.Context) (logic.RecomputeSummary, error) {
	summary, err := s.deps.Stats.RecomputeAll(ctx)
	if err != nil {
		return summary, err
	}
	if err := s.deps.Trends.Invalidate(ctx); err != nil {
		s.deps.Logger.Warnw("Failed to invalidate trend cache", "error", err)
	}
	return summary, nil
}

// AnnotateUpcomingOnce annotates the next AnnotateLimit scheduled matches.
// A failing match is logged and skipped. It returns how many were annotated.
func (s *Scheduler) AnnotateUpcomingOnce(ctx context.Context) (int, error) {
	if s.cfg.AnnotateLimit <= 0 {
		return 0, nil
	}

	upcoming, err := s.deps.Repo.GetMatches(ctx, models.MatchFilter{
		Status:   models.StatusScheduled,
		DateFrom: s.now(),
		Order:    models.SortAsc,
		Limit:    s.cfg.AnnotateLimit,
	})
	if err != nil {
		return 0, fmt.Errorf("load upcoming matches: %w", err)
	}

	annotated := 0
	for _, m := range upcoming {
		if ctx.Err() != nil {
			return annotated, ctx.Err()
		}
		if _, err := s.deps.Analysis.AnnotateMatch(ctx, m.ID); err != nil {
			s.deps.Logger.Warnw("Failed to annotate match", "match_id", m.ID, "error", err)
			continue
		}
		annotated++
	}

	s.deps.Logger.Infow("Upcoming matches annotated", "candidates", len(upcoming), "annotated", annotated)
	return annotated, nil
}
