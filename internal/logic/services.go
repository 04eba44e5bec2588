package logic

import (
	"context"

	"github.com/betanalytics/analytics-api/internal/models"
)

// StatisticsService maintains the per-team aggregates.
type StatisticsService interface {
	Recompute(ctx context.Context, teamID int64) (*models.Team, error)
	RecomputeAll(ctx context.Context) (RecomputeSummary, error)
}

// FormService builds recent-form views.
type FormService interface {
	RecentForm(ctx context.Context, teamID int64, window int) (*models.TeamFormResult, error)
}

// TrendService detects league trends over finished matches.
type TrendService interface {
	Detect(ctx context.Context, filter models.TrendFilter) ([]models.TrendResult, error)
	Invalidate(ctx context.Context) error
}

// AnalysisService is the orchestration facade consumed by the HTTP layer and the scheduler.
type AnalysisService interface {
	AnalyzeMatch(ctx context.Context, matchID int64) (*models.AnalysisResult, error)
	AnnotateMatch(ctx context.Context, matchID int64) (*models.MatchAnnotation, error)
	TeamForm(ctx context.Context, teamID int64, window int) (*models.TeamFormResult, error)
	Trends(ctx context.Context, filter models.TrendFilter) ([]models.TrendResult, error)
}

// PredictionHistoryService reads back the prediction log.
type PredictionHistoryService interface {
	History(ctx context.Context, matchID int64, limit int) (*models.PredictionHistory, error)
}
