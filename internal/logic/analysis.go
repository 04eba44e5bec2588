package logic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/betanalytics/analytics-api/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type analysisService struct {
	repo      Repository
	predictor *Predictor
	trends    TrendService
	form      FormService
	sink      SnapshotSink
	logger    *zap.SugaredLogger
}

// AnalysisDeps groups the collaborators of the analysis facade.
type AnalysisDeps struct {
	Repo      Repository
	Predictor *Predictor
	Trends    TrendService
	Form      FormService
	Sink      SnapshotSink // optional
	Logger    *zap.SugaredLogger
}

func NewAnalysisService(deps AnalysisDeps) AnalysisService {
	return &analysisService{
		repo:      deps.Repo,
		predictor: deps.Predictor,
		trends:    deps.Trends,
		form:      deps.Form,
		sink:      deps.Sink,
		logger:    deps.Logger,
	}
}

// AnalyzeMatch combines both team summaries, the Poisson prediction, the
// league trends and, when priced, the market comparison.
func (s *analysisService) AnalyzeMatch(ctx context.Context, matchID int64) (*models.AnalysisResult, error) {
	match, err := s.repo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	var home, away *models.Team
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.repo.GetTeam(gctx, match.HomeTeamID)
		if err != nil {
			return fmt.Errorf("home team: %w", err)
		}
		home = t
		return nil
	})
	g.Go(func() error {
		t, err := s.repo.GetTeam(gctx, match.AwayTeamID)
		if err != nil {
			return fmt.Errorf("away team: %w", err)
		}
		away = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pred := s.predictor.Predict(home, away)

	trends, err := s.trends.Detect(ctx, models.TrendFilter{League: match.League})
	if err != nil {
		return nil, fmt.Errorf("trends: %w", err)
	}

	market, err := CompareWithMarket(match.MatchOdds, pred)
	if err != nil {
		return nil, fmt.Errorf("match %d: %w", matchID, err)
	}

	predictionsServed.Inc()
	s.record(match, pred)

	return &models.AnalysisResult{
		MatchID:     match.ID,
		HomeTeam:    home.Analysis(),
		AwayTeam:    away.Analysis(),
		Predictions: pred,
		Trends:      trends,
		Market:      market,
	}, nil
}

func (s *analysisService) record(match *models.Match, pred models.MatchPrediction) {
	if s.sink == nil {
		return
	}
	snap := &models.PredictionSnapshot{
		RunID:              uuid.New(),
		MatchID:            match.ID,
		HomeTeamID:         match.HomeTeamID,
		AwayTeamID:         match.AwayTeamID,
		League:             match.League,
		ComputedAt:         time.Now().UTC(),
		LambdaHome:         pred.ExpectedHomeGoals,
		LambdaAway:         pred.ExpectedAwayGoals,
		HomeWinProbability: pred.HomeWinProbability,
		DrawProbability:    pred.DrawProbability,
		AwayWinProbability: pred.AwayWinProbability,
		BTTSProbability:    pred.BTTSProbability,
		DataSufficient:     pred.DataSufficiency,
	}
	if !s.sink.Enqueue(snap) {
		s.logger.Warnw("Prediction snapshot dropped", "match_id", match.ID)
	}
}

// AnnotateMatch analyzes the match and writes the most likely outcome back onto it.
func (s *analysisService) AnnotateMatch(ctx context.Context, matchID int64) (*models.MatchAnnotation, error) {
	result, err := s.AnalyzeMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	outcome, confidence := result.Predictions.MostLikelyOutcome()
	annotation := models.MatchAnnotation{
		PredictionConfidence: confidence,
		PredictedResult:      outcome,
		AnalysisNotes:        annotationNotes(result),
	}

	if err := s.repo.SaveMatchAnnotation(ctx, matchID, annotation); err != nil {
		return nil, fmt.Errorf("save annotation for match %d: %w", matchID, err)
	}
	s.logger.Infow("Match annotated",
		"match_id", matchID,
		"predicted_result", outcome,
		"confidence", confidence,
	)
	return &annotation, nil
}

func annotationNotes(r *models.AnalysisResult) string {
	p := r.Predictions
	parts := []string{
		fmt.Sprintf("Expected goals %.2f-%.2f, most likely score %s", p.ExpectedHomeGoals, p.ExpectedAwayGoals, p.MostLikelyScore),
		fmt.Sprintf("BTTS %.0f%%, over 2.5 %.0f%%", p.BTTSProbability*100, p.Over25Probability*100),
	}
	if r.Market != nil {
		parts = append(parts, fmt.Sprintf("edge vs market %+.1f/%+.1f/%+.1f pts",
			r.Market.HomeEdge*100, r.Market.DrawEdge*100, r.Market.AwayEdge*100))
	}
	if !p.DataSufficiency {
		parts = append(parts, "insufficient history")
	}
	return strings.Join(parts, "; ")
}

func (s *analysisService) TeamForm(ctx context.Context, teamID int64, window int) (*models.TeamFormResult, error) {
	return s.form.RecentForm(ctx, teamID, window)
}

func (s *analysisService) Trends(ctx context.Context, filter models.TrendFilter) ([]models.TrendResult, error) {
	return s.trends.Detect(ctx, filter)
}
