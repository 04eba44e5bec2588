package logic

import (
	"testing"

	"github.com/betanalytics/analytics-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teamWithRates(id int64, games int, scored, conceded float64) *models.Team {
	return &models.Team{
		ID:               id,
		TeamRecord:       models.TeamRecord{GamesPlayed: games},
		AvgGoalsScored:   scored,
		AvgGoalsConceded: conceded,
	}
}

func TestScoreMatrix_SumsToOne(t *testing.T) {
	for _, lambdas := range [][2]float64{{0, 0}, {0.3, 2.9}, {1.5, 1.5}, {4.2, 0.1}, {9, 9}} {
		grid := ScoreMatrix(lambdas[0], lambdas[1], 10)
		require.Len(t, grid, 11)

		var total float64
		for _, row := range grid {
			require.Len(t, row, 11)
			for _, p := range row {
				assert.GreaterOrEqual(t, p, 0.0)
				total += p
			}
		}
		assert.InDelta(t, 1.0, total, 1e-9, "lambdas %v", lambdas)
	}
}

func TestPredict_ProbabilityInvariants(t *testing.T) {
	p := NewPredictor(PredictorConfig{})
	pred := p.Predict(teamWithRates(1, 10, 1.8, 0.9), teamWithRates(2, 10, 1.1, 1.4))

	assert.InDelta(t, 1.0, pred.HomeWinProbability+pred.DrawProbability+pred.AwayWinProbability, 1e-6)
	for _, v := range []float64{pred.HomeWinProbability, pred.DrawProbability, pred.AwayWinProbability, pred.BTTSProbability, pred.Over15Probability, pred.Over25Probability} {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
	assert.GreaterOrEqual(t, pred.Over15Probability, pred.Over25Probability)
	assert.True(t, pred.DataSufficiency)
}

func TestPredict_ExpectedGoals(t *testing.T) {
	p := NewPredictor(PredictorConfig{HomeAdvantage: 1.0, MaxGoals: 10})
	a := teamWithRates(1, 10, 2.0, 1.0)
	b := teamWithRates(2, 10, 1.0, 2.0)

	pred := p.Predict(a, b)

	assert.InDelta(t, 2.0, pred.ExpectedHomeGoals, 1e-9)
	assert.InDelta(t, 1.0, pred.ExpectedAwayGoals, 1e-9)
	assert.InDelta(t, 3.0, pred.TotalGoalsPrediction, 1e-9)
	assert.Greater(t, pred.HomeWinProbability, pred.AwayWinProbability)
}

func TestPredict_SymmetricWithoutHomeAdvantage(t *testing.T) {
	a := teamWithRates(1, 10, 1.5, 1.5)
	b := teamWithRates(2, 10, 1.5, 1.5)

	neutral := NewPredictor(PredictorConfig{HomeAdvantage: 1.0}).Predict(a, b)
	assert.InDelta(t, 1.5, neutral.ExpectedHomeGoals, 1e-9)
	assert.InDelta(t, 1.5, neutral.ExpectedAwayGoals, 1e-9)
	assert.InDelta(t, 3.0, neutral.TotalGoalsPrediction, 1e-9)
	assert.InDelta(t, neutral.HomeWinProbability, neutral.AwayWinProbability, 1e-9)

	boosted := NewPredictor(PredictorConfig{HomeAdvantage: 1.2}).Predict(a, b)
	assert.Greater(t, boosted.HomeWinProbability, boosted.AwayWinProbability)
}

func TestPredict_Deterministic(t *testing.T) {
	p := NewPredictor(PredictorConfig{})
	a := teamWithRates(1, 4, 1.25, 0.75)
	b := teamWithRates(2, 6, 0.5, 1.5)

	assert.Equal(t, p.Predict(a, b), p.Predict(a, b))
}

func TestPredict_NoHistory(t *testing.T) {
	p := NewPredictor(PredictorConfig{})
	pred := p.Predict(teamWithRates(1, 0, 0, 0), teamWithRates(2, 0, 0, 0))

	assert.False(t, pred.DataSufficiency)
	assert.Zero(t, pred.TotalGoalsPrediction)
	assert.InDelta(t, 1.0, pred.DrawProbability, 1e-9)
	assert.Equal(t, "0-0", pred.MostLikelyScore)
}

func TestPredict_MostLikelyScore(t *testing.T) {
	p := NewPredictor(PredictorConfig{})
	// lambda 1.5 vs 0.5: mode of Poisson(1.5) is 1, of Poisson(0.5) is 0
	pred := p.Predict(teamWithRates(1, 5, 1.5, 0.5), teamWithRates(2, 5, 0.5, 1.5))

	assert.Equal(t, "1-0", pred.MostLikelyScore)
	outcome, prob := pred.MostLikelyOutcome()
	assert.Equal(t, models.OutcomeHome, outcome)
	assert.Equal(t, pred.HomeWinProbability, prob)
}
