package logic

import (
	"fmt"

	"github.com/betanalytics/analytics-api/internal/models"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	DefaultHomeAdvantage = 1.0
	DefaultMaxGoals      = 10
)

// PredictorConfig tunes the Poisson model.
type PredictorConfig struct {
	// HomeAdvantage multiplies the home side's expected goals.
	HomeAdvantage float64
	// MaxGoals truncates the score grid per side; the grid is renormalized.
	MaxGoals int
}

// Predictor forecasts a fixture from two team aggregates using independent
// Poisson goal counts. It holds no state beyond its configuration.
type Predictor struct {
	homeAdvantage float64
	maxGoals      int
}

func NewPredictor(cfg PredictorConfig) *Predictor {
	p := &Predictor{homeAdvantage: cfg.HomeAdvantage, maxGoals: cfg.MaxGoals}
	if p.homeAdvantage <= 0 {
		p.homeAdvantage = DefaultHomeAdvantage
	}
	if p.maxGoals <= 0 {
		p.maxGoals = DefaultMaxGoals
	}
	return p
}

// Lambdas returns the expected goals of each side: the mean of a side's
// scoring rate and the opponent's conceding rate, home side scaled by the
// home advantage.
func (p *Predictor) Lambdas(home, away *models.Team) (lambdaHome, lambdaAway float64) {
	lambdaHome = (home.AvgGoalsScored + away.AvgGoalsConceded) / 2 * p.homeAdvantage
	lambdaAway = (away.AvgGoalsScored + home.AvgGoalsConceded) / 2
	return lambdaHome, lambdaAway
}

// Predict is pure: equal inputs always produce equal outputs.
func (p *Predictor) Predict(home, away *models.Team) models.MatchPrediction {
	lh, la := p.Lambdas(home, away)
	grid := ScoreMatrix(lh, la, p.maxGoals)

	pred := models.MatchPrediction{
		TotalGoalsPrediction: lh + la,
		ExpectedHomeGoals:    lh,
		ExpectedAwayGoals:    la,
		DataSufficiency:      home.HasHistory() && away.HasHistory(),
	}

	bestH, bestA, best := 0, 0, -1.0
	for h, row := range grid {
		for a, prob := range row {
			switch {
			case h > a:
				pred.HomeWinProbability += prob
			case h < a:
				pred.AwayWinProbability += prob
			default:
				pred.DrawProbability += prob
			}
			if h > 0 && a > 0 {
				pred.BTTSProbability += prob
			}
			if h+a > 1 {
				pred.Over15Probability += prob
			}
			if h+a > 2 {
				pred.Over25Probability += prob
			}
			if prob > best {
				bestH, bestA, best = h, a, prob
			}
		}
	}
	pred.MostLikelyScore = fmt.Sprintf("%d-%d", bestH, bestA)
	return pred
}

// ScoreMatrix returns P(home=i, away=j) for 0..maxGoals on both axes,
// renormalized so the cells sum to 1.
func ScoreMatrix(lambdaHome, lambdaAway float64, maxGoals int) [][]float64 {
	ph := poissonPMF(lambdaHome, maxGoals)
	pa := poissonPMF(lambdaAway, maxGoals)

	grid := make([][]float64, maxGoals+1)
	var total float64
	for i := range grid {
		grid[i] = make([]float64, maxGoals+1)
		for j := range grid[i] {
			grid[i][j] = ph[i] * pa[j]
			total += grid[i][j]
		}
	}

	if total > 0 {
		for i := range grid {
			for j := range grid[i] {
				grid[i][j] /= total
			}
		}
	}
	return grid
}

// poissonPMF returns P(X=k) for k in 0..maxGoals. A non-positive rate puts
// all mass on zero goals.
func poissonPMF(lambda float64, maxGoals int) []float64 {
	pmf := make([]float64, maxGoals+1)
	if lambda <= 0 {
		pmf[0] = 1
		return pmf
	}
	dist := distuv.Poisson{Lambda: lambda}
	for k := range pmf {
		pmf[k] = dist.Prob(float64(k))
	}
	return pmf
}
