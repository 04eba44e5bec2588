package logic

import (
	"fmt"

	"github.com/betanalytics/analytics-api/internal/models"
)

// CompareWithMarket sets the model's 1X2 probabilities against the quoted
// decimal prices. Implied probabilities have the bookmaker margin removed
// proportionally, so they sum to 1. Returns nil when any 1X2 price is missing.
func CompareWithMarket(odds models.MatchOdds, pred models.MatchPrediction) (*models.MarketComparison, error) {
	if !odds.HasMatchOdds() {
		return nil, nil
	}

	prices := [3]float64{*odds.HomeOdds, *odds.DrawOdds, *odds.AwayOdds}
	var implied [3]float64
	var total float64
	for i, price := range prices {
		if price <= 1 {
			return nil, fmt.Errorf("decimal odds must be greater than 1, got %v", price)
		}
		implied[i] = 1 / price
		total += implied[i]
	}

	for i := range implied {
		implied[i] /= total
	}

	return &models.MarketComparison{
		Overround:   total - 1,
		HomeImplied: implied[0],
		DrawImplied: implied[1],
		AwayImplied: implied[2],
		HomeEdge:    pred.HomeWinProbability - implied[0],
		DrawEdge:    pred.DrawProbability - implied[1],
		AwayEdge:    pred.AwayWinProbability - implied[2],
	}, nil
}
