package logic

import (
	"testing"

	"github.com/betanalytics/analytics-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 { return &v }

func TestCompareWithMarket(t *testing.T) {
	odds := models.MatchOdds{HomeOdds: price(2.0), DrawOdds: price(3.5), AwayOdds: price(4.0)}
	pred := models.MatchPrediction{HomeWinProbability: 0.55, DrawProbability: 0.25, AwayWinProbability: 0.20}

	cmp, err := CompareWithMarket(odds, pred)
	require.NoError(t, err)
	require.NotNil(t, cmp)

	raw := 1/2.0 + 1/3.5 + 1/4.0
	assert.InDelta(t, raw-1, cmp.Overround, 1e-9)
	assert.InDelta(t, 1.0, cmp.HomeImplied+cmp.DrawImplied+cmp.AwayImplied, 1e-9)
	assert.InDelta(t, 0.5/raw, cmp.HomeImplied, 1e-9)
	assert.InDelta(t, 0.55-0.5/raw, cmp.HomeEdge, 1e-9)
}

func TestCompareWithMarket_MissingOrBadPrices(t *testing.T) {
	cmp, err := CompareWithMarket(models.MatchOdds{HomeOdds: price(2.0)}, models.MatchPrediction{})
	assert.NoError(t, err)
	assert.Nil(t, cmp)

	_, err = CompareWithMarket(models.MatchOdds{HomeOdds: price(1.0), DrawOdds: price(3), AwayOdds: price(3)}, models.MatchPrediction{})
	assert.Error(t, err)
}
