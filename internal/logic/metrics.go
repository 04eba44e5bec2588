package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recomputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "analytics_team_recompute_duration_seconds",
		Help:    "Time to rebuild one team aggregate",
		Buckets: prometheus.DefBuckets,
	})

	recomputeFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analytics_team_recompute_failures_total",
		Help: "Team aggregate rebuilds that failed",
	})

	predictionsServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analytics_predictions_total",
		Help: "Match analyses computed",
	})

	trendCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "analytics_trend_cache_lookups_total",
		Help: "Trend cache lookups by result",
	}, []string{"result"})
)
