// Package metrics holds the Prometheus collectors shared by the API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PredictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fightcast_predictions_total",
		Help: "Predictions served, by blend method and whether competitor roles were swapped",
	}, []string{"method", "swapped"})

	PredictionErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fightcast_prediction_errors_total",
		Help: "Failed predictions by error kind",
	}, []string{"kind"})

	PredictionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fightcast_prediction_duration_seconds",
		Help:    "End-to-end latency of the prediction pipeline",
		Buckets: prometheus.DefBuckets,
	})

	ModelConfidence = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fightcast_model_confidence",
		Help:    "Per-model confidence |p-0.5|*2",
		Buckets: prometheus.LinearBuckets(0, 0.1, 11),
	}, []string{"model"})

	HistoryCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fightcast_history_cache_hits_total",
		Help: "History read-through cache hits by lookup",
	}, []string{"lookup"})

	HistoryCacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fightcast_history_cache_misses_total",
		Help: "History read-through cache misses by lookup",
	}, []string{"lookup"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fightcast_http_requests_total",
		Help: "HTTP requests by route pattern and status code",
	}, []string{"route", "status"})

	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fightcast_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	})
)
