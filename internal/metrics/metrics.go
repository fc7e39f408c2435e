// Package metrics exposes the engine's prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssessmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adence_assessments_total",
			Help: "Total number of assessments processed",
		},
		[]string{"subject_type", "risk_level"},
	)

	AssessmentDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "adence_assessment_duration_seconds",
			Help: "Duration of the full assessment pipeline in seconds",
		},
	)

	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adence_validation_failures_total",
			Help: "Total number of rejected assessment inputs",
		},
		[]string{"field"},
	)

	InsightRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "adence_insight_requests_total",
			Help: "Total number of insight augmentation requests",
		},
	)

	InsightCacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "adence_insight_cache_hits_total",
			Help: "Insight cache hits",
		},
	)

	InsightCacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "adence_insight_cache_misses_total",
			Help: "Insight cache misses",
		},
	)

	InsightTokensTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "adence_insight_tokens_total",
			Help: "Total tokens consumed by the text-generation service",
		},
	)

	InsightBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "adence_insight_batch_size",
			Help:    "Number of requests per drained insight batch",
			Buckets: []float64{1, 2, 3, 4, 6, 8},
		},
	)
)
