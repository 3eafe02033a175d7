// Package metrics exposes the application's Prometheus instruments. They are
// registered on the default registry and served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DatasetsUploaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demandcast_datasets_uploaded_total",
			Help: "Total number of dataset uploads, by source format",
		},
		[]string{"format"},
	)

	ValidationVerdicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demandcast_validation_verdicts_total",
			Help: "Total number of dataset validations, by verdict",
		},
		[]string{"verdict"},
	)

	ValidationIssues = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demandcast_validation_issues_total",
			Help: "Total number of validation issues found, by severity",
		},
		[]string{"severity"},
	)

	ForecastRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demandcast_forecast_runs_total",
			Help: "Total number of forecast runs, by final status",
		},
		[]string{"status"},
	)

	ForecastFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "demandcast_forecast_fallbacks_total",
			Help: "Total number of forecasts served by the mean fallback",
		},
	)

	ForecastRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "demandcast_forecast_run_duration_seconds",
			Help:    "Time taken to evaluate the full model suite for a dataset",
			Buckets: prometheus.DefBuckets,
		},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demandcast_results_cache_hits_total",
			Help: "Results cache lookups, by outcome",
		},
		[]string{"outcome"},
	)
)
