package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CorrelationRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "correlation_runs_total",
			Help: "Total number of correlation runs",
		},
		[]string{"trigger"},
	)

	CorrelationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "correlation_run_duration_seconds",
			Help: "Duration of correlation runs in seconds",
		},
	)

	RecordsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "correlation_records_skipped_total",
			Help: "Input records skipped for validation errors",
		},
		[]string{"record"},
	)

	ConsolidatedEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "correlation_consolidated_entries",
			Help: "Entries produced by the most recent correlation run",
		},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "API request latency",
		},
		[]string{"method", "path", "status"},
	)
)
