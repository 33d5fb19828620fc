package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration buckets are tuned for sub-millisecond handlers up to slow clients.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestsInFlight tracks requests currently being served
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	// HTTPRequestSize measures HTTP request body size in bytes
	HTTPRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: prometheus.ExponentialBuckets(16, 4, 8),
		},
		[]string{"method", "path"},
	)

	// HTTPResponseSize measures HTTP response body size in bytes
	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(16, 4, 8),
		},
		[]string{"method", "path"},
	)

	// RateLimitRejectionsTotal counts requests rejected by the per-client limiter
	RateLimitRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limit_rejections_total",
			Help: "Total number of requests rejected by rate limiting",
		},
	)
)

// Business metrics track the numeric operations
var (
	// CalculationsTotal counts calculations by operation and outcome
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "numconv_calculations_total",
			Help: "Total number of calculations by operation and outcome",
		},
		[]string{"operation", "outcome"}, // outcome: success, invalid_input, out_of_range, error
	)

	// CalculationDuration measures time spent inside an operation
	CalculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "numconv_calculation_duration_seconds",
			Help:    "Time taken by a calculation in seconds",
			Buckets: prometheus.ExponentialBuckets(0.000001, 4, 10),
		},
		[]string{"operation"},
	)

	// HistoryEntries tracks retained history entries per operation
	HistoryEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "numconv_history_entries",
			Help: "Number of history entries currently retained per operation",
		},
		[]string{"operation"},
	)

	// HistoryPurgedTotal counts entries removed by the retention sweep
	HistoryPurgedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "numconv_history_purged_total",
			Help: "Total number of history entries removed by retention sweeps",
		},
	)

	// SweepRunsTotal counts retention sweep runs by status
	SweepRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "numconv_history_sweep_runs_total",
			Help: "Total number of history retention sweep runs",
		},
		[]string{"status"}, // success, failure
	)

	// SweepDuration measures retention sweep execution time
	SweepDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "numconv_history_sweep_duration_seconds",
			Help:    "Duration of history retention sweeps in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 10, 7),
		},
	)

	// SweepLastSuccess records the Unix time of the last successful sweep
	SweepLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "numconv_history_sweep_last_success_timestamp_seconds",
			Help: "Unix timestamp of the last successful history retention sweep",
		},
	)
)
