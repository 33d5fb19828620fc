package metrics

import (
	"errors"
	"time"

	"numconv/internal/domain/numeric"
)

// Outcome labels for CalculationsTotal.
const (
	OutcomeSuccess      = "success"
	OutcomeInvalidInput = "invalid_input"
	OutcomeOutOfRange   = "out_of_range"
	OutcomeError        = "error"
)

// OutcomeOf maps a calculation error to its outcome label.
func OutcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, numeric.ErrInvalidInput):
		return OutcomeInvalidInput
	case errors.Is(err, numeric.ErrOutOfRange):
		return OutcomeOutOfRange
	default:
		return OutcomeError
	}
}

// RecordCalculation records one calculation.
func RecordCalculation(operation, outcome string, duration time.Duration) {
	CalculationsTotal.WithLabelValues(operation, outcome).Inc()
	CalculationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordHTTPRequest records an HTTP request with its metadata
func RecordHTTPRequest(method, path, status string, duration time.Duration, requestSize, responseSize int64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())

	if requestSize > 0 {
		HTTPRequestSize.WithLabelValues(method, path).Observe(float64(requestSize))
	}
	HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
}

// SetHistoryEntries updates the retained-entries gauge for operation.
func SetHistoryEntries(operation string, n int) {
	HistoryEntries.WithLabelValues(operation).Set(float64(n))
}

// RecordHistoryPurged adds n to the purge counter.
func RecordHistoryPurged(n int) {
	if n > 0 {
		HistoryPurgedTotal.Add(float64(n))
	}
}

// Sweep status labels.
const (
	SweepSuccess = "success"
	SweepFailure = "failure"
)

// RecordSweep records one retention sweep run.
func RecordSweep(status string, duration time.Duration, at time.Time) {
	SweepRunsTotal.WithLabelValues(status).Inc()
	SweepDuration.Observe(duration.Seconds())
	if status == SweepSuccess {
		SweepLastSuccess.Set(float64(at.Unix()))
	}
}
