// Package metrics provides the Prometheus collectors used by numconv.
//
// This package centralizes:
//   - HTTP request metrics (duration, count, size, in-flight)
//   - Calculation metrics per operation and outcome
//   - History metrics (retained entries, purged entries)
//
// All collectors are registered with the Prometheus default registry and
// exposed via the /metrics endpoint.
//
// Example usage:
//
//	start := time.Now()
//	result, err := numeric.FromRoman(raw)
//	metrics.RecordCalculation("roman-to-int", metrics.OutcomeOf(err), time.Since(start))
package metrics
