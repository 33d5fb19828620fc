// Package tracing wires OpenTelemetry into numconv.
//
// Setup installs an SDK tracer provider and the W3C trace-context
// propagator. Middleware then opens a server span per HTTP request and
// StartSpan opens child spans around individual calculations.
//
// Spans recorded per calculation:
//   - calc.<operation> with calc.operation and calc.outcome attributes
//   - calc.input holding at most the first 64 bytes of the raw input
//
// Sampling follows the configured ratio for root spans and the parent's
// decision otherwise, so an upstream sampled trace stays sampled here.
//
// Example usage:
//
//	shutdown, err := tracing.Setup(tracing.Config{ServiceName: "numconv", SampleRatio: 1})
//	if err != nil { ... }
//	defer shutdown(context.Background())
package tracing
