// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with the helpers
// the API server and CLI share.
//
// Key features:
//   - JSON and text output formats
//   - Level parsing from LOG_LEVEL style strings
//   - Request ID propagation
//   - Context-aware logging with a slog.Default fallback
//
// Example usage:
//
//	logger := logging.NewLogger(logging.Options{Level: os.Getenv("LOG_LEVEL")})
//	ctx = logging.WithLogger(ctx, logging.WithRequestID(ctx, logger))
//
//	func compute(ctx context.Context) {
//	    logging.FromContext(ctx).Info("calculation done")
//	}
package logging
