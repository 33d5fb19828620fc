// Package responsewriter provides a wrapper for http.ResponseWriter that records
// the status code and number of body bytes written.
//
// The request logger, the metrics middleware, the tracing middleware and the
// rate limiter all read these values after the handler returns. Wrap is
// idempotent: wrapping an already wrapped writer returns the same value, so
// every layer of the chain observes one shared record.
//
// Example usage:
//
//	rw := responsewriter.Wrap(w)
//	next.ServeHTTP(rw, r)
//	slog.Info("request completed",
//	    slog.Int("status", rw.StatusCode()),
//	    slog.Int64("bytes", rw.BytesWritten()))
//
// Unwrap exposes the underlying writer to http.ResponseController.
package responsewriter

import (
	"net/http"
)

// ResponseWriter records the status code and bytes written.
type ResponseWriter struct {
	http.ResponseWriter
	statusCode    int
	bytesWritten  int64
	headerWritten bool
}

// Wrap returns w unchanged if it is already a *ResponseWriter, otherwise a new wrapper.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw
	}
	return &ResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader records the first status code and forwards it.
func (w *ResponseWriter) WriteHeader(statusCode int) {
	if w.headerWritten {
		return
	}
	w.statusCode = statusCode
	w.headerWritten = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b, writing an implicit 200 first if needed.
func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.headerWritten {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += int64(n)
	return n, err
}

// StatusCode returns the recorded HTTP status code (200 if none was written).
func (w *ResponseWriter) StatusCode() int { return w.statusCode }

// BytesWritten returns the number of body bytes written.
func (w *ResponseWriter) BytesWritten() int64 { return w.bytesWritten }

// Written reports whether the header has been sent.
func (w *ResponseWriter) Written() bool { return w.headerWritten }

// Unwrap returns the underlying writer for http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
