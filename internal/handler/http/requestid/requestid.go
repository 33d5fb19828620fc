// Package requestid provides middleware and utilities for managing HTTP request IDs.
// Every request gets an ID so its log lines, error bodies and spans can be
// correlated after the fact.
//
// A client may supply its own ID in X-Request-ID. It is reused when it is
// non-empty, at most 128 bytes and visible ASCII only; anything else is
// replaced with a fresh UUID v4.
//
// Example usage:
//
//	handler := requestid.Middleware(mux)
//
//	func handle(w http.ResponseWriter, r *http.Request) {
//	    id := requestid.FromContext(r.Context())
//	    slog.Info("handling", slog.String("request_id", id))
//	}
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// RequestIDKey is the context key for storing request IDs.
	RequestIDKey contextKey = "request_id"
	// RequestIDHeader is the HTTP header name for request IDs.
	RequestIDHeader = "X-Request-ID"
	// maxLength bounds client-supplied IDs so they stay log friendly.
	maxLength = 128
)

// FromContext retrieves the request ID from the context, or "".
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// acceptable reports whether a client-supplied ID can be reused as-is:
// non-empty, bounded, and made of visible ASCII only.
func acceptable(id string) bool {
	if id == "" || len(id) > maxLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

// Middleware assigns a request ID to every request.
//
// The middleware:
//   - Reuses an acceptable X-Request-ID header from the client
//   - Otherwise generates a UUID v4
//   - Echoes the ID in the X-Request-ID response header
//   - Stores the ID in the request context for FromContext
//
// Install it outside logging and tracing so both see the ID.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if !acceptable(id) {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
	})
}
