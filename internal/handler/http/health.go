// Package http provides the numconv HTTP server plumbing: health
// endpoints, metrics, and the logging, recovery and body-limit middleware.
package http

import (
	"context"
	"net/http"
	"time"

	"numconv/internal/handler/http/respond"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC 3339
	Checks    map[string]CheckStatus `json:"checks,omitempty"`
	Version   string                 `json:"version,omitempty"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// Checker is a named readiness probe.
type Checker interface {
	Name() string
	Check(ctx context.Context) CheckStatus
}

// CheckFunc adapts a function to Checker.
type CheckFunc struct {
	CheckName string
	Fn        func(ctx context.Context) CheckStatus
}

func (c CheckFunc) Name() string                          { return c.CheckName }
func (c CheckFunc) Check(ctx context.Context) CheckStatus { return c.Fn(ctx) }

// HealthHandler runs every checker and reports 200 when all are healthy,
// 503 otherwise.
type HealthHandler struct {
	Version  string
	Checkers []Checker
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus, len(h.Checkers))
	healthy := true
	for _, c := range h.Checkers {
		st := c.Check(ctx)
		checks[c.Name()] = st
		if st.Status == "unhealthy" {
			healthy = false
		}
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	}
	code := http.StatusOK
	if !healthy {
		resp.Status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, resp)
}

// LiveHandler reports that the process is up.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "alive"})
}
