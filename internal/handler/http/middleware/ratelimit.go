// Package middleware holds the cross-cutting HTTP middleware that sits in
// front of the numconv routes: CORS and per-client rate limiting.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"numconv/internal/handler/http/pathutil"
	"numconv/internal/handler/http/respond"
	"numconv/internal/handler/http/responsewriter"
	"numconv/internal/observability/logging"
	"numconv/internal/observability/metrics"
)

// RateLimiterConfig configures the per-client token bucket.
type RateLimiterConfig struct {
	// RequestsPerSecond is the sustained refill rate.
	RequestsPerSecond float64
	// Burst is the bucket size.
	Burst int
	// IdleTTL is how long an untouched client bucket is kept.
	IdleTTL time.Duration
	// TrustForwardedFor takes the client IP from the first X-Forwarded-For
	// entry. Enable only behind a proxy that overwrites the header.
	TrustForwardedFor bool
	// Logger receives one warning per rejected request. Defaults to slog.Default().
	Logger *slog.Logger
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits requests per client IP with golang.org/x/time/rate.
type RateLimiter struct {
	cfg     RateLimiterConfig
	mu      sync.Mutex
	clients map[string]*clientBucket
	now     func() time.Time
}

// NewRateLimiter creates a limiter. Zero values fall back to 20 rps, burst 40, 10m idle TTL.
func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 20
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 40
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 10 * time.Minute
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &RateLimiter{
		cfg:     cfg,
		clients: make(map[string]*clientBucket),
		now:     time.Now,
	}
}

// Allow reports whether a request from ip may proceed now.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.clients[ip]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(rate.Limit(rl.cfg.RequestsPerSecond), rl.cfg.Burst)}
		rl.clients[ip] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

// ActiveClients returns the number of tracked client buckets.
func (rl *RateLimiter) ActiveClients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// Cleanup drops buckets idle for longer than IdleTTL and returns how many were removed.
func (rl *RateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.cfg.IdleTTL)
	removed := 0
	for ip, b := range rl.clients {
		if b.lastSeen.Before(cutoff) {
			delete(rl.clients, ip)
			removed++
		}
	}
	return removed
}

// RunCleanup calls Cleanup every interval until ctx is done.
func (rl *RateLimiter) RunCleanup(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := rl.Cleanup(); n > 0 {
				logger.Debug("rate limit buckets cleaned", slog.Int("removed", n))
			}
		}
	}
}

// Middleware rejects requests over the limit with 429.
//
// The middleware:
//   - Keys the token bucket on the client IP (see TrustForwardedFor)
//   - Answers over-limit requests with 429, a JSON error and Retry-After: 1
//   - Logs each rejection at warn level with the request ID and client IP
//   - Counts rejections in http_rate_limit_rejections_total and, because it runs
//     outside the request logging and metrics middleware, records the 429 in
//     http_requests_total itself
//
// Allowed requests pass through untouched.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := rl.clientIP(r)
		if rl.Allow(ip) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		metrics.RateLimitRejectionsTotal.Inc()
		logging.WithRequestID(r.Context(), rl.cfg.Logger).Warn("rate limit exceeded",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("client_ip", ip))

		rw := responsewriter.Wrap(w)
		rw.Header().Set("Retry-After", "1")
		respond.Error(rw, http.StatusTooManyRequests, errors.New("rate limit exceeded"))
		metrics.RecordHTTPRequest(
			r.Method,
			pathutil.NormalizePath(r.URL.Path),
			strconv.Itoa(rw.StatusCode()),
			time.Since(start),
			r.ContentLength,
			rw.BytesWritten(),
		)
	})
}

func (rl *RateLimiter) clientIP(r *http.Request) string {
	if rl.cfg.TrustForwardedFor {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
				return ip.String()
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
