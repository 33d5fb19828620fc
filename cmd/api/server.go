package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"numconv/internal/config"
	"numconv/internal/domain/entity"
	"numconv/internal/domain/numeric"
	hhttp "numconv/internal/handler/http"
	hcalc "numconv/internal/handler/http/calc"
	"numconv/internal/handler/http/middleware"
	"numconv/internal/handler/http/requestid"
	"numconv/internal/infra/adapter/persistence/memory"
	"numconv/internal/infra/scheduler"
	"numconv/internal/observability/metrics"
	"numconv/internal/observability/tracing"
	"numconv/internal/usecase/calc"
)

// maxRequestBody caps request bodies at 1 MiB.
const maxRequestBody = 1 << 20

// ServerComponents holds what the server needs at runtime and at shutdown.
type ServerComponents struct {
	Handler http.Handler
	// Limiter is nil when rate limiting is disabled.
	Limiter *middleware.RateLimiter
}

// newHistoryRepo builds the history store with its entry-count gauge wired.
func newHistoryRepo(size int) *memory.HistoryRepo {
	return memory.NewHistoryRepo(size, memory.WithLengthObserver(func(op entity.Operation, n int) {
		metrics.SetHistoryEntries(string(op), n)
	}))
}

// setupServer builds routes and the middleware chain.
func setupServer(logger *slog.Logger, cfg *config.Config, svc *calc.Service, repo *memory.HistoryRepo, sweeper *scheduler.Sweeper) *ServerComponents {
	mux := http.NewServeMux()
	hcalc.Register(mux, svc)

	health := &hhttp.HealthHandler{
		Version:  cfg.Version,
		Checkers: healthCheckers(repo, sweeper),
	}
	mux.Handle("GET /health", health)
	mux.Handle("GET /ready", health)
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			TrustForwardedFor: cfg.RateLimit.TrustForwardedFor,
			Logger:            logger,
		})
		logger.Info("rate limiting initialized",
			slog.Float64("rps", cfg.RateLimit.RequestsPerSecond),
			slog.Int("burst", cfg.RateLimit.Burst))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	return &ServerComponents{
		Handler: applyMiddleware(logger, mux, limiter),
		Limiter: limiter,
	}
}

// applyMiddleware wraps handler, outermost first:
// CORS, request ID, tracing, rate limit, recovery, logging, body limit, metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler, limiter *middleware.RateLimiter) http.Handler {
	corsConfig := middleware.LoadCORSConfig()
	corsConfig.Logger = logger
	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsConfig.AllowedOrigins),
		slog.Any("allowed_methods", corsConfig.AllowedMethods),
		slog.Int("max_age", corsConfig.MaxAge))

	mws := []func(http.Handler) http.Handler{
		middleware.CORS(corsConfig),
		requestid.Middleware,
		tracing.Middleware,
	}
	if limiter != nil {
		mws = append(mws, limiter.Middleware)
	}
	mws = append(mws,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.LimitRequestBody(maxRequestBody),
		hhttp.MetricsMiddleware,
	)
	return hhttp.Chain(handler, mws...)
}

func healthCheckers(repo *memory.HistoryRepo, sweeper *scheduler.Sweeper) []hhttp.Checker {
	return []hhttp.Checker{
		hhttp.CheckFunc{CheckName: "selftest", Fn: selfTest},
		hhttp.CheckFunc{CheckName: "history", Fn: func(ctx context.Context) hhttp.CheckStatus {
			details := map[string]any{"capacity": repo.Capacity()}
			for _, op := range entity.AllOperations() {
				entries, err := repo.Recent(ctx, op, 0)
				if err != nil {
					return hhttp.CheckStatus{Status: "unhealthy", Message: err.Error()}
				}
				details[string(op)] = len(entries)
			}
			return hhttp.CheckStatus{Status: "healthy", Details: details}
		}},
		hhttp.CheckFunc{CheckName: "history_sweep", Fn: func(context.Context) hhttp.CheckStatus {
			st := sweeper.Status()
			details := map[string]any{"enabled": st.Enabled, "running": st.Running}
			if !st.LastSuccess.IsZero() {
				details["last_success"] = st.LastSuccess.UTC().Format(time.RFC3339)
				details["last_removed"] = st.LastRemoved
			}
			return hhttp.CheckStatus{Status: "healthy", Details: details}
		}},
	}
}

// selfTest runs each operation on a known input.
func selfTest(context.Context) hhttp.CheckStatus {
	unhealthy := func(msg string) hhttp.CheckStatus {
		return hhttp.CheckStatus{Status: "unhealthy", Message: msg}
	}
	if r, err := numeric.ToRoman(1994); err != nil || r != "MCMXCIV" {
		return unhealthy("int-to-roman")
	}
	if n, err := numeric.FromRoman("MCMXCIV"); err != nil || n != 1994 {
		return unhealthy("roman-to-int")
	}
	if numeric.ClassifyParity(-3) != numeric.Odd {
		return unhealthy("parity")
	}
	if p, err := numeric.CheckPrime(91); err != nil || p.Prime || p.Divisor != 7 {
		return unhealthy("prime")
	}
	if f, err := numeric.Factorial(20); err != nil || f != 2432902008176640000 {
		return unhealthy("factorial")
	}
	return hhttp.CheckStatus{Status: "healthy"}
}
