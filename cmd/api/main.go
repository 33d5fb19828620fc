// Command api serves the numconv operations over HTTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"numconv/internal/config"
	"numconv/internal/infra/scheduler"
	"numconv/internal/observability/logging"
	"numconv/internal/observability/tracing"
	"numconv/internal/usecase/calc"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	slog.SetDefault(logger)

	shutdownTracing, err := tracing.Setup(tracing.Config{
		ServiceName:    "numconv",
		ServiceVersion: cfg.Version,
		SampleRatio:    cfg.Tracing.SampleRatio,
	})
	if err != nil {
		logger.Error("failed to set up tracing", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited with error", slog.Any("error", err))
		_ = shutdownTracing(context.Background())
		os.Exit(1)
	}

	tctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := shutdownTracing(tctx); err != nil {
		logger.Warn("tracer shutdown failed", slog.Any("error", err))
	}
}

// run wires the server and blocks until ctx is cancelled or a component fails.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	repo := newHistoryRepo(cfg.History.Size)
	svc := &calc.Service{Repo: repo, HistorySize: cfg.History.Size}

	sweeper, err := scheduler.New(scheduler.Config{
		Schedule:  cfg.History.SweepSchedule,
		Retention: cfg.History.Retention,
	}, svc, logger)
	if err != nil {
		return err
	}

	comps := setupServer(logger, cfg, svc, repo, sweeper)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           comps.Handler,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTP.Addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return sweeper.Run(gctx)
	})

	if comps.Limiter != nil {
		g.Go(func() error {
			comps.Limiter.RunCleanup(gctx, time.Minute, logger)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		sctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			return err
		}
		logger.Info("server stopped gracefully")
		return nil
	})

	return g.Wait()
}
