// Package scheduler runs the periodic history retention sweep.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"numconv/internal/observability/metrics"
)

// Purger removes history entries older than retention and reports how
// many were removed. *calc.Service satisfies it.
type Purger interface {
	PurgeExpired(ctx context.Context, retention time.Duration) (int, error)
}

// Config controls the sweep.
type Config struct {
	// Schedule is a cron expression or descriptor, e.g. "@every 10m".
	Schedule string
	// Retention is passed to Purger. Zero disables the sweep.
	Retention time.Duration
	// Timeout bounds a single run. Defaults to 30s.
	Timeout time.Duration
	// Location for schedule evaluation. Defaults to UTC.
	Location *time.Location
}

// Sweeper drives a Purger on a cron schedule.
type Sweeper struct {
	cfg    Config
	purger Purger
	logger *slog.Logger
	cron   *cron.Cron

	running     atomic.Bool
	lastSuccess atomic.Int64
	lastRemoved atomic.Int64
}

// New validates the schedule and returns a stopped Sweeper.
func New(cfg Config, purger Purger, logger *slog.Logger) (*Sweeper, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	s := &Sweeper{
		cfg:    cfg,
		purger: purger,
		logger: logger,
		cron:   cron.New(cron.WithLocation(cfg.Location)),
	}
	if !s.Enabled() {
		return s, nil
	}
	if _, err := s.cron.AddFunc(cfg.Schedule, func() { s.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("add sweep job %q: %w", cfg.Schedule, err)
	}
	return s, nil
}

// Enabled reports whether a positive retention was configured.
func (s *Sweeper) Enabled() bool { return s.cfg.Retention > 0 }

// Run starts the schedule and blocks until ctx is cancelled, then waits
// for an in-flight run to finish.
func (s *Sweeper) Run(ctx context.Context) error {
	if !s.Enabled() {
		s.logger.Info("history sweep disabled")
		<-ctx.Done()
		return nil
	}

	s.cron.Start()
	s.running.Store(true)
	s.logger.Info("history sweep started",
		slog.String("schedule", s.cfg.Schedule),
		slog.Duration("retention", s.cfg.Retention))

	<-ctx.Done()
	s.running.Store(false)
	<-s.cron.Stop().Done()
	s.logger.Info("history sweep stopped")
	return nil
}

// RunOnce performs a single sweep.
func (s *Sweeper) RunOnce(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	start := time.Now()
	removed, err := s.purger.PurgeExpired(ctx, s.cfg.Retention)
	if err != nil {
		metrics.RecordSweep(metrics.SweepFailure, time.Since(start), time.Now())
		s.logger.Error("history sweep failed", slog.Any("error", err))
		return 0, err
	}

	now := time.Now()
	metrics.RecordSweep(metrics.SweepSuccess, now.Sub(start), now)
	s.lastSuccess.Store(now.UnixNano())
	s.lastRemoved.Store(int64(removed))
	s.logger.Debug("history sweep completed",
		slog.Int("removed", removed),
		slog.Duration("duration", now.Sub(start)))
	return removed, nil
}

// Status summarizes the sweeper for health reporting.
type Status struct {
	Enabled     bool
	Running     bool
	LastSuccess time.Time
	LastRemoved int
}

// Status returns the current state.
func (s *Sweeper) Status() Status {
	st := Status{
		Enabled:     s.Enabled(),
		Running:     s.running.Load(),
		LastRemoved: int(s.lastRemoved.Load()),
	}
	if ns := s.lastSuccess.Load(); ns != 0 {
		st.LastSuccess = time.Unix(0, ns)
	}
	return st
}
