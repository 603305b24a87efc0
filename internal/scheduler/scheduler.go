package scheduler

import (
	"context"
	"log/slog"
	"time"

	"podcast_tracker/internal/domain"
)

// Syncer defines the interface for periodic reconciliation runs.
type Syncer interface {
	RefreshFeeds(ctx context.Context) (*domain.SyncReport, error)
}

// Scheduler runs feed refreshes at a fixed interval, with one run
// triggered immediately at startup. Each run gets its own timeout so a
// slow feed cannot stall the loop past the next tick indefinitely.
type Scheduler struct {
	syncer     Syncer
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(syncer Syncer, interval time.Duration, logger *slog.Logger) *Scheduler {
	runTimeout := 10 * time.Minute
	if interval < runTimeout {
		runTimeout = interval
	}
	return &Scheduler{
		syncer:     syncer,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runRefresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runRefresh(ctx)
		}
	}
}

func (s *Scheduler) runRefresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	started := time.Now()
	report, err := s.syncer.RefreshFeeds(refreshCtx)
	if err != nil {
		s.logger.Error("feed refresh failed", "error", err, "duration", time.Since(started))
		return
	}

	if len(report.Errors) > 0 {
		s.logger.Warn("feed refresh finished with errors",
			"errors", len(report.Errors),
			"duration", time.Since(started),
		)
		return
	}

	s.logger.Debug("feed refresh finished",
		"episodes_added", report.EpisodesAdded,
		"episodes_updated", report.EpisodesUpdated,
		"duration", time.Since(started),
	)
}
