package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Task is one scheduled unit of work. Errors are logged, never fatal;
// the next tick simply tries again.
type Task func(ctx context.Context) error

// Scheduler re-runs the correlation on a fixed cadence and refreshes
// the event snapshot on a slower one. The engine itself exposes no
// timers; this is the collaborator that owns them. Overlapping
// recomputes are skipped rather than queued.
type Scheduler struct {
	recomputeEvery time.Duration
	refreshEvery   time.Duration
	recompute      Task
	refresh        Task
	log            *zap.Logger

	busy atomic.Bool
}

func New(recomputeEvery, refreshEvery time.Duration, recompute, refresh Task, log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		recomputeEvery: recomputeEvery,
		refreshEvery:   refreshEvery,
		recompute:      recompute,
		refresh:        refresh,
		log:            log,
	}
}

// Run blocks until ctx is cancelled, firing both cadences. An initial
// recompute runs immediately so a fresh process has prices before the
// first tick.
func (s *Scheduler) Run(ctx context.Context) {
	recomputeTicker := time.NewTicker(s.recomputeEvery)
	defer recomputeTicker.Stop()
	refreshTicker := time.NewTicker(s.refreshEvery)
	defer refreshTicker.Stop()

	s.log.Info("scheduler started",
		zap.Duration("recompute_every", s.recomputeEvery),
		zap.Duration("refresh_every", s.refreshEvery))

	s.runRecompute(ctx)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return
		case <-refreshTicker.C:
			if s.refresh == nil {
				continue
			}
			if err := s.refresh(ctx); err != nil {
				s.log.Warn("event refresh failed", zap.Error(err))
			}
		case <-recomputeTicker.C:
			s.runRecompute(ctx)
		}
	}
}

// runRecompute skips the tick when the previous run is still going.
func (s *Scheduler) runRecompute(ctx context.Context) {
	if s.recompute == nil {
		return
	}
	if !s.busy.CompareAndSwap(false, true) {
		s.log.Warn("recompute still running, skipping tick")
		return
	}
	defer s.busy.Store(false)

	if err := s.recompute(ctx); err != nil {
		s.log.Warn("recompute failed", zap.Error(err))
	}
}
