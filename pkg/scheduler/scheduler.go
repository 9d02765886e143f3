package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
)

// ErrJobRunning is returned when a trigger overlaps an in-flight run
var ErrJobRunning = errors.New("aggregation job already running")

// Scheduler runs the weekly aggregation job on a recurring cadence and
// serves on-demand triggers. At most one run is in flight at a time; an
// overlapping trigger is rejected rather than queued.
type Scheduler struct {
	job        *WeeklyJob
	interval   time.Duration
	runOnStart bool

	running atomic.Bool
	wg      sync.WaitGroup
	cancel  context.CancelFunc
}

// Config holds scheduler cadence settings
type Config struct {
	Interval   time.Duration
	RunOnStart bool
}

// NewScheduler creates a scheduler for the given job
func NewScheduler(job *WeeklyJob, cfg Config) *Scheduler {
	if cfg.Interval == 0 {
		cfg.Interval = 24 * time.Hour
	}

	return &Scheduler{
		job:        job,
		interval:   cfg.Interval,
		runOnStart: cfg.RunOnStart,
	}
}

// Start begins the recurring cadence loop
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		if s.runOnStart {
			s.run(ctx)
		}

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.run(ctx)
			}
		}
	}()

	lgr.Printf("[INFO] scheduler started, interval %v, run on start %v", s.interval, s.runOnStart)
}

// Stop cancels the cadence loop and waits for an in-flight run to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// TriggerNow starts a run in the background. Returns ErrJobRunning when a
// run is already in flight.
func (s *Scheduler) TriggerNow(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrJobRunning
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.running.Store(false)
		s.job.RunOnce(ctx, time.Now())
	}()

	return nil
}

// run executes one guarded job run from the cadence loop
func (s *Scheduler) run(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		lgr.Printf("[WARN] skipping scheduled run, previous run still in flight")
		return
	}
	defer s.running.Store(false)

	s.job.RunOnce(ctx, time.Now())
}
