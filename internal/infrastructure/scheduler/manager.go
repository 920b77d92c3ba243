// Package scheduler runs periodic maintenance jobs using gocron v2.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/darna-inc/darna/internal/shared/biztime"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// BatchJob processes one batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

const sweepTimeout = 10 * time.Minute

type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a scheduler whose wall clock times are in the
// business timezone.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// ParseSweepAt parses an "HH:MM" wall clock time.
func ParseSweepAt(s string) (hour, minute uint, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid sweep time %q, want HH:MM: %w", s, err)
	}
	return uint(t.Hour()), uint(t.Minute()), nil
}

// RegisterSweepJob runs the subscription sweeper once a day at sweepAt.
// With runOnStart the first pass happens as soon as the scheduler starts.
func (m *SchedulerManager) RegisterSweepJob(sweeper BatchJob, sweepAt string, runOnStart bool) error {
	hour, minute, err := ParseSweepAt(sweepAt)
	if err != nil {
		return err
	}

	opts := []gocron.JobOption{
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("subscription", "expire"),
		gocron.WithName("subscription-sweep"),
	}
	if runOnStart {
		opts = append(opts, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	_, err = m.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(hour, minute, 0))),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
			defer cancel()
			m.RunSweep(ctx, sweeper)
		}),
		opts...,
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered subscription sweep job",
		"at", sweepAt,
		"timezone", biztime.Location().String(),
		"run_on_start", runOnStart,
	)
	return nil
}

// RunSweep executes one sweep pass. Failures are logged and not retried;
// the next scheduled run picks up whatever this one missed.
func (m *SchedulerManager) RunSweep(ctx context.Context, sweeper BatchJob) {
	m.logger.Debugw("subscription sweep started")

	startTime := biztime.NowUTC()

	expiredCount, err := sweeper.Execute(ctx)
	if err != nil {
		m.logger.Errorw("failed to sweep expired subscriptions",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	m.logger.Infow("subscription sweep finished",
		"count", expiredCount,
		"duration", time.Since(startTime),
	)
}

// Start starts the scheduler and all registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop waits for running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

// Jobs returns all registered jobs for inspection.
func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
