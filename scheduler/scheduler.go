// Package scheduler runs the background jobs of the protocols API: sweeping idle
// configuration sessions and monitoring the reachability of the plan store.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/giygas/protocols-api/interfaces"
	"github.com/giygas/protocols-api/logging"
	"github.com/go-co-op/gocron"
)

// Compile-time check to ensure Scheduler implements Scheduler interface
var _ interfaces.Scheduler = (*Scheduler)(nil)

const (
	defaultMonitorInterval = time.Hour
	storePingTimeout       = 5 * time.Second
)

// Scheduler handles session expiry and store monitoring using dependency injection
type Scheduler struct {
	sessions        interfaces.SessionStore
	store           interfaces.PlanStore
	idleTimeout     time.Duration
	sweepInterval   time.Duration
	monitorInterval time.Duration
	scheduler       *gocron.Scheduler
}

// NewScheduler creates a new scheduler instance with injected dependencies.
// store may be nil, in which case no monitor job is registered.
func NewScheduler(sessions interfaces.SessionStore, store interfaces.PlanStore,
	idleTimeout, sweepInterval time.Duration) *Scheduler {
	return &Scheduler{
		sessions:        sessions,
		store:           store,
		idleTimeout:     idleTimeout,
		sweepInterval:   sweepInterval,
		monitorInterval: defaultMonitorInterval,
		scheduler:       gocron.NewScheduler(time.Local),
	}
}

// Start registers the jobs and runs the scheduler asynchronously
func (s *Scheduler) Start() error {
	if s.scheduler.IsRunning() {
		return errors.New("scheduler already running")
	}
	if s.idleTimeout <= 0 || s.sweepInterval <= 0 {
		return fmt.Errorf("invalid sweep settings: idle %s, interval %s", s.idleTimeout, s.sweepInterval)
	}

	_, err := s.scheduler.Every(s.sweepInterval).WaitForSchedule().Do(s.sweepIdleSessions)
	if err != nil {
		logging.Error("Failed to schedule session sweep", "error", err)
		return fmt.Errorf("failed to schedule session sweep: %w", err)
	}

	if s.store != nil {
		_, err = s.scheduler.Every(s.monitorInterval).Do(s.checkPlanStore)
		if err != nil {
			logging.Error("Failed to schedule store monitoring", "error", err)
			return fmt.Errorf("failed to schedule store monitoring: %w", err)
		}
	}

	s.scheduler.StartAsync()
	logging.Info("Scheduler started",
		"sweep_interval", s.sweepInterval.String(),
		"idle_timeout", s.idleTimeout.String(),
	)
	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// sweepIdleSessions drops sessions that have not been used within the idle timeout
func (s *Scheduler) sweepIdleSessions() int {
	start := time.Now()
	removed := s.sessions.SweepIdle(s.idleTimeout)
	if removed > 0 {
		logging.Info("Idle sessions removed",
			"removed", removed,
			"remaining", s.sessions.Count(),
			"duration", time.Since(start).String(),
		)
	}
	return removed
}

// checkPlanStore warns when the plan store cannot be reached. Generation keeps
// working without it, so this is only reported.
func (s *Scheduler) checkPlanStore() error {
	ctx, cancel := context.WithTimeout(context.Background(), storePingTimeout)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		logging.Warn("Plan store unreachable, generated plans will not be persisted", "error", err)
		return err
	}
	return nil
}
