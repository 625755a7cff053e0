package jobs

import (
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// newCron returns a seconds-precision scheduler that skips a tick while the
// previous run of the same job is still going.
func newCron() *cron.Cron {
	return cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
}

// Schedules holds the cron expressions (with seconds) of the jobs. Empty
// fields use the job defaults.
type Schedules struct {
	PendingOrders string
	Stats         string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingOrderJob *PendingOrderAssignmentJob
	statsJob        *TransitionStatsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	assigner PendingOrdersAssigner,
	stats StatsSource,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobManager{
		pendingOrderJob: NewPendingOrderAssignmentJob(assigner, schedules.PendingOrders, logger),
		statsJob:        NewTransitionStatsJob(stats, schedules.Stats, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingOrderJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending order assignment job: %w", err)
	}

	if err := jm.statsJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.pendingOrderJob.Stop()
		return fmt.Errorf("failed to start transition stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statsJob.Stop()
	jm.pendingOrderJob.Stop()
}
