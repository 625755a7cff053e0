package jobs

import (
	"context"
	"errors"
	"log/slog"

	"workshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultPendingOrderSchedule runs the pending order scan every ten seconds.
const DefaultPendingOrderSchedule = "*/10 * * * * *"

// maxAssignmentsPerRun bounds how many orders one tick may assign.
const maxAssignmentsPerRun = 100

type PendingOrdersAssigner interface {
	Handle(ctx context.Context, command commands.AssignPendingOrdersCommand) (commands.AssignmentOutcome, error)
}

// PendingOrderAssignmentJob picks up new orders that are still waiting for a
// worker. Lifecycle commands re-queue as soon as a worker is freed; this job
// catches orders that were left pending with no such event, e.g. after a
// worker was created or after a restart.
type PendingOrderAssignmentJob struct {
	handler  PendingOrdersAssigner
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewPendingOrderAssignmentJob(handler PendingOrdersAssigner, schedule string, logger *slog.Logger) *PendingOrderAssignmentJob {
	if schedule == "" {
		schedule = DefaultPendingOrderSchedule
	}
	return &PendingOrderAssignmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     newCron(),
		logger:   logger.With("component", "pending_order_assignment_job"),
	}
}

// Start begins running the job on its schedule.
func (j *PendingOrderAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order assignment job started", "schedule", j.schedule)
	return nil
}

// RunOnce assigns pending orders until none is waiting, every worker is busy
// or the per-run limit is reached. It returns the number of assigned orders.
func (j *PendingOrderAssignmentJob) RunOnce(ctx context.Context) int {
	assigned := 0
	for assigned < maxAssignmentsPerRun {
		outcome, err := j.handler.Handle(ctx, commands.NewAssignPendingOrdersCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending order assignment failed", "error", err)
			break
		}
		if outcome.Status != commands.AssignmentAssigned {
			if outcome.Warning != nil && !errors.Is(outcome.Warning, commands.ErrNoPendingOrders) {
				j.logger.DebugContext(ctx, "Pending orders wait for a worker", "reason", outcome.Warning)
			}
			break
		}
		assigned++
	}

	if assigned > 0 {
		j.logger.InfoContext(ctx, "Pending orders assigned", "count", assigned)
	}
	return assigned
}

// Stop stops the job and waits for a running tick to finish.
func (j *PendingOrderAssignmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pending order assignment job stopped")
}
