package commands

import (
	"context"
	"log/slog"
)

// AssignWorkerCommandHandler assigns a single order.
//
// Outcomes:
//   - AssignmentAssigned: the order is in progress with the least loaded worker
//   - AssignmentPending: every worker is at capacity, the order stays new
//   - AssignmentSkipped: the order is not new; Warning says why
//
// Example:
//
//	cmd, _ := NewAssignWorkerCommand(orderID)
//	outcome, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // not found or persistence failure
//	}
//	if outcome.Status == AssignmentPending {
//	    // retried by the pending order job
//	}
type AssignWorkerCommandHandler struct {
	lock      *SchedulerLock
	scheduler scheduler
}

func NewAssignWorkerCommandHandler(
	uowFactory SchedulingUoWFactory,
	publisher StatusChangePublisher,
	lock *SchedulerLock,
	logger *slog.Logger,
) AssignWorkerCommandHandler {
	return AssignWorkerCommandHandler{
		lock:      lock,
		scheduler: newScheduler(uowFactory, publisher, logger),
	}
}

func (h AssignWorkerCommandHandler) Handle(ctx context.Context, command AssignWorkerCommand) (AssignmentOutcome, error) {
	if err := command.Validate(); err != nil {
		return AssignmentOutcome{}, err
	}

	h.lock.mu.Lock()
	defer h.lock.mu.Unlock()

	return h.scheduler.assign(ctx, command.OrderID())
}
