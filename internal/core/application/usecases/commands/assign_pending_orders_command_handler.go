package commands

import (
	"context"
	"log/slog"
)

// AssignPendingOrdersCommandHandler fills one free worker slot with the
// oldest new order that can be assigned. It is run by the pending order job;
// lifecycle handlers run the same scan right after they free a worker.
type AssignPendingOrdersCommandHandler struct {
	lock      *SchedulerLock
	scheduler scheduler
}

func NewAssignPendingOrdersCommandHandler(
	uowFactory SchedulingUoWFactory,
	publisher StatusChangePublisher,
	lock *SchedulerLock,
	logger *slog.Logger,
) AssignPendingOrdersCommandHandler {
	return AssignPendingOrdersCommandHandler{
		lock:      lock,
		scheduler: newScheduler(uowFactory, publisher, logger),
	}
}

// Handle returns AssignmentSkipped with ErrNoPendingOrders as warning when no
// order is waiting, and AssignmentPending when orders wait but every worker
// is busy.
func (h AssignPendingOrdersCommandHandler) Handle(
	ctx context.Context,
	command AssignPendingOrdersCommand,
) (AssignmentOutcome, error) {
	if err := command.Validate(); err != nil {
		return AssignmentOutcome{}, err
	}

	h.lock.mu.Lock()
	defer h.lock.mu.Unlock()

	return h.scheduler.fillSlot(ctx)
}
