package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/services"
)

// ErrNoPendingOrders is the warning of a re-queue scan that found no order
// waiting for a worker.
var ErrNoPendingOrders = errors.New("no pending orders")

// AssignmentStatus is how an assignment attempt ended.
type AssignmentStatus string

const (
	// AssignmentAssigned means a worker took the order and it is in progress.
	AssignmentAssigned AssignmentStatus = "assigned"
	// AssignmentPending means every worker is busy; the order stays new and
	// is retried by the next re-queue.
	AssignmentPending AssignmentStatus = "pending"
	// AssignmentSkipped means there was nothing to assign: the order is not
	// new any more, or no order was waiting.
	AssignmentSkipped AssignmentStatus = "skipped"
)

// AssignmentOutcome describes an assignment attempt. WorkerID is zero unless
// Status is AssignmentAssigned.
type AssignmentOutcome struct {
	OrderID  kernel.ID
	WorkerID kernel.ID
	Status   AssignmentStatus
	Warning  error
}

// SchedulerLock serializes every scheduler operation of the process:
// assignments, re-queue scans and lifecycle changes that free a worker.
// There is no guarantee across processes.
type SchedulerLock struct {
	mu sync.Mutex
}

func NewSchedulerLock() *SchedulerLock {
	return &SchedulerLock{}
}

// scheduler holds the assignment logic shared by the command handlers. Its
// methods expect the caller to hold the SchedulerLock.
type scheduler struct {
	uowFactory SchedulingUoWFactory
	dispatcher services.OrderDispatcher
	publisher  StatusChangePublisher
	logger     *slog.Logger
}

func newScheduler(uowFactory SchedulingUoWFactory, publisher StatusChangePublisher, logger *slog.Logger) scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return scheduler{
		uowFactory: uowFactory,
		dispatcher: services.NewOrderDispatcher(services.NewWorkerPool()),
		publisher:  publisher,
		logger:     logger.With("component", "scheduler"),
	}
}

// assign tries to give the order to the least loaded available worker in a
// transaction of its own.
func (s scheduler) assign(ctx context.Context, orderID kernel.ID) (AssignmentOutcome, error) {
	outcome := AssignmentOutcome{OrderID: orderID}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return outcome, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	workerRepo := uow.WorkerRepository()
	assignmentRepo := uow.AssignmentRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return outcome, err
	}
	if o.Status() != order.New {
		outcome.Status = AssignmentSkipped
		outcome.Warning = &order.IllegalTransitionError{From: o.Status(), Event: order.EventProcess}
		return outcome, nil
	}

	workers, err := workerRepo.GetAllAvailable(ctx)
	if err != nil {
		return outcome, err
	}

	d, err := s.dispatcher.Dispatch(o, workers, time.Now().UTC())
	if errors.Is(err, services.ErrNoAvailableWorker) {
		outcome.Status = AssignmentPending
		outcome.Warning = err
		return outcome, nil
	}
	if err != nil {
		return outcome, err
	}

	if err = assignmentRepo.Save(ctx, d.Assignment); err != nil {
		return outcome, err
	}
	if err = workerRepo.Save(ctx, d.Worker); err != nil {
		return outcome, err
	}
	if err = orderRepo.Save(ctx, o); err != nil {
		return outcome, err
	}

	if err = uow.Commit(ctx); err != nil {
		return outcome, err
	}

	s.publisher.Publish(ctx, o.PullStatusChanges()...)

	outcome.Status = AssignmentAssigned
	outcome.WorkerID = d.Worker.ID()
	s.logger.InfoContext(ctx, "order assigned",
		slog.Int64("order_id", orderID.Int64()),
		slog.Int64("worker_id", d.Worker.ID().Int64()),
		slog.Int("worker_load", d.Worker.Load()),
	)
	return outcome, nil
}

// fillSlot walks new orders oldest first and assigns the first one that a
// worker can take. It stops after one success: a completion frees exactly one
// slot.
func (s scheduler) fillSlot(ctx context.Context) (AssignmentOutcome, error) {
	pending, err := s.pendingOrderIDs(ctx)
	if err != nil {
		return AssignmentOutcome{}, err
	}
	if len(pending) == 0 {
		return AssignmentOutcome{Status: AssignmentSkipped, Warning: ErrNoPendingOrders}, nil
	}

	for _, id := range pending {
		outcome, err := s.assign(ctx, id)
		if err != nil {
			return outcome, fmt.Errorf("assign pending order %s: %w", id, err)
		}

		switch outcome.Status {
		case AssignmentAssigned, AssignmentPending:
			// Pending means no worker is free, later orders would fail too.
			return outcome, nil
		case AssignmentSkipped:
			continue
		}
	}

	return AssignmentOutcome{Status: AssignmentSkipped, Warning: ErrNoPendingOrders}, nil
}

func (s scheduler) pendingOrderIDs(ctx context.Context) ([]kernel.ID, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllInStatus(ctx, order.New)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.ID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	slices.SortFunc(ids, kernel.ID.Compare)
	return ids, nil
}
