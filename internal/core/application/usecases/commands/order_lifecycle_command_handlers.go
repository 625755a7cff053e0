package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/services"
	"workshop/internal/pkg/errs"
)

// ErrOrderIsNotAssignedToWorker is returned when a worker tries to complete
// an order that some other worker (or nobody) holds.
var ErrOrderIsNotAssignedToWorker = errors.New("order is not assigned to this worker")

// LifecycleOutcome is the result of a lifecycle command.
//
// Changed is false for operations that are not valid from the order's status;
// Warning then holds an *order.IllegalTransitionError. Requeue is set when
// the change freed a worker and the pending order scan ran.
type LifecycleOutcome struct {
	OrderID kernel.ID
	From    order.Status
	To      order.Status
	Changed bool
	Warning error
	Requeue *AssignmentOutcome
}

// lifecycleHandler is shared by the process, cancel and complete handlers.
type lifecycleHandler struct {
	uowFactory SchedulingUoWFactory
	lifecycle  services.OrderLifecycle
	publisher  StatusChangePublisher
	lock       *SchedulerLock
	scheduler  scheduler
	logger     *slog.Logger
}

func newLifecycleHandler(
	uowFactory SchedulingUoWFactory,
	publisher StatusChangePublisher,
	lock *SchedulerLock,
	logger *slog.Logger,
) lifecycleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return lifecycleHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewOrderLifecycle(services.NewWorkerPool()),
		publisher:  publisher,
		lock:       lock,
		scheduler:  newScheduler(uowFactory, publisher, logger),
		logger:     logger.With("component", "order_lifecycle"),
	}
}

// run applies event to the order in one transaction, publishes the change
// after commit and, if a worker was freed, fills the slot with a pending order.
// A non-zero workerID restricts the operation to that worker's orders.
func (h lifecycleHandler) run(
	ctx context.Context,
	orderID kernel.ID,
	event order.Event,
	workerID kernel.ID,
) (LifecycleOutcome, error) {
	h.lock.mu.Lock()
	defer h.lock.mu.Unlock()

	outcome, released, err := h.apply(ctx, orderID, event, workerID)
	if err != nil {
		return outcome, err
	}

	if !outcome.Changed {
		h.logger.WarnContext(ctx, "order lifecycle operation ignored",
			slog.Int64("order_id", orderID.Int64()),
			slog.String("event", event.String()),
			slog.String("status", outcome.From.String()),
			slog.Any("warning", outcome.Warning),
		)
		return outcome, nil
	}

	if released {
		requeue, err := h.scheduler.fillSlot(ctx)
		if err != nil {
			// The lifecycle change is committed; the pending order job retries.
			h.logger.ErrorContext(ctx, "re-queue after release failed",
				slog.Int64("order_id", orderID.Int64()),
				slog.Any("error", err),
			)
		} else {
			outcome.Requeue = &requeue
		}
	}

	return outcome, nil
}

func (h lifecycleHandler) apply(
	ctx context.Context,
	orderID kernel.ID,
	event order.Event,
	workerID kernel.ID,
) (LifecycleOutcome, bool, error) {
	outcome := LifecycleOutcome{OrderID: orderID}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return outcome, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	workerRepo := uow.WorkerRepository()
	assignmentRepo := uow.AssignmentRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return outcome, false, err
	}

	var holder services.Holder
	if o.Status().HoldsWorker() {
		holder, err = h.loadHolder(ctx, uow, o)
		if err != nil {
			return outcome, false, err
		}
	}

	if !workerID.IsZero() && (holder.Worker == nil || !holder.Worker.ID().IsEqual(workerID)) {
		return outcome, false, fmt.Errorf("%w: order %s, worker %s", ErrOrderIsNotAssignedToWorker, orderID, workerID)
	}

	res, err := h.lifecycle.Apply(o, event, holder, time.Now().UTC())
	if err != nil {
		return outcome, false, err
	}

	outcome.From = res.From
	outcome.To = res.To
	outcome.Changed = res.Changed
	outcome.Warning = res.Warning
	if !res.Changed {
		return outcome, false, nil
	}

	released := res.Has(order.EffectReleaseAssignment) && holder.Assignment != nil
	if released {
		if err = assignmentRepo.Save(ctx, holder.Assignment); err != nil {
			return outcome, false, err
		}
		if err = workerRepo.Save(ctx, holder.Worker); err != nil {
			return outcome, false, err
		}
	}
	if err = orderRepo.Save(ctx, o); err != nil {
		return outcome, false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return outcome, false, err
	}

	h.publisher.Publish(ctx, o.PullStatusChanges()...)
	return outcome, released, nil
}

// loadHolder finds the order's active assignment and its worker. Orders
// started without assignment have none.
func (h lifecycleHandler) loadHolder(ctx context.Context, uow SchedulingUoW, o *order.Order) (services.Holder, error) {
	a, err := uow.AssignmentRepository().GetActiveByOrder(ctx, o.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return services.Holder{}, nil
	}
	if err != nil {
		return services.Holder{}, err
	}

	w, err := uow.WorkerRepository().Get(ctx, a.WorkerID())
	if err != nil {
		return services.Holder{}, err
	}

	return services.Holder{Assignment: a, Worker: w}, nil
}

// ProcessOrderCommandHandler moves a new order to in_progress.
type ProcessOrderCommandHandler struct {
	h lifecycleHandler
}

func NewProcessOrderCommandHandler(
	uowFactory SchedulingUoWFactory,
	publisher StatusChangePublisher,
	lock *SchedulerLock,
	logger *slog.Logger,
) ProcessOrderCommandHandler {
	return ProcessOrderCommandHandler{h: newLifecycleHandler(uowFactory, publisher, lock, logger)}
}

func (h ProcessOrderCommandHandler) Handle(ctx context.Context, command ProcessOrderCommand) (LifecycleOutcome, error) {
	if err := command.Validate(); err != nil {
		return LifecycleOutcome{}, err
	}
	return h.h.run(ctx, command.OrderID(), order.EventProcess, kernel.ID{})
}

// CancelOrderCommandHandler cancels an order; an order in progress gives its
// worker slot back and the slot is offered to the oldest pending order.
type CancelOrderCommandHandler struct {
	h lifecycleHandler
}

func NewCancelOrderCommandHandler(
	uowFactory SchedulingUoWFactory,
	publisher StatusChangePublisher,
	lock *SchedulerLock,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{h: newLifecycleHandler(uowFactory, publisher, lock, logger)}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) (LifecycleOutcome, error) {
	if err := command.Validate(); err != nil {
		return LifecycleOutcome{}, err
	}
	return h.h.run(ctx, command.OrderID(), order.EventCancel, kernel.ID{})
}

// CompleteOrderCommandHandler completes an order in progress, releases its
// worker and offers the slot to the oldest pending order.
type CompleteOrderCommandHandler struct {
	h lifecycleHandler
}

func NewCompleteOrderCommandHandler(
	uowFactory SchedulingUoWFactory,
	publisher StatusChangePublisher,
	lock *SchedulerLock,
	logger *slog.Logger,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{h: newLifecycleHandler(uowFactory, publisher, lock, logger)}
}

func (h CompleteOrderCommandHandler) Handle(ctx context.Context, command CompleteOrderCommand) (LifecycleOutcome, error) {
	if err := command.Validate(); err != nil {
		return LifecycleOutcome{}, err
	}
	return h.h.run(ctx, command.OrderID(), order.EventComplete, command.WorkerID())
}
