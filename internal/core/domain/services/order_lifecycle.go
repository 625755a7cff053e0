package services

import (
	"errors"
	"fmt"
	"time"

	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/worker"
	"workshop/internal/pkg/errs"
)

// ErrAssignmentMismatch is returned when the assignment or worker handed to
// OrderLifecycle does not belong to the order.
var ErrAssignmentMismatch = errors.New("work assignment does not match order")

// Holder is the order's active assignment together with its worker. Both are
// nil for orders that never had a worker.
type Holder struct {
	Assignment *assignment.WorkAssignment
	Worker     *worker.Worker
}

// OrderLifecycle applies lifecycle events to an order and carries out the
// side effects the transition asks for.
type OrderLifecycle struct {
	pool WorkerPool
}

func NewOrderLifecycle(pool WorkerPool) OrderLifecycle {
	return OrderLifecycle{pool: pool}
}

// Apply runs event on o. When the transition releases the assignment, the
// holder's assignment is released at the given time and the worker gives one
// slot back. Illegal transitions come back as a Result with a warning and
// leave everything untouched.
//
// The holder and the release time are checked before the order changes, so an
// error means nothing was modified.
func (l OrderLifecycle) Apply(o *order.Order, event order.Event, holder Holder, at time.Time) (order.Result, error) {
	if err := o.Validate(); err != nil {
		return order.Result{}, err
	}

	planned := order.Transition(o.Status(), event)
	if !planned.Changed {
		return planned, nil
	}

	release := planned.Has(order.EffectReleaseAssignment) && holder.Assignment != nil
	if release {
		if err := l.checkRelease(o, holder, at); err != nil {
			return order.Result{}, err
		}
	}

	res := o.Apply(event)

	if release {
		if err := holder.Assignment.Release(at); err != nil {
			return order.Result{}, err
		}
		if err := l.pool.ApplyLoadDelta(holder.Worker, -1); err != nil {
			return order.Result{}, err
		}
	}

	return res, nil
}

func (l OrderLifecycle) checkRelease(o *order.Order, holder Holder, at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("releasedAt")
	}
	if err := holder.Assignment.Validate(); err != nil {
		return err
	}
	if err := holder.Worker.Validate(); err != nil {
		return err
	}
	if !holder.Assignment.IsActive() {
		return assignment.ErrAssignmentIsReleased
	}
	if !holder.Assignment.OrderID().IsEqual(o.ID()) || !holder.Assignment.WorkerID().IsEqual(holder.Worker.ID()) {
		return fmt.Errorf("%w: assignment %s (order %s, worker %s), order %s, worker %s",
			ErrAssignmentMismatch,
			holder.Assignment.ID(), holder.Assignment.OrderID(), holder.Assignment.WorkerID(),
			o.ID(), holder.Worker.ID())
	}
	return nil
}
