package services

import (
	"errors"
	"fmt"
	"time"

	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/worker"
)

var (
	// ErrNoAvailableWorker is returned when every worker is at capacity. The
	// order stays new and is picked up by a later re-queue.
	ErrNoAvailableWorker = errors.New("no available worker")

	// ErrOrderIsNotNew is returned when dispatch is requested for an order
	// that already left the new status.
	ErrOrderIsNotNew = errors.New("only new orders can be dispatched")
)

// Dispatch is what OrderDispatcher changed: the chosen worker (load already
// increased), the new assignment to save and the order transition to notify.
type Dispatch struct {
	Worker     *worker.Worker
	Assignment *assignment.WorkAssignment
	Transition order.Result
}

// OrderDispatcher assigns new orders to workers.
//
// Business rules:
//   - Only orders in status new are dispatched
//   - The available worker with the lowest load wins, ties go to the worker
//     that comes first in the input
//   - A worker that is not available is never picked
//   - On success the worker's load grows by one and the order is processed
//
// Example usage:
//
//	d, err := dispatcher.Dispatch(o, workers, time.Now())
//	if errors.Is(err, services.ErrNoAvailableWorker) {
//	    // leave the order queued
//	}
type OrderDispatcher struct {
	pool WorkerPool
}

func NewOrderDispatcher(pool WorkerPool) OrderDispatcher {
	return OrderDispatcher{pool: pool}
}

// Dispatch picks a worker for o, creates the work assignment and moves o to
// in_progress. Nothing is changed when an error is returned.
func (d OrderDispatcher) Dispatch(o *order.Order, workers []*worker.Worker, at time.Time) (Dispatch, error) {
	if err := o.Validate(); err != nil {
		return Dispatch{}, err
	}
	if o.Status() != order.New {
		return Dispatch{}, fmt.Errorf("%w: order %s is %s", ErrOrderIsNotNew, o.ID(), o.Status())
	}

	best, err := d.findBestWorker(workers)
	if err != nil {
		return Dispatch{}, err
	}

	a, err := assignment.NewWorkAssignment(o.ID(), best.ID(), at)
	if err != nil {
		return Dispatch{}, err
	}

	if err := best.Take(); err != nil {
		return Dispatch{}, err
	}

	res := o.Process()
	if !res.Changed {
		best.Release()
		return Dispatch{}, res.Warning
	}

	return Dispatch{
		Worker:     best,
		Assignment: a,
		Transition: res,
	}, nil
}

func (d OrderDispatcher) findBestWorker(workers []*worker.Worker) (*worker.Worker, error) {
	available, err := d.pool.Available(workers)
	if err != nil {
		return nil, err
	}
	if len(available) == 0 {
		return nil, ErrNoAvailableWorker
	}
	return available[0], nil
}
