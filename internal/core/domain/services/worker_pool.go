package services

import (
	"slices"

	"workshop/internal/core/domain/model/worker"
)

// WorkerPool tracks which workers can take another order.
//
// Availability is never decided here: it is read from the worker, which
// recomputes it from load on every change.
type WorkerPool struct{}

func NewWorkerPool() WorkerPool {
	return WorkerPool{}
}

// Available returns the available workers ordered by ascending load. Workers
// with equal load keep the order they were passed in.
func (WorkerPool) Available(workers []*worker.Worker) ([]*worker.Worker, error) {
	available := make([]*worker.Worker, 0, len(workers))
	for _, w := range workers {
		if err := w.Validate(); err != nil {
			return nil, err
		}
		if w.IsAvailable() {
			available = append(available, w)
		}
	}

	slices.SortStableFunc(available, func(a, b *worker.Worker) int {
		return a.Load() - b.Load()
	})
	return available, nil
}

// ApplyLoadDelta changes the worker's load and recomputes availability.
func (WorkerPool) ApplyLoadDelta(w *worker.Worker, delta int) error {
	if err := w.Validate(); err != nil {
		return err
	}
	w.ApplyLoadDelta(delta)
	return nil
}
