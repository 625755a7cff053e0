package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/worker"
)

// WorkerRepository defines the persistence contract for workers.
type WorkerRepository interface {
	Save(ctx context.Context, aggregate *worker.Worker) error
	Get(ctx context.Context, id kernel.ID) (*worker.Worker, error)

	// GetAll returns every worker ordered by id.
	GetAll(ctx context.Context) ([]*worker.Worker, error)

	// GetAllAvailable returns workers whose load is below capacity ordered by
	// load, then id. This is the retrieval order dispatch ties are broken by.
	GetAllAvailable(ctx context.Context) ([]*worker.Worker, error)

	// Count returns the number of stored workers.
	Count(ctx context.Context) (int64, error)
}
