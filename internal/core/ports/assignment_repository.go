package ports

import (
	"context"

	"workshop/internal/core/domain/model/assignment"
	"workshop/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for work assignments.
// Released assignments are kept.
type AssignmentRepository interface {
	Save(ctx context.Context, aggregate *assignment.WorkAssignment) error

	// GetActiveByOrder returns the order's unreleased assignment or
	// errs.ErrObjectNotFound when the order holds no worker.
	GetActiveByOrder(ctx context.Context, orderID kernel.ID) (*assignment.WorkAssignment, error)

	// GetLatestByOrder returns the most recent assignment of the order,
	// released or not.
	GetLatestByOrder(ctx context.Context, orderID kernel.ID) (*assignment.WorkAssignment, error)

	// GetActiveByWorker returns the worker's unreleased assignments ordered by id.
	GetActiveByWorker(ctx context.Context, workerID kernel.ID) ([]*assignment.WorkAssignment, error)
}
