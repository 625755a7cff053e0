package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary over the record store.
// Repositories returned by it use the transaction opened by Begin.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback returns an error if no transaction is active.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	WorkerRepository() WorkerRepository
	AssignmentRepository() AssignmentRepository
	ClientRepository() ClientRepository
	ProductRepository() ProductRepository
	OrderItemRepository() OrderItemRepository
}
