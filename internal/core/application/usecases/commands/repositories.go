// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every handler validates its command, runs inside one unit of work and
// publishes order status changes only after the commit succeeded.
package commands

import (
	"context"

	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks for the narrowest set of repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	WorkerRepoFactory interface {
		WorkerRepository() ports.WorkerRepository
	}

	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// CatalogRepoFactory gives access to products and the items that
	// attach them to orders.
	CatalogRepoFactory interface {
		ProductRepository() ports.ProductRepository
		OrderItemRepository() ports.OrderItemRepository
	}

	// WorkerUoW manages transactions for worker-only operations.
	WorkerUoW interface {
		TxManager
		WorkerRepoFactory
	}

	WorkerUoWFactory interface {
		Create() WorkerUoW
	}

	// SchedulingUoW covers everything assignment and lifecycle operations
	// touch: the order, its work assignment and the worker.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, id)
	//   workers, err := uow.WorkerRepository().GetAllAvailable(ctx)
	//   // ... dispatch, save order, worker and assignment
	//
	//   err = uow.Commit(ctx)
	SchedulingUoW interface {
		TxManager
		OrderRepoFactory
		WorkerRepoFactory
		AssignmentRepoFactory
	}

	SchedulingUoWFactory interface {
		Create() SchedulingUoW
	}

	// OrderIntakeUoW is used when a client places an order: the client and
	// product are looked up or created together with the order and its item.
	OrderIntakeUoW interface {
		TxManager
		OrderRepoFactory
		ClientRepoFactory
		CatalogRepoFactory
	}

	OrderIntakeUoWFactory interface {
		Create() OrderIntakeUoW
	}

	// SeedUoW fills an empty workshop with its starting workers and catalog.
	SeedUoW interface {
		TxManager
		WorkerRepoFactory
		CatalogRepoFactory
	}

	SeedUoWFactory interface {
		Create() SeedUoW
	}
)

// StatusChangePublisher receives order status changes after commit.
// It is implemented by notifier.Notifier.
type StatusChangePublisher interface {
	Publish(ctx context.Context, changes ...order.StatusChanged)
}
