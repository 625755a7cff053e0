// Package ports defines the contracts between the workshop core and its
// infrastructure: repositories and the unit of work for the record store,
// the notification service and status change listeners.
package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Orders are never deleted. Lists are ordered by ascending id, which is
// creation order.
type OrderRepository interface {
	// Save inserts an order with a zero id, assigning the store id to the
	// aggregate, and updates any other order.
	Save(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ErrObjectNotFound when no order has the given id.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus returns the orders in any of the given statuses.
	// The re-queue scan uses it with order.New to walk pending orders oldest first.
	GetAllInStatus(ctx context.Context, statuses ...order.Status) ([]*order.Order, error)
}
