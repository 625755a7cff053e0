package queries

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery lists every order with its client and the worker of its
// latest assignment.
//
// Example:
//
//	orders, err := handler.Handle(ctx, NewGetAllOrdersQuery())
//	if err != nil {
//	    return err
//	}
//	for _, o := range orders {
//	    fmt.Printf("#%s %s %s\n", o.ID, o.Status, o.WorkerName)
//	}
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// WorkerRef names the worker of an order. It is nil for orders that never
// had one.
type WorkerRef struct {
	ID   kernel.ID
	Name string
}

type GetAllOrdersQueryResponse struct {
	ID         kernel.ID
	ClientID   kernel.ID
	ClientName string
	CreatedAt  time.Time
	Status     order.Status
	Worker     *WorkerRef
}
