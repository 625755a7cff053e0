package queries

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery is the status page of a single order: who ordered it,
// when, where it is in its lifecycle, who works on it and what it contains.
type GetOrderStatusQuery struct {
	orderID kernel.ID
	guard   guard.ConstructorGuard
}

func NewGetOrderStatusQuery(orderID kernel.ID) (GetOrderStatusQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderStatusQuery{}, err
	}
	return GetOrderStatusQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

func (q GetOrderStatusQuery) OrderID() kernel.ID {
	return q.orderID
}

// OrderItemView is one line of an order.
type OrderItemView struct {
	ProductID   kernel.ID
	Description string
	Note        string
}

// GetOrderStatusQueryResponse is the order status view. Worker is the
// worker of the latest assignment, kept after completion.
type GetOrderStatusQueryResponse struct {
	ID          kernel.ID
	ClientName  string
	ClientPhone string
	CreatedAt   time.Time
	Status      order.Status
	Worker      *WorkerRef
	Items       []OrderItemView
}
