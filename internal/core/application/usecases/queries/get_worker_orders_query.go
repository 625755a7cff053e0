package queries

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/guard"
)

var ErrGetWorkerOrdersQueryIsNotConstructed = errors.New(
	"GetWorkerOrdersQuery must be created via NewGetWorkerOrdersQuery constructor",
)

// GetWorkerOrdersQuery is the worker panel: the orders a worker currently
// holds, oldest first.
type GetWorkerOrdersQuery struct {
	workerID kernel.ID
	guard    guard.ConstructorGuard
}

func NewGetWorkerOrdersQuery(workerID kernel.ID) (GetWorkerOrdersQuery, error) {
	if err := workerID.Validate(); err != nil {
		return GetWorkerOrdersQuery{}, err
	}
	return GetWorkerOrdersQuery{workerID: workerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetWorkerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkerOrdersQueryIsNotConstructed)
}

func (q GetWorkerOrdersQuery) WorkerID() kernel.ID {
	return q.workerID
}

type GetWorkerOrdersQueryResponse struct {
	OrderID    kernel.ID
	ClientName string
	CreatedAt  time.Time
	AssignedAt time.Time
	Status     order.Status
}
