package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrAssignWorkerCommandIsNotConstructed = errors.New(
	"AssignWorkerCommand must be created via NewAssignWorkerCommand constructor",
)

// AssignWorkerCommand asks the scheduler to find a worker for one order.
type AssignWorkerCommand struct {
	orderID kernel.ID
	guard   guard.ConstructorGuard
}

func NewAssignWorkerCommand(orderID kernel.ID) (AssignWorkerCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignWorkerCommand{}, err
	}
	return AssignWorkerCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c AssignWorkerCommand) Validate() error {
	return c.guard.Validate(ErrAssignWorkerCommandIsNotConstructed)
}

func (c AssignWorkerCommand) OrderID() kernel.ID {
	return c.orderID
}
