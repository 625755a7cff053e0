package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var (
	ErrProcessOrderCommandIsNotConstructed = errors.New(
		"ProcessOrderCommand must be created via NewProcessOrderCommand constructor",
	)
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
)

// ProcessOrderCommand starts work on a new order without going through
// assignment; the order then holds no worker.
type ProcessOrderCommand struct {
	orderID kernel.ID
	guard   guard.ConstructorGuard
}

func NewProcessOrderCommand(orderID kernel.ID) (ProcessOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ProcessOrderCommand{}, err
	}
	return ProcessOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c ProcessOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderCommandIsNotConstructed)
}

func (c ProcessOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// CancelOrderCommand withdraws an order that is new or in progress.
type CancelOrderCommand struct {
	orderID kernel.ID
	guard   guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID kernel.ID) (CancelOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// CompleteOrderCommand finishes an order in progress.
//
// When issued from a worker's panel the command carries that worker's id and
// is refused unless the order's active assignment belongs to them.
type CompleteOrderCommand struct {
	orderID  kernel.ID
	workerID kernel.ID
	guard    guard.ConstructorGuard
}

func NewCompleteOrderCommand(orderID kernel.ID) (CompleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompleteOrderCommand{}, err
	}
	return CompleteOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// NewCompleteOrderByWorkerCommand is NewCompleteOrderCommand restricted to
// orders assigned to workerID.
func NewCompleteOrderByWorkerCommand(orderID, workerID kernel.ID) (CompleteOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), workerID.Validate()); err != nil {
		return CompleteOrderCommand{}, err
	}
	return CompleteOrderCommand{orderID: orderID, workerID: workerID, guard: guard.NewConstructorGuard()}, nil
}

func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// WorkerID is zero when the command is not restricted to a worker.
func (c CompleteOrderCommand) WorkerID() kernel.ID {
	return c.workerID
}
