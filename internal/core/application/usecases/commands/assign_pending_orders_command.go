package commands

import (
	"errors"

	"workshop/internal/pkg/guard"
)

var ErrAssignPendingOrdersCommandIsNotConstructed = errors.New(
	"AssignPendingOrdersCommand must be created via NewAssignPendingOrdersCommand constructor",
)

// AssignPendingOrdersCommand runs one re-queue scan over new orders.
type AssignPendingOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewAssignPendingOrdersCommand() AssignPendingOrdersCommand {
	return AssignPendingOrdersCommand{guard: guard.NewConstructorGuard()}
}

func (c AssignPendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignPendingOrdersCommandIsNotConstructed)
}
