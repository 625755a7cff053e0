package commands

import (
	"errors"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrCreateWorkerCommandIsNotConstructed = errors.New(
	"CreateWorkerCommand must be created via NewCreateWorkerCommand constructor",
)

// CreateWorkerCommand hires a new master. New workers start idle.
type CreateWorkerCommand struct { //nolint:recvcheck //using for validation
	name  kernel.PersonName
	phone kernel.Phone
	email string

	guard guard.ConstructorGuard
}

func NewCreateWorkerCommand(name kernel.PersonName, phone kernel.Phone, email string) (CreateWorkerCommand, error) {
	if err := errors.Join(name.Validate(), phone.Validate()); err != nil {
		return CreateWorkerCommand{}, err
	}

	return CreateWorkerCommand{
		name:  name,
		phone: phone,
		email: strings.TrimSpace(email),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateWorkerCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkerCommandIsNotConstructed)
}

func (c CreateWorkerCommand) Name() kernel.PersonName { return c.name }
func (c CreateWorkerCommand) Phone() kernel.Phone     { return c.phone }
func (c CreateWorkerCommand) Email() string           { return c.email }
