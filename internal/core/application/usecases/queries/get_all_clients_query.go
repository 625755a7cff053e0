package queries

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetAllClientsQueryIsNotConstructed = errors.New(
	"GetAllClientsQuery must be created via NewGetAllClientsQuery constructor",
)

// GetAllClientsQuery lists clients with the number of orders each placed.
type GetAllClientsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllClientsQuery() GetAllClientsQuery {
	return GetAllClientsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllClientsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllClientsQueryIsNotConstructed)
}

type GetAllClientsQueryResponse struct {
	ID         kernel.ID
	Name       string
	Phone      string
	Email      string
	OrderCount int
}
