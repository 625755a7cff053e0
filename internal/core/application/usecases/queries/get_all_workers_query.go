// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetAllWorkersQueryIsNotConstructed = errors.New(
	"GetAllWorkersQuery must be created via NewGetAllWorkersQuery constructor",
)

// GetAllWorkersQuery lists every master with their current load.
//
// Example:
//
//	query := NewGetAllWorkersQuery()
//	handler := NewGetAllWorkersQueryHandler(db)
//
//	workers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve workers: %w", err)
//	}
//
//	for _, w := range workers {
//	    fmt.Printf("%s %d/%d\n", w.Name, w.Load, w.Capacity)
//	}
type GetAllWorkersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllWorkersQuery() GetAllWorkersQuery {
	return GetAllWorkersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllWorkersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllWorkersQueryIsNotConstructed)
}

// GetAllWorkersQueryResponse is a worker in the read model.
type GetAllWorkersQueryResponse struct {
	ID          kernel.ID
	Name        string
	Phone       string
	Email       string
	Load        int
	Capacity    int
	IsAvailable bool
}
