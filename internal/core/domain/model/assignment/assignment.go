// Package assignment provides WorkAssignment, the link between an order and
// the worker crafting it.
//
// An assignment is active from creation until the order leaves in_progress.
// Released assignments are kept for history and never deleted.
package assignment

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var (
	ErrAssignmentIsNotConstructed = errors.New("WorkAssignment must be created via NewWorkAssignment constructor")
	ErrAssignmentIsReleased       = errors.New("work assignment is already released")
	ErrAssignedAtIsRequired       = errs.NewValueIsRequiredError("assignedAt")
)

type WorkAssignment struct {
	id         kernel.ID
	orderID    kernel.ID
	workerID   kernel.ID
	assignedAt time.Time
	releasedAt *time.Time
	guard      guard.ConstructorGuard
}

func NewWorkAssignment(orderID, workerID kernel.ID, assignedAt time.Time) (*WorkAssignment, error) {
	a := &WorkAssignment{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		a.setOrderID(orderID),
		a.setWorkerID(workerID),
		a.setAssignedAt(assignedAt),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreWorkAssignment rebuilds an assignment from the record store.
// releasedAt is nil for an active assignment.
func RestoreWorkAssignment(
	id, orderID, workerID kernel.ID,
	assignedAt time.Time,
	releasedAt *time.Time,
) (*WorkAssignment, error) {
	a := &WorkAssignment{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		id.Validate(),
		a.setOrderID(orderID),
		a.setWorkerID(workerID),
		a.setAssignedAt(assignedAt),
	); err != nil {
		return nil, err
	}

	a.id = id
	if releasedAt != nil {
		at := *releasedAt
		a.releasedAt = &at
	}
	return a, nil
}

func (a *WorkAssignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// Identify stores the identifier assigned by the record store.
func (a *WorkAssignment) Identify(id kernel.ID) error {
	if !a.id.IsZero() {
		return errs.NewValueIsInvalidError("work assignment already has an id")
	}
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *WorkAssignment) ID() kernel.ID         { return a.id }
func (a *WorkAssignment) OrderID() kernel.ID    { return a.orderID }
func (a *WorkAssignment) WorkerID() kernel.ID   { return a.workerID }
func (a *WorkAssignment) AssignedAt() time.Time { return a.assignedAt }

// ReleasedAt returns when the assignment ended, nil while it is active.
func (a *WorkAssignment) ReleasedAt() *time.Time {
	if a.releasedAt == nil {
		return nil
	}
	at := *a.releasedAt
	return &at
}

func (a *WorkAssignment) IsActive() bool {
	return a.releasedAt == nil
}

// Release ends the assignment. Releasing twice is an error so that a worker
// slot is never given back more than once.
func (a *WorkAssignment) Release(at time.Time) error {
	if !a.IsActive() {
		return ErrAssignmentIsReleased
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("releasedAt")
	}
	a.releasedAt = &at
	return nil
}

func (a *WorkAssignment) setOrderID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	a.orderID = id
	return nil
}

func (a *WorkAssignment) setWorkerID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("workerId", err)
	}
	a.workerID = id
	return nil
}

func (a *WorkAssignment) setAssignedAt(at time.Time) error {
	if at.IsZero() {
		return ErrAssignedAtIsRequired
	}
	a.assignedAt = at
	return nil
}
