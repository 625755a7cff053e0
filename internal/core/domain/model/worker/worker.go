package worker

import (
	"errors"
	"fmt"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// Capacity is the number of orders a worker can hold at once.
const Capacity = 3

var (
	ErrWorkerIsNotConstructed = errors.New("Worker must be created via NewWorker constructor")
	ErrWorkerIsNotAvailable   = errors.New("worker is not available")
	ErrEmailIsInvalid         = errs.NewValueIsInvalidError("email")
)

// Worker is a workshop master that orders are assigned to.
//
// Business rules:
//   - Name and phone are required, email is optional
//   - available == load < Capacity at all times
//   - Take refuses a worker that is not available
//
// Example usage:
//
//	name, _ := kernel.NewPersonName("Ivan", "Petrov", "Sergeevich")
//	phone, _ := kernel.NewPhone("+79161111111")
//	w, err := worker.NewWorker(name, phone, "master1@example.com")
//	if err != nil {
//	    return err
//	}
//	_ = w.Take() // load 1, still available
type Worker struct {
	id        kernel.ID
	name      kernel.PersonName
	phone     kernel.Phone
	email     string
	load      int
	available bool
	guard     guard.ConstructorGuard
}

// NewWorker creates an idle worker.
func NewWorker(name kernel.PersonName, phone kernel.Phone, email string) (*Worker, error) {
	w := &Worker{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		w.setName(name),
		w.setPhone(phone),
		w.setEmail(email),
	); err != nil {
		return nil, err
	}

	w.recompute()
	return w, nil
}

// RestoreWorker rebuilds a worker from the record store. Availability is
// recomputed from load; any stored availability flag is ignored. A negative
// stored load is clamped to zero.
func RestoreWorker(id kernel.ID, name kernel.PersonName, phone kernel.Phone, email string, load int) (*Worker, error) {
	w := &Worker{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		id.Validate(),
		w.setName(name),
		w.setPhone(phone),
		w.setEmail(email),
	); err != nil {
		return nil, err
	}

	w.id = id
	w.load = max(load, 0)
	w.recompute()
	return w, nil
}

func (w *Worker) Validate() error {
	if w == nil {
		return ErrWorkerIsNotConstructed
	}
	return w.guard.Validate(ErrWorkerIsNotConstructed)
}

// Identify stores the identifier assigned by the record store.
func (w *Worker) Identify(id kernel.ID) error {
	if !w.id.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("worker already has id %s", w.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Worker) IsEqual(other *Worker) bool {
	return other != nil && !w.id.IsZero() && w.id.IsEqual(other.id)
}

func (w *Worker) ID() kernel.ID           { return w.id }
func (w *Worker) Name() kernel.PersonName { return w.name }
func (w *Worker) Phone() kernel.Phone     { return w.phone }
func (w *Worker) Email() string           { return w.email }
func (w *Worker) Load() int               { return w.load }
func (w *Worker) IsAvailable() bool       { return w.available }

// FreeSlots returns how many more orders the worker can take.
func (w *Worker) FreeSlots() int {
	return max(Capacity-w.load, 0)
}

// Take reserves one slot for a new assignment.
func (w *Worker) Take() error {
	if !w.available {
		return ErrWorkerIsNotAvailable
	}
	w.ApplyLoadDelta(1)
	return nil
}

// Release gives one slot back after an assignment ends.
func (w *Worker) Release() {
	w.ApplyLoadDelta(-1)
}

// ApplyLoadDelta changes the load by delta, clamping at zero, and recomputes
// availability.
func (w *Worker) ApplyLoadDelta(delta int) {
	w.load = max(w.load+delta, 0)
	w.recompute()
}

func (w *Worker) String() string {
	return fmt.Sprintf("%s (%d/%d)", w.name.Short(), w.load, Capacity)
}

func (w *Worker) recompute() {
	w.available = w.load < Capacity
}

func (w *Worker) setName(name kernel.PersonName) error {
	if err := name.Validate(); err != nil {
		return err
	}
	w.name = name
	return nil
}

func (w *Worker) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	w.phone = phone
	return nil
}

func (w *Worker) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email != "" && !strings.Contains(email, "@") {
		return ErrEmailIsInvalid
	}
	w.email = email
	return nil
}
