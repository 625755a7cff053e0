// Package guard provides the constructor guard embedded by aggregates, value
// objects and commands so that a zero value can be told apart from an instance
// built by its constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built through its constructor.
//
// Embed it as a private field and set it in the constructor:
//
//	type Worker struct {
//	    id    kernel.ID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewWorker(...) (*Worker, error) {
//	    w := &Worker{guard: guard.NewConstructorGuard()}
//	    ...
//	}
//
//	func (w *Worker) Validate() error {
//	    return w.guard.Validate(ErrWorkerIsNotConstructed)
//	}
//
// A zero-value Worker then fails Validate with ErrWorkerIsNotConstructed.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports the owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the owner was not created through its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
