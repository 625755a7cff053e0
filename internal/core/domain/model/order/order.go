package order

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsAlreadyIdentified is returned by Identify when the order already
	// carries a store identifier.
	ErrOrderIsAlreadyIdentified = errors.New("order already has an id")

	ErrCreatedAtIsRequired = errs.NewValueIsRequiredError("createdAt")
)

// StatusChanged is recorded by the aggregate every time its status actually
// changes. Events are kept until PullStatusChanges drains them, which the
// application layer does only after the transaction has been committed.
type StatusChanged struct {
	OrderID  kernel.ID
	ClientID kernel.ID
	From     Status
	To       Status
	At       time.Time
}

// Order is the aggregate root of the workshop: a client's request for a
// crafted item, moving through the lifecycle described by Transition.
//
// Order follows these invariants:
//   - Must reference a client
//   - Status only moves along the edges of the transition table
//   - Illegal operations leave the order untouched and record nothing
//   - The store identifier is assigned once
type Order struct {
	id        kernel.ID
	clientID  kernel.ID
	createdAt time.Time
	status    Status

	changes []StatusChanged

	guard guard.ConstructorGuard
}

// NewOrder creates an order in status New for the given client.
//
// The returned order has a zero ID until the repository saves it.
//
// Example:
//
//	o, err := order.NewOrder(client.ID(), time.Now())
//	if err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().Save(ctx, o); err != nil {
//	    return err
//	}
func NewOrder(clientID kernel.ID, createdAt time.Time) (*Order, error) {
	o := &Order{
		status: New,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setClientID(clientID),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order loaded from the record store.
func RestoreOrder(id, clientID kernel.ID, createdAt time.Time, status Status) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		id.Validate(),
		o.setClientID(clientID),
		o.setCreatedAt(createdAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.id = id
	o.status = status
	return o, nil
}

// Validate ensures the order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// Identify stores the identifier assigned by the record store. It may be
// called only once, and only for an order created by NewOrder.
func (o *Order) Identify(id kernel.ID) error {
	if !o.id.IsZero() {
		return ErrOrderIsAlreadyIdentified
	}
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && !o.id.IsZero() && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.ID           { return o.id }
func (o *Order) ClientID() kernel.ID     { return o.clientID }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }
func (o *Order) Status() Status          { return o.status }
func (o *Order) IsTerminal() bool        { return o.status.IsTerminal() }
func (o *Order) HasPendingChanges() bool { return len(o.changes) > 0 }

// Process starts work on a new order.
func (o *Order) Process() Result {
	return o.Apply(EventProcess)
}

// Cancel withdraws the order. Cancelling an order that holds a worker
// requests EffectReleaseAssignment.
func (o *Order) Cancel() Result {
	return o.Apply(EventCancel)
}

// Complete finishes an order that is in progress and requests
// EffectReleaseAssignment.
func (o *Order) Complete() Result {
	return o.Apply(EventComplete)
}

// Apply runs event through Transition and, when the status changes, updates
// the order and records a StatusChanged event.
//
// Returns:
//   - Result with Changed set and the side effects to carry out, or
//   - Result with Changed unset and an IllegalTransitionError in Warning
func (o *Order) Apply(event Event) Result {
	res := Transition(o.status, event)
	if !res.Changed {
		return res
	}

	o.status = res.To
	o.changes = append(o.changes, StatusChanged{
		From: res.From,
		To:   res.To,
		At:   time.Now().UTC(),
	})
	return res
}

// PullStatusChanges returns the recorded events stamped with the order and
// client ids and clears them.
func (o *Order) PullStatusChanges() []StatusChanged {
	if len(o.changes) == 0 {
		return nil
	}

	changes := o.changes
	o.changes = nil
	for i := range changes {
		changes[i].OrderID = o.id
		changes[i].ClientID = o.clientID
	}
	return changes
}

func (o *Order) setClientID(clientID kernel.ID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}
	o.createdAt = createdAt
	return nil
}
