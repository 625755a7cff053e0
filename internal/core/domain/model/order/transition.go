package order

import (
	"errors"
	"fmt"
	"slices"
)

// Event is a lifecycle operation requested for an order.
type Event string

const (
	EventProcess  Event = "process"
	EventCancel   Event = "cancel"
	EventComplete Event = "complete"
)

func (e Event) String() string {
	return string(e)
}

// Effect is a side effect the caller must carry out after a transition.
type Effect string

// EffectReleaseAssignment asks the caller to release the order's active work
// assignment and give the slot back to the worker.
const EffectReleaseAssignment Effect = "release_assignment"

// ErrIllegalTransition is the sentinel behind every IllegalTransitionError.
var ErrIllegalTransition = errors.New("illegal order transition")

// IllegalTransitionError describes an operation that is not valid from the
// current status. It is a warning: the order stays as it was.
type IllegalTransitionError struct {
	From  Status
	Event Event
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s an order in status %s", ErrIllegalTransition, e.Event, e.From)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// Result is the outcome of Transition.
//
// Changed is true only when To differs from From. When Changed is false,
// Warning explains why nothing happened and Effects is empty.
type Result struct {
	From    Status
	To      Status
	Event   Event
	Changed bool
	Effects []Effect
	Warning error
}

// Has reports whether the transition requested the given side effect.
func (r Result) Has(effect Effect) bool {
	return slices.Contains(r.Effects, effect)
}

type edge struct {
	to      Status
	effects []Effect
}

var transitions = map[Status]map[Event]edge{
	New: {
		EventProcess: {to: InProgress},
		EventCancel:  {to: Cancelled},
	},
	Assigned: {
		EventCancel:   {to: Cancelled, effects: []Effect{EffectReleaseAssignment}},
		EventComplete: {to: Completed, effects: []Effect{EffectReleaseAssignment}},
	},
	InProgress: {
		EventCancel:   {to: Cancelled, effects: []Effect{EffectReleaseAssignment}},
		EventComplete: {to: Completed, effects: []Effect{EffectReleaseAssignment}},
	},
}

// Transition computes what happens when event is applied to an order in
// status from. It has no side effects of its own; the caller applies the
// returned status and effects.
//
// Example:
//
//	res := order.Transition(order.InProgress, order.EventComplete)
//	// res.To == order.Completed, res.Has(order.EffectReleaseAssignment) == true
//
//	res = order.Transition(order.Completed, order.EventComplete)
//	// res.Changed == false, errors.Is(res.Warning, order.ErrIllegalTransition)
func Transition(from Status, event Event) Result {
	e, ok := transitions[from][event]
	if !ok {
		return Result{
			From:    from,
			To:      from,
			Event:   event,
			Warning: &IllegalTransitionError{From: from, Event: event},
		}
	}

	return Result{
		From:    from,
		To:      e.to,
		Event:   event,
		Changed: e.to != from,
		Effects: slices.Clone(e.effects),
	}
}
