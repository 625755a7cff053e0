package order

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. The string value is what
// the record store keeps in the orders.status column.
//
// State transitions:
//
//	New ──process──> InProgress ──complete──> Completed
//	 │                    │
//	 └──cancel──> Cancelled <──cancel──┘
//
// Assigned is written by older versions of the workshop software for orders
// that had a worker but were not yet started. It is read and handled like
// InProgress, except that process is not accepted from it.
type Status string

const (
	// Unknown is the zero Status and is never valid.
	Unknown Status = ""

	// New is the initial status. Orders in New wait for a worker.
	New Status = "new"

	// Assigned is the legacy "worker picked, not started" status.
	Assigned Status = "assigned"

	// InProgress means a worker holds an active assignment for the order.
	InProgress Status = "in_progress"

	// Completed is terminal: the item was crafted and handed over.
	Completed Status = "completed"

	// Cancelled is terminal: the order was withdrawn.
	Cancelled Status = "cancelled"
)

var validStatuses = map[Status]struct{}{
	New:        {},
	Assigned:   {},
	InProgress: {},
	Completed:  {},
	Cancelled:  {},
}

// ParseStatus converts a stored or user supplied value into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return Unknown, err
	}
	return status, nil
}

// Validate checks that the status is one of the known lifecycle states.
func (s Status) Validate() error {
	if _, ok := validStatuses[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// IsTerminal reports whether no lifecycle operation can move the order any further.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// HoldsWorker reports whether an order in this status is expected to have an
// active work assignment.
func (s Status) HoldsWorker() bool {
	return s == Assigned || s == InProgress
}

func (s Status) String() string {
	if s == Unknown {
		return "unknown"
	}
	return string(s)
}
