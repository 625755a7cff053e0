// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Status: the tagged set of lifecycle states stored with every order
//   - Event: the lifecycle operations a caller can request (process, cancel, complete)
//   - Transition: a pure function deciding the next status and its side effects
//   - Order: the aggregate root that applies transitions and records StatusChanged events
//
// Key business rules:
//   - Orders are created in New and move new -> in_progress -> completed,
//     or to cancelled from new and in_progress
//   - Completed and cancelled are terminal: further operations are no-ops
//     reported through an IllegalTransitionError warning, never a failure
//   - Leaving in_progress for a terminal status releases the work assignment
//   - A StatusChanged event is recorded only when the status actually changes
//   - Orders are never deleted
package order
