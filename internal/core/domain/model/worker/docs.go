// Package worker provides the Worker aggregate: a workshop master with a
// limited number of orders they can hold at the same time.
//
// Key business rules:
//   - A worker holds at most Capacity active orders
//   - Availability is derived from load (load < Capacity) and recomputed on
//     every load change, so it can never drift from the counter
//   - Load never goes below zero: releasing more slots than are held clamps
//     the counter at zero
package worker
