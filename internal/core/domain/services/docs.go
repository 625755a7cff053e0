// Package services provides domain services that coordinate several
// aggregates of the workshop.
//
// The package includes:
//   - WorkerPool: bookkeeping of worker load and availability
//   - OrderDispatcher: picks the least loaded available worker for a new order
//   - OrderLifecycle: applies lifecycle events and their side effects
//   - Pricing: a pure price function over a flat list of enhancement tags
//
// None of the services touch the record store; the application layer loads
// the aggregates, calls a service and saves what it changed.
package services
