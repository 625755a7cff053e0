// Package kernel provides core domain primitives shared by the workshop aggregates.
//
// The package includes:
//   - ID: a store-assigned identifier; the zero ID marks an aggregate that was never saved
//   - PersonName: first/last/patronymic name used by clients and workers
//   - Phone: a normalized contact number used as the client lookup key
//
// These primitives are immutable values that validate themselves on construction,
// so aggregates can rely on them without re-checking their invariants.
package kernel
