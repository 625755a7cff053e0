// Package kerneltest provides identifier fixtures for tests.
package kerneltest

import (
	"workshop/internal/core/domain/model/kernel"
)

// ID wraps a literal store identifier. It panics on values kernel.IDFromInt64
// rejects.
func ID(v int64) kernel.ID {
	id, err := kernel.IDFromInt64(v)
	if err != nil {
		panic(err)
	}
	return id
}
