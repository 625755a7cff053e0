package kernel

import (
	"cmp"
	"strconv"

	"workshop/internal/pkg/errs"
)

// ErrIDIsNotAssigned is returned when an aggregate that has never been saved
// is used where a persisted identity is required.
var ErrIDIsNotAssigned = errs.NewValueIsRequiredError("id must be assigned by the record store")

// ID identifies a persisted aggregate. Identifiers are assigned by the record
// store on first save and grow monotonically, so ordering by ID is ordering by
// creation.
//
// The zero ID means "not saved yet": repositories insert aggregates carrying it
// and update everything else.
type ID struct {
	value int64
}

// IDFromInt64 wraps a store identifier. Only positive values are accepted.
//
// Example:
//
//	id, err := kernel.IDFromInt64(42)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
func IDFromInt64(v int64) (ID, error) {
	if v <= 0 {
		return ID{}, errs.NewValueIsOutOfRangeError("id", v, 1, "max int64")
	}
	return ID{value: v}, nil
}

// Int64 returns the raw store value (0 for an unsaved aggregate).
func (id ID) Int64() int64 {
	return id.value
}

// IsZero reports whether the ID was never assigned.
func (id ID) IsZero() bool {
	return id.value == 0
}

// IsEqual compares two identifiers.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Compare orders identifiers by creation. It fits slices.SortFunc.
func (id ID) Compare(other ID) int {
	return cmp.Compare(id.value, other.value)
}

// Validate fails for the zero ID.
func (id ID) Validate() error {
	if id.IsZero() {
		return ErrIDIsNotAssigned
	}
	return nil
}

func (id ID) String() string {
	return strconv.FormatInt(id.value, 10)
}
