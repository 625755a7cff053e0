package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeID struct{ v int64 }

func (id storeID) String() string { return fmt.Sprint(id.v) }

func TestObjectNotFoundError_Message(t *testing.T) {
	tests := []struct {
		name  string
		param string
		id    any
		want  string
	}{
		{name: "int64 store id", param: "order", id: int64(42), want: "object not found: order 42"},
		{name: "plain int", param: "worker", id: 7, want: "object not found: worker 7"},
		{name: "stringer", param: "assignment", id: storeID{v: 15}, want: "object not found: assignment 15"},
		{name: "phone lookup", param: "client", id: "+79001234567", want: "object not found: client +79001234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errs.NewObjectNotFoundError(tt.param, tt.id)

			assert.Equal(t, tt.want, err.Error())
			assert.NotContains(t, err.Error(), "%!")
			require.ErrorIs(t, err, errs.ErrObjectNotFound)
		})
	}
}

func TestObjectNotFoundError_WithCause(t *testing.T) {
	cause := errors.New("order item points at a deleted product")
	err := errs.NewObjectNotFoundErrorWithCause("product", int64(4), cause)

	assert.Equal(t,
		"object not found: product 4 (cause: order item points at a deleted product)",
		err.Error())
	assert.Same(t, cause, err.Cause)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestValueErrors_Message(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		want     string
		sentinel error
	}{
		{
			name:     "invalid phone",
			err:      errs.NewValueIsInvalidError("phone"),
			want:     "value is invalid: phone",
			sentinel: errs.ErrValueIsInvalid,
		},
		{
			name:     "invalid product type with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("productType", errors.New(`"anklet" is not in the catalogue`)),
			want:     `value is invalid: productType (cause: "anklet" is not in the catalogue)`,
			sentinel: errs.ErrValueIsInvalid,
		},
		{
			name:     "purity out of range",
			err:      errs.NewValueIsOutOfRangeError("purity", 1000, 1, 999),
			want:     "value is invalid: 1000 is purity, min value is 1, max value is 999",
			sentinel: errs.ErrValueIsOutOfRange,
		},
		{
			name:     "worker load out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("load", -1, 0, 3, errors.New("released twice")),
			want:     "value is invalid: -1 is load, min value is 0, max value is 3 (cause: released twice)",
			sentinel: errs.ErrValueIsOutOfRange,
		},
		{
			name:     "missing material",
			err:      errs.NewValueIsRequiredError("material"),
			want:     "value is required: material",
			sentinel: errs.ErrValueIsRequired,
		},
		{
			name:     "missing items with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("items", errors.New("an order needs at least one item")),
			want:     "value is required: items (cause: an order needs at least one item)",
			sentinel: errs.ErrValueIsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestValueIsOutOfRangeError_KeepsMessageOnOneLine(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("note", "size 17\r\nengrave inside", 0, 200)

	assert.Contains(t, err.Error(), "size 17 engrave inside")
	assert.NotContains(t, err.Error(), "\n")
	assert.NotContains(t, err.Error(), "\r")
}

func TestErrors_SurviveWrapping(t *testing.T) {
	err := fmt.Errorf("cancel order: %w", errs.NewObjectNotFoundError("order", int64(42)))

	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "order", notFound.ParamName)
	assert.Equal(t, int64(42), notFound.ID)
}
