package kernel_test

import (
	"slices"
	"testing"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/kernel/kerneltest"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromInt64(t *testing.T) {
	t.Run("should wrap positive values", func(t *testing.T) {
		id, err := kernel.IDFromInt64(42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id.Int64())
		assert.Equal(t, "42", id.String())
		assert.False(t, id.IsZero())
		require.NoError(t, id.Validate())
	})

	t.Run("should reject zero and negative values", func(t *testing.T) {
		for _, v := range []int64{0, -1, -100} {
			_, err := kernel.IDFromInt64(v)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestID_ZeroValue(t *testing.T) {
	var id kernel.ID

	assert.True(t, id.IsZero())
	require.ErrorIs(t, id.Validate(), kernel.ErrIDIsNotAssigned)
	assert.Equal(t, "0", id.String())
}

func TestID_Compare(t *testing.T) {
	first, err := kernel.IDFromInt64(1)
	require.NoError(t, err)
	second, err := kernel.IDFromInt64(2)
	require.NoError(t, err)
	same, err := kernel.IDFromInt64(1)
	require.NoError(t, err)

	assert.Equal(t, -1, first.Compare(second))
	assert.Equal(t, 1, second.Compare(first))
	assert.Equal(t, 0, first.Compare(same))
	assert.True(t, first.IsEqual(same))
	assert.False(t, first.IsEqual(second))
}

func TestID_CompareSortsByCreation(t *testing.T) {
	ids := []kernel.ID{kerneltest.ID(30), kerneltest.ID(4), kerneltest.ID(17)}

	slices.SortFunc(ids, kernel.ID.Compare)

	assert.Equal(t, []kernel.ID{kerneltest.ID(4), kerneltest.ID(17), kerneltest.ID(30)}, ids)
}

func TestNewPersonName(t *testing.T) {
	t.Run("should trim and keep all parts", func(t *testing.T) {
		name, err := kernel.NewPersonName(" Ivan ", "Petrov", " Sergeevich")

		require.NoError(t, err)
		require.NoError(t, name.Validate())
		assert.Equal(t, "Ivan", name.First())
		assert.Equal(t, "Petrov", name.Last())
		assert.Equal(t, "Sergeevich", name.Patronymic())
		assert.Equal(t, "Ivan Petrov", name.Short())
		assert.Equal(t, "Petrov Ivan Sergeevich", name.Full())
	})

	t.Run("should allow empty patronymic", func(t *testing.T) {
		name, err := kernel.NewPersonName("Maria", "Sidorova", "")

		require.NoError(t, err)
		assert.Equal(t, "Sidorova Maria", name.Full())
	})

	t.Run("should report every missing part", func(t *testing.T) {
		_, err := kernel.NewPersonName("  ", "", "")

		require.ErrorIs(t, err, kernel.ErrFirstNameIsRequired)
		require.ErrorIs(t, err, kernel.ErrLastNameIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var name kernel.PersonName

		require.ErrorIs(t, name.Validate(), kernel.ErrPersonNameIsNotConstructed)
	})
}

func TestNewPhone(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "plain", input: "+79161111111", want: "+79161111111"},
		{name: "formatted", input: "+7 (916) 111-11-11", want: "+79161111111"},
		{name: "no plus", input: "8 916 111 11 11", want: "89161111111"},
		{name: "empty", input: "   ", wantErr: errs.ErrValueIsRequired},
		{name: "letters", input: "+7916abc", wantErr: errs.ErrValueIsInvalid},
		{name: "plus in the middle", input: "79+161111111", wantErr: errs.ErrValueIsInvalid},
		{name: "too short", input: "1234", wantErr: errs.ErrValueIsOutOfRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			phone, err := kernel.NewPhone(tc.input)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, phone.Validate())
			assert.Equal(t, tc.want, phone.String())
		})
	}
}

func TestPhone_IsEqual(t *testing.T) {
	a, _ := kernel.NewPhone("+7 916 111-11-11")
	b, _ := kernel.NewPhone("+79161111111")
	c, _ := kernel.NewPhone("+79162222222")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
