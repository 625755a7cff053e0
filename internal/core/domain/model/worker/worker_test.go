package worker_test

import (
	"testing"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/kernel/kerneltest"
	"workshop/internal/core/domain/model/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validName(t *testing.T) kernel.PersonName {
	t.Helper()
	name, err := kernel.NewPersonName("Ivan", "Petrov", "Sergeevich")
	require.NoError(t, err)
	return name
}

func validPhone(t *testing.T) kernel.Phone {
	t.Helper()
	phone, err := kernel.NewPhone("+79161111111")
	require.NoError(t, err)
	return phone
}

func restore(t *testing.T, load int) *worker.Worker {
	t.Helper()
	w, err := worker.RestoreWorker(kerneltest.ID(1), validName(t), validPhone(t), "", load)
	require.NoError(t, err)
	return w
}

func TestNewWorker(t *testing.T) {
	t.Run("should create idle available worker", func(t *testing.T) {
		w, err := worker.NewWorker(validName(t), validPhone(t), " master1@example.com ")

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.True(t, w.ID().IsZero())
		assert.Equal(t, 0, w.Load())
		assert.True(t, w.IsAvailable())
		assert.Equal(t, "master1@example.com", w.Email())
		assert.Equal(t, worker.Capacity, w.FreeSlots())
	})

	t.Run("should report all invalid fields", func(t *testing.T) {
		w, err := worker.NewWorker(kernel.PersonName{}, kernel.Phone{}, "not-an-email")

		require.Error(t, err)
		assert.Nil(t, w)
		require.ErrorIs(t, err, kernel.ErrPersonNameIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrPhoneIsNotConstructed)
		require.ErrorIs(t, err, worker.ErrEmailIsInvalid)
	})
}

func TestRestoreWorker(t *testing.T) {
	testCases := []struct {
		name          string
		load          int
		wantLoad      int
		wantAvailable bool
	}{
		{name: "idle", load: 0, wantLoad: 0, wantAvailable: true},
		{name: "below capacity", load: 2, wantLoad: 2, wantAvailable: true},
		{name: "at capacity", load: 3, wantLoad: 3, wantAvailable: false},
		{name: "over capacity", load: 5, wantLoad: 5, wantAvailable: false},
		{name: "negative load is clamped", load: -2, wantLoad: 0, wantAvailable: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := restore(t, tc.load)

			assert.Equal(t, tc.wantLoad, w.Load())
			assert.Equal(t, tc.wantAvailable, w.IsAvailable())
		})
	}
}

func TestWorker_ApplyLoadDelta(t *testing.T) {
	t.Run("worker with load 2 becomes unavailable on next take", func(t *testing.T) {
		w := restore(t, 2)

		require.NoError(t, w.Take())

		assert.Equal(t, 3, w.Load())
		assert.False(t, w.IsAvailable())
		assert.Equal(t, 0, w.FreeSlots())
	})

	t.Run("take is refused when full", func(t *testing.T) {
		w := restore(t, 3)

		require.ErrorIs(t, w.Take(), worker.ErrWorkerIsNotAvailable)
		assert.Equal(t, 3, w.Load())
	})

	t.Run("release frees a slot", func(t *testing.T) {
		w := restore(t, 3)

		w.Release()

		assert.Equal(t, 2, w.Load())
		assert.True(t, w.IsAvailable())
	})

	t.Run("release at zero is clamped", func(t *testing.T) {
		w := restore(t, 0)

		w.Release()
		w.ApplyLoadDelta(-5)

		assert.Equal(t, 0, w.Load())
		assert.True(t, w.IsAvailable())
	})
}

func TestWorker_Identify(t *testing.T) {
	w, err := worker.NewWorker(validName(t), validPhone(t), "")
	require.NoError(t, err)

	require.NoError(t, w.Identify(kerneltest.ID(4)))
	require.Error(t, w.Identify(kerneltest.ID(5)))
	assert.Equal(t, int64(4), w.ID().Int64())
	assert.Equal(t, "Ivan Petrov (0/3)", w.String())
}
