package services_test

import (
	"testing"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/kernel/kerneltest"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/worker"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newWorker(t *testing.T, id int64, load int) *worker.Worker {
	t.Helper()
	name, err := kernel.NewPersonName("Worker", "Number", "")
	require.NoError(t, err)
	phone, err := kernel.NewPhone("+7916000000" + string(rune('0'+id%10)))
	require.NoError(t, err)
	w, err := worker.RestoreWorker(kerneltest.ID(id), name, phone, "", load)
	require.NoError(t, err)
	return w
}

func restoreOrder(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kerneltest.ID(id), kerneltest.ID(100), now.Add(-time.Hour), status)
	require.NoError(t, err)
	return o
}
