package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"workshop/internal/core/application/notifier"
	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel/kerneltest"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAssigner struct {
	mock.Mock
}

func (m *MockAssigner) Handle(ctx context.Context, command commands.AssignPendingOrdersCommand) (commands.AssignmentOutcome, error) {
	args := m.Called(ctx, command)
	return args.Get(0).(commands.AssignmentOutcome), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func assigned(orderID, workerID int64) commands.AssignmentOutcome {
	return commands.AssignmentOutcome{
		OrderID:  kerneltest.ID(orderID),
		WorkerID: kerneltest.ID(workerID),
		Status:   commands.AssignmentAssigned,
	}
}

func TestPendingOrderAssignmentJob_RunOnce(t *testing.T) {
	t.Run("drains until nothing is pending", func(t *testing.T) {
		assigner := &MockAssigner{}
		assigner.On("Handle", mock.Anything, mock.Anything).Return(assigned(1, 7), nil).Once()
		assigner.On("Handle", mock.Anything, mock.Anything).Return(assigned(2, 8), nil).Once()
		assigner.On("Handle", mock.Anything, mock.Anything).Return(commands.AssignmentOutcome{
			Status:  commands.AssignmentSkipped,
			Warning: commands.ErrNoPendingOrders,
		}, nil).Once()

		job := NewPendingOrderAssignmentJob(assigner, "", discardLogger())

		assert.Equal(t, 2, job.RunOnce(t.Context()))
		assigner.AssertExpectations(t)
	})

	t.Run("stops when every worker is busy", func(t *testing.T) {
		assigner := &MockAssigner{}
		assigner.On("Handle", mock.Anything, mock.Anything).Return(commands.AssignmentOutcome{
			OrderID: kerneltest.ID(3),
			Status:  commands.AssignmentPending,
			Warning: services.ErrNoAvailableWorker,
		}, nil).Once()

		job := NewPendingOrderAssignmentJob(assigner, "", discardLogger())

		assert.Zero(t, job.RunOnce(t.Context()))
		assigner.AssertNumberOfCalls(t, "Handle", 1)
	})

	t.Run("stops on error", func(t *testing.T) {
		assigner := &MockAssigner{}
		assigner.On("Handle", mock.Anything, mock.Anything).Return(assigned(1, 7), nil).Once()
		assigner.On("Handle", mock.Anything, mock.Anything).
			Return(commands.AssignmentOutcome{}, errors.New("connection reset")).Once()

		job := NewPendingOrderAssignmentJob(assigner, "", discardLogger())

		assert.Equal(t, 1, job.RunOnce(t.Context()))
		assigner.AssertExpectations(t)
	})

	t.Run("bounded per run", func(t *testing.T) {
		assigner := &MockAssigner{}
		assigner.On("Handle", mock.Anything, mock.Anything).Return(assigned(1, 7), nil)

		job := NewPendingOrderAssignmentJob(assigner, "", discardLogger())

		assert.Equal(t, maxAssignmentsPerRun, job.RunOnce(t.Context()))
	})
}

func TestPendingOrderAssignmentJob_InvalidSchedule(t *testing.T) {
	job := NewPendingOrderAssignmentJob(&MockAssigner{}, "not a schedule", discardLogger())
	assert.Error(t, job.Start())
}

func TestTransitionStatsJob_LogsOnlyChanges(t *testing.T) {
	metrics := notifier.NewMetricsListener()
	job := NewTransitionStatsJob(metrics, "", discardLogger())

	assert.False(t, job.RunOnce(t.Context()))

	require.NoError(t, metrics.OnStatusChanged(t.Context(), order.StatusChanged{From: order.New, To: order.InProgress}))
	assert.True(t, job.RunOnce(t.Context()))
	assert.False(t, job.RunOnce(t.Context()))
}

func TestJobManager_StartAndStop(t *testing.T) {
	jm := NewJobManager(&MockAssigner{}, notifier.NewMetricsListener(), Schedules{
		PendingOrders: "0 0 0 1 1 *",
		Stats:         "0 0 0 1 1 *",
	}, discardLogger())

	require.NoError(t, jm.StartAll())
	jm.StopAll()
}

func TestJobManager_StartFailureStopsStartedJobs(t *testing.T) {
	jm := NewJobManager(&MockAssigner{}, notifier.NewMetricsListener(), Schedules{
		PendingOrders: "0 0 0 1 1 *",
		Stats:         "bogus",
	}, discardLogger())

	assert.Error(t, jm.StartAll())
}
