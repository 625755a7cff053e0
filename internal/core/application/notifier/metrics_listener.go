package notifier

import (
	"context"
	"sync/atomic"

	"workshop/internal/core/domain/model/order"
)

// MetricsListener counts status changes by target status.
type MetricsListener struct {
	total      atomic.Int64
	inProgress atomic.Int64
	completed  atomic.Int64
	cancelled  atomic.Int64
	other      atomic.Int64
}

// MetricsSnapshot is a point-in-time copy of MetricsListener counters.
type MetricsSnapshot struct {
	Total      int64 `json:"total"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
	Cancelled  int64 `json:"cancelled"`
	Other      int64 `json:"other"`
}

func NewMetricsListener() *MetricsListener {
	return &MetricsListener{}
}

func (m *MetricsListener) Name() string {
	return "metrics"
}

func (m *MetricsListener) OnStatusChanged(_ context.Context, change order.StatusChanged) error {
	m.total.Add(1)
	switch change.To {
	case order.InProgress:
		m.inProgress.Add(1)
	case order.Completed:
		m.completed.Add(1)
	case order.Cancelled:
		m.cancelled.Add(1)
	default:
		m.other.Add(1)
	}
	return nil
}

func (m *MetricsListener) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Total:      m.total.Load(),
		InProgress: m.inProgress.Load(),
		Completed:  m.completed.Load(),
		Cancelled:  m.cancelled.Load(),
		Other:      m.other.Load(),
	}
}
