// Package notifier fans committed order status changes out to a fixed list
// of listeners.
//
// Listeners are given to NewNotifier once and never change afterwards. They
// are called synchronously in that order. A listener that fails or panics is
// logged and skipped; the others still run and the status change stands.
package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/ports"
)

type Notifier struct {
	listeners []ports.StatusChangeListener
	logger    *slog.Logger
}

// NewNotifier drops nil listeners. A nil logger falls back to slog.Default().
func NewNotifier(logger *slog.Logger, listeners ...ports.StatusChangeListener) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}

	filtered := make([]ports.StatusChangeListener, 0, len(listeners))
	for _, l := range listeners {
		if l != nil {
			filtered = append(filtered, l)
		}
	}

	return &Notifier{
		listeners: filtered,
		logger:    logger.With("component", "notifier"),
	}
}

// Publish delivers every change to every listener. It must only be called
// after the transaction that produced the changes has been committed.
func (n *Notifier) Publish(ctx context.Context, changes ...order.StatusChanged) {
	for _, change := range changes {
		for _, l := range n.listeners {
			if err := n.call(ctx, l, change); err != nil {
				n.logger.ErrorContext(ctx, "status change listener failed",
					slog.String("listener", l.Name()),
					slog.Int64("order_id", change.OrderID.Int64()),
					slog.String("from", change.From.String()),
					slog.String("to", change.To.String()),
					slog.Any("error", err),
				)
			}
		}
	}
}

func (n *Notifier) call(ctx context.Context, l ports.StatusChangeListener, change order.StatusChanged) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("listener panicked: %v", r)
		}
	}()
	return l.OnStatusChanged(ctx, change)
}
