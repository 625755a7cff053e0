package notifier

import (
	"context"
	"log/slog"

	"workshop/internal/core/domain/model/order"
)

// LoggingListener writes every status change to the log.
type LoggingListener struct {
	logger *slog.Logger
}

func NewLoggingListener(logger *slog.Logger) *LoggingListener {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingListener{logger: logger.With("component", "status_log")}
}

func (l *LoggingListener) Name() string {
	return "logging"
}

func (l *LoggingListener) OnStatusChanged(ctx context.Context, change order.StatusChanged) error {
	l.logger.InfoContext(ctx, "order status changed",
		slog.Int64("order_id", change.OrderID.Int64()),
		slog.Int64("client_id", change.ClientID.Int64()),
		slog.String("from", change.From.String()),
		slog.String("to", change.To.String()),
		slog.Time("at", change.At),
	)
	return nil
}
