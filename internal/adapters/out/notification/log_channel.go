package notification

import (
	"context"
	"log/slog"

	"workshop/internal/core/ports"

	"github.com/google/uuid"
)

const LogChannelName = "log"

// LogChannel writes notifications to the application log. It stands in for
// SMS and email delivery and never fails.
type LogChannel struct {
	logger *slog.Logger
}

func NewLogChannel(logger *slog.Logger) *LogChannel {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogChannel{logger: logger.With("component", "notification_log")}
}

func (c *LogChannel) Name() string {
	return LogChannelName
}

func (c *LogChannel) Send(ctx context.Context, n ports.Notification) (string, error) {
	id := uuid.NewString()
	c.logger.InfoContext(ctx, "notification sent",
		slog.String("message_id", id),
		slog.String("category", string(n.Category)),
		slog.String("recipient", n.Recipient),
		slog.String("subject", n.Subject),
		slog.String("text", n.Text),
	)
	return id, nil
}
