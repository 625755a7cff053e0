package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"workshop/internal/core/domain/model/client"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/ports"
)

// ClientFinder loads the client an order belongs to.
type ClientFinder interface {
	Get(ctx context.Context, id kernel.ID) (*client.Client, error)
}

// NotificationListener tells the client about changes to their order through
// the notification service.
//
// Category mapping:
//   - new -> in_progress: master_assigned
//   - anything -> completed: order_ready
//   - everything else: status_changed
type NotificationListener struct {
	clients ClientFinder
	service ports.NotificationService
	logger  *slog.Logger
}

func NewNotificationListener(
	clients ClientFinder,
	service ports.NotificationService,
	logger *slog.Logger,
) *NotificationListener {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationListener{
		clients: clients,
		service: service,
		logger:  logger.With("component", "client_notifications"),
	}
}

func (l *NotificationListener) Name() string {
	return "client_notification"
}

func (l *NotificationListener) OnStatusChanged(ctx context.Context, change order.StatusChanged) error {
	c, err := l.clients.Get(ctx, change.ClientID)
	if err != nil {
		return fmt.Errorf("load client %s for order %s: %w", change.ClientID, change.OrderID, err)
	}

	n := Message(c, change)
	results := l.service.Notify(ctx, n)

	var failed int
	for _, r := range results {
		if !r.Delivered() {
			failed++
			l.logger.WarnContext(ctx, "notification channel failed",
				slog.String("channel", r.Channel),
				slog.String("category", string(n.Category)),
				slog.Int64("order_id", change.OrderID.Int64()),
				slog.Any("error", r.Err),
			)
		}
	}
	if len(results) > 0 && failed == len(results) {
		return fmt.Errorf("no channel delivered %s for order %s", n.Category, change.OrderID)
	}
	return nil
}

// Category maps a status change to the notification category it is sent as.
func Category(change order.StatusChanged) ports.NotificationCategory {
	switch {
	case change.From == order.New && change.To == order.InProgress:
		return ports.CategoryMasterAssigned
	case change.To == order.Completed:
		return ports.CategoryOrderReady
	default:
		return ports.CategoryStatusChanged
	}
}

// Message builds the client notification for a status change.
func Message(c *client.Client, change order.StatusChanged) ports.Notification {
	category := Category(change)

	var text string
	switch category {
	case ports.CategoryMasterAssigned:
		text = fmt.Sprintf("%s, a master has started work on your order #%s.", c.Name().First(), change.OrderID)
	case ports.CategoryOrderReady:
		text = fmt.Sprintf("%s, your order #%s is ready for pickup.", c.Name().First(), change.OrderID)
	default:
		text = fmt.Sprintf("%s, your order #%s is now %s (was %s).",
			c.Name().First(), change.OrderID, change.To, change.From)
	}

	return ports.Notification{
		Recipient: c.Contact(),
		Text:      text,
		Category:  category,
		Subject:   fmt.Sprintf("Order #%s", change.OrderID),
	}
}
