package ports

import (
	"context"

	"workshop/internal/core/domain/model/order"
)

// NotificationCategory tells the notification service what kind of message
// it is delivering; channel routing is configured per category.
type NotificationCategory string

const (
	CategoryOrderCreated   NotificationCategory = "order_created"
	CategoryMasterAssigned NotificationCategory = "master_assigned"
	CategoryOrderReady     NotificationCategory = "order_ready"
	CategoryStatusChanged  NotificationCategory = "status_changed"
)

// Notification is one message for one recipient.
type Notification struct {
	Recipient string
	Text      string
	Category  NotificationCategory
	Subject   string
}

// ChannelResult is the delivery attempt outcome for a single channel.
type ChannelResult struct {
	Channel   string
	MessageID string
	Err       error
}

func (r ChannelResult) Delivered() bool {
	return r.Err == nil
}

// NotificationService delivers a notification over every channel routed for
// its category. Delivery failures are reported per channel, never returned as
// an error: callers only need to know a delivery was attempted.
type NotificationService interface {
	Notify(ctx context.Context, n Notification) []ChannelResult
}

// StatusChangeListener reacts to a committed order status change.
type StatusChangeListener interface {
	Name() string
	OnStatusChanged(ctx context.Context, change order.StatusChanged) error
}
