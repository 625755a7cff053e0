package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"workshop/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func TestNewAMQPChannel_Validation(t *testing.T) {
	_, err := NewAMQPChannel(nil, "workshop.notifications")
	assert.Error(t, err)

	_, err = NewAMQPChannel(&MockPublisher{}, "")
	assert.Error(t, err)
}

func TestAMQPChannel_Send(t *testing.T) {
	ctx := t.Context()
	pub := &MockPublisher{}
	sentAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	var published amqp.Publishing
	pub.On("PublishWithContext", ctx, "workshop.notifications", "notification.order_ready", false, false, mock.Anything).
		Run(func(args mock.Arguments) { published = args.Get(5).(amqp.Publishing) }).
		Return(nil).Once()

	c, err := NewAMQPChannel(pub, "workshop.notifications")
	require.NoError(t, err)
	c.now = func() time.Time { return sentAt }

	id, err := c.Send(ctx, ports.Notification{
		Recipient: "+15550001111",
		Text:      "ready",
		Category:  ports.CategoryOrderReady,
		Subject:   "Order #9",
	})
	require.NoError(t, err)

	assert.Equal(t, id, published.MessageId)
	assert.Equal(t, "application/json", published.ContentType)
	assert.Equal(t, amqp.Persistent, published.DeliveryMode)
	assert.Equal(t, sentAt, published.Timestamp)

	var body message
	require.NoError(t, json.Unmarshal(published.Body, &body))
	assert.Equal(t, id, body.MessageID)
	assert.Equal(t, "order_ready", body.Category)
	assert.Equal(t, "+15550001111", body.Recipient)
	assert.Equal(t, "Order #9", body.Subject)
	pub.AssertExpectations(t)
}

func TestAMQPChannel_Send_PublishError(t *testing.T) {
	pub := &MockPublisher{}
	brokerErr := errors.New("channel closed")
	pub.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, false, false, mock.Anything).
		Return(brokerErr).Once()

	c, err := NewAMQPChannel(pub, "workshop.notifications")
	require.NoError(t, err)

	id, err := c.Send(t.Context(), ports.Notification{Category: ports.CategoryStatusChanged})
	assert.ErrorIs(t, err, brokerErr)
	assert.Empty(t, id)
}
