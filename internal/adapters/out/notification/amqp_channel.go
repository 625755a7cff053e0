package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"workshop/internal/core/ports"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const AMQPChannelName = "amqp"

var ErrPublisherIsClosed = errors.New("amqp publisher is closed")

// Publisher is the part of *amqp.Channel the AMQP notification channel uses.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type message struct {
	MessageID string    `json:"messageId"`
	Category  string    `json:"category"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Text      string    `json:"text"`
	SentAt    time.Time `json:"sentAt"`
}

// AMQPChannel publishes notifications to a topic exchange with the routing
// key notification.<category>, leaving delivery to downstream consumers.
type AMQPChannel struct {
	publisher Publisher
	exchange  string
	now       func() time.Time
}

func NewAMQPChannel(publisher Publisher, exchange string) (*AMQPChannel, error) {
	if publisher == nil {
		return nil, errors.New("amqp publisher is required")
	}
	if exchange == "" {
		return nil, errors.New("amqp exchange is required")
	}
	return &AMQPChannel{publisher: publisher, exchange: exchange, now: time.Now}, nil
}

func (c *AMQPChannel) Name() string {
	return AMQPChannelName
}

func (c *AMQPChannel) Send(ctx context.Context, n ports.Notification) (string, error) {
	id := uuid.NewString()
	sentAt := c.now().UTC()

	body, err := json.Marshal(message{
		MessageID: id,
		Category:  string(n.Category),
		Recipient: n.Recipient,
		Subject:   n.Subject,
		Text:      n.Text,
		SentAt:    sentAt,
	})
	if err != nil {
		return "", fmt.Errorf("marshal notification: %w", err)
	}

	err = c.publisher.PublishWithContext(ctx, c.exchange, RoutingKey(n.Category), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    id,
		Timestamp:    sentAt,
		Type:         string(n.Category),
		Body:         body,
	})
	if err != nil {
		return "", fmt.Errorf("publish notification to %s: %w", c.exchange, err)
	}
	return id, nil
}

func RoutingKey(category ports.NotificationCategory) string {
	return "notification." + string(category)
}

// AMQPConnection owns the broker connection and the channel notifications are
// published on.
type AMQPConnection struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// DialAMQP connects to the broker and declares the durable topic exchange.
func DialAMQP(url, exchange string) (*AMQPConnection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &AMQPConnection{conn: conn, ch: ch}, nil
}

func (c *AMQPConnection) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if c.ch == nil || c.ch.IsClosed() {
		return ErrPublisherIsClosed
	}
	return c.ch.PublishWithContext(ctx, exchange, key, mandatory, immediate, msg)
}

func (c *AMQPConnection) Close() error {
	var errs []error
	if c.ch != nil {
		errs = append(errs, c.ch.Close())
	}
	if c.conn != nil && !c.conn.IsClosed() {
		errs = append(errs, c.conn.Close())
	}
	return errors.Join(errs...)
}
