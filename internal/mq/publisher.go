package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"

	"github.com/shaiso/iikoctl/internal/order"
)

// MessageType — тип сообщения в очереди.
type MessageType string

// MessageTypeOrderPlaced — заказ принят iiko API.
const MessageTypeOrderPlaced MessageType = "order.placed"

// Message — сообщение для публикации.
type Message struct {
	ID        string          `json:"id"`
	Type      MessageType     `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// OrderPlacedPayload — payload события order.placed.
type OrderPlacedPayload struct {
	order.Placed
	Total decimal.Decimal `json:"total"`
}

// Publisher публикует сообщения в RabbitMQ.
type Publisher struct {
	conn   *Connection
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// NewPublisher создаёт новый Publisher.
func NewPublisher(conn *Connection, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		conn:   conn,
		logger: logger,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
}

// NewMessage собирает сообщение с новым ID.
func NewMessage(id string, msgType MessageType, payload any, now time.Time) (*Message, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return &Message{
		ID:        id,
		Type:      msgType,
		Payload:   body,
		Timestamp: now,
	}, nil
}

// Publish публикует сообщение в указанный exchange с routing key.
func (p *Publisher) Publish(ctx context.Context, exchange Exchange, routingKey RoutingKey, msg *Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	return p.conn.WithChannel(ctx, func(ch *amqp.Channel) error {
		err := ch.PublishWithContext(
			ctx,
			string(exchange),   // exchange
			string(routingKey), // routing key
			false,
			false,
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				MessageId:    msg.ID,
				Timestamp:    msg.Timestamp,
				Type:         string(msg.Type),
				Body:         body,
			},
		)
		if err != nil {
			return fmt.Errorf("publish to %s/%s: %w", exchange, routingKey, err)
		}

		p.logger.Debug("published message",
			"exchange", exchange,
			"routing_key", routingKey,
			"message_id", msg.ID,
			"type", msg.Type,
		)
		return nil
	})
}

// PublishOrderPlaced публикует событие о созданном заказе.
func (p *Publisher) PublishOrderPlaced(ctx context.Context, placed order.Placed) error {
	msg, err := NewMessage(p.newID(), MessageTypeOrderPlaced, OrderPlacedPayload{
		Placed: placed,
		Total:  placed.Total(),
	}, p.now())
	if err != nil {
		return err
	}
	return p.Publish(ctx, ExchangeOrders, RoutingKeyOrderPlaced, msg)
}

// OrderPlaced реализует session.OrderObserver.
func (p *Publisher) OrderPlaced(ctx context.Context, placed order.Placed) error {
	return p.PublishOrderPlaced(ctx, placed)
}
