package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrMalformedMessage — сообщение не разбирается; повторная доставка не поможет.
var ErrMalformedMessage = errors.New("malformed message")

// Handler — функция обработки сообщения.
// Возвращает error, если обработка не удалась (сообщение будет nack).
// Ошибка с ErrMalformedMessage отбрасывает сообщение, остальные
// возвращают его в очередь.
type Handler func(ctx context.Context, msg *Message) error

// Consumer читает сообщения из очереди RabbitMQ.
type Consumer struct {
	conn     *Connection
	logger   *slog.Logger
	queue    Queue
	handler  Handler
	prefetch int
	limit    int
}

// ConsumerConfig — конфигурация consumer.
type ConsumerConfig struct {
	Queue    Queue
	Handler  Handler
	Prefetch int
	// Limit — сколько сообщений обработать; 0 — до отмены контекста.
	Limit int
}

// NewConsumer создаёт новый Consumer.
func NewConsumer(conn *Connection, logger *slog.Logger, cfg ConsumerConfig) *Consumer {
	if logger == nil {
		logger = slog.Default()
	}
	prefetch := cfg.Prefetch
	if prefetch <= 0 {
		prefetch = 1
	}

	return &Consumer{
		conn:     conn,
		logger:   logger,
		queue:    cfg.Queue,
		handler:  cfg.Handler,
		prefetch: prefetch,
		limit:    cfg.Limit,
	}
}

// Run читает сообщения до отмены контекста или до Limit обработанных.
func (c *Consumer) Run(ctx context.Context) error {
	ch := c.conn.Channel()
	if ch == nil {
		return ErrNoChannel
	}

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := ch.Consume(
		string(c.queue), // queue
		"",              // consumer tag (auto-generated)
		false,           // auto-ack
		false,           // exclusive
		false,           // no-local
		false,           // no-wait
		nil,             // args
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	c.logger.Debug("consumer started", "queue", c.queue)

	handled := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case raw, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("deliveries channel closed")
			}
			if c.handleDelivery(ctx, raw) {
				handled++
			}
			if c.limit > 0 && handled >= c.limit {
				return nil
			}
		}
	}
}

// handleDelivery обрабатывает одно сообщение и сообщает, было ли оно принято.
func (c *Consumer) handleDelivery(ctx context.Context, raw amqp.Delivery) bool {
	var msg Message
	if err := json.Unmarshal(raw.Body, &msg); err != nil {
		c.logger.Warn("failed to unmarshal message",
			"queue", c.queue,
			"error", err,
			"body", string(raw.Body),
		)
		raw.Nack(false, false)
		return false
	}

	if err := c.handler(ctx, &msg); err != nil {
		requeue := !errors.Is(err, ErrMalformedMessage)
		c.logger.Warn("handler failed",
			"queue", c.queue,
			"message_id", msg.ID,
			"requeue", requeue,
			"error", err,
		)
		raw.Nack(false, requeue)
		return false
	}

	raw.Ack(false)
	return true
}

// ParsePayload парсит payload сообщения в указанный тип.
func ParsePayload[T any](msg *Message) (T, error) {
	var result T
	if err := json.Unmarshal(msg.Payload, &result); err != nil {
		return result, fmt.Errorf("%w: unmarshal payload: %v", ErrMalformedMessage, err)
	}
	return result, nil
}
