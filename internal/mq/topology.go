package mq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Exchange — тип для имени обменника.
type Exchange string

// Queue — тип для имени очереди.
type Queue string

// RoutingKey — тип для ключа маршрутизации.
type RoutingKey string

// ExchangeOrders — topic-обменник событий заказов.
const ExchangeOrders Exchange = "iiko.orders"

// QueueOrdersPlaced — очередь событий order.placed.
const QueueOrdersPlaced Queue = "iiko.orders.placed"

// RoutingKeyOrderPlaced — ключ события о созданном заказе.
const RoutingKeyOrderPlaced RoutingKey = "order.placed"

// SetupTopology объявляет обменник и очередь. Операции идемпотентны.
func SetupTopology(ctx context.Context, conn *Connection) error {
	return conn.WithChannel(ctx, func(ch *amqp.Channel) error {
		err := ch.ExchangeDeclare(
			string(ExchangeOrders), // name
			"topic",                // type
			true,                   // durable
			false,                  // auto-deleted
			false,                  // internal
			false,                  // no-wait
			nil,                    // arguments
		)
		if err != nil {
			return fmt.Errorf("declare exchange %s: %w", ExchangeOrders, err)
		}

		_, err = ch.QueueDeclare(
			string(QueueOrdersPlaced), // name
			true,                      // durable
			false,                     // delete when unused
			false,                     // exclusive
			false,                     // no-wait
			nil,                       // arguments
		)
		if err != nil {
			return fmt.Errorf("declare queue %s: %w", QueueOrdersPlaced, err)
		}

		err = ch.QueueBind(
			string(QueueOrdersPlaced),     // queue name
			string(RoutingKeyOrderPlaced), // routing key
			string(ExchangeOrders),        // exchange
			false,                         // no-wait
			nil,                           // arguments
		)
		if err != nil {
			return fmt.Errorf("bind queue %s to %s: %w", QueueOrdersPlaced, ExchangeOrders, err)
		}
		return nil
	})
}
