// Package mq публикует события о созданных заказах в RabbitMQ.
//
// Структура:
//   - connection.go — соединение и канал AMQP
//   - topology.go   — exchange iiko.orders и очередь iiko.orders.placed
//   - publisher.go  — событие order.placed
//   - consumer.go   — чтение событий для команды order events
//
// Сообщение — JSON Message{id, type, payload, timestamp}, payload —
// OrderPlacedPayload.
package mq
