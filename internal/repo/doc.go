// Package repo — журнал созданных заказов в Postgres (pgx).
//
// Каждый заказ, принятый iiko API, записывается в таблицу iiko_orders.
// Схема создаётся EnsureSchema при первом подключении.
package repo
