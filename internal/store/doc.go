// Package store сохраняет снимки меню организации.
//
// FileSink пишет меню в JSON-файл, RedisSink кладёт его в Redis
// с TTL, чтобы другие сервисы могли читать меню без обращения к iiko.
package store
