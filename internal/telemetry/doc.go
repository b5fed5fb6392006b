// Package telemetry обеспечивает наблюдаемость CLI.
//
// Включает:
//   - logging.go — structured logging через slog
//   - metrics.go — Prometheus registry и выгрузка в textfile
//
// Логи пишутся в stderr: stdout занят диалогом с оператором.
package telemetry
