// Package iiko — HTTP-клиент iiko Cloud API.
//
// Включает:
//   - client.go  — Client: token exchange, организации, номенклатура,
//     группы терминалов, секции/столы, создание и поиск заказов
//   - models.go  — request/response типы (имена полей совпадают с API)
//   - errors.go  — ErrTransport, ErrMissingField, APIError
//   - metrics.go — Prometheus метрики запросов
//
// Все запросы — JSON POST. Кроме Authenticate, каждый запрос несёт
// заголовок Authorization: Bearer <token>. Повторов нет: одна попытка
// на вызов, ошибка возвращается вызывающему.
package iiko
