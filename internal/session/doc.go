// Package session реализует интерактивную сессию оператора.
//
// Структура:
//   - api.go     — зависимости сессии (API, MenuSink, OrderObserver)
//   - flow.go    — выбор организации/терминала/стола/продукта и вывод ответов
//   - session.go — последовательность шагов от токена до статуса заказа
//
// Жизненный цикл сессии:
//
//	Unauthenticated → Authenticated → OrganizationChosen → MenuLoaded
//	  → TerminalGroupChosen → TableChosen (опц.) → ProductChosen
//	  → OrderSubmitted → OrderStatusChecked (опц.)
//
// Каждый обязательный шаг требует непустого ответа предыдущего.
// Ошибка обязательного шага печатается и завершает сессию; заказ
// никогда не отправляется частично.
package session
