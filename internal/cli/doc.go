// Package cli реализует команды iikoctl.
//
// # Обзор
//
// Без подкоманды iikoctl запускает интерактивную сессию (пакет session):
// выбор организации, меню, группы терминалов, стола и продукта, затем
// создание тестового заказа. Подкоманды дают те же данные без диалога,
// что удобно в скриптах:
//   - org: list
//   - menu: show, products
//   - terminal: list
//   - table: list
//   - order: status, history, events
//
// # Ключевые компоненты
//
// ## Deps
//
// Общие зависимости команд: конфигурация, логгер, метрики и потоки
// ввода/вывода. Клиент iiko, хранилища меню и наблюдатели заказов
// создаются лениво, после разбора PersistentFlags.
//
// ## Output
//
// Форматирование вывода. Поддерживает два режима:
//   - Таблицы (text/tabwriter) — по умолчанию
//   - JSON — с флагом --json
//
// Данные выводятся в stdout, сообщения (Success/Error) — в stderr.
// Это позволяет использовать pipe: iikoctl org list --json | jq .
package cli
