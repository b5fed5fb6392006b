package console

import (
	"errors"
	"strconv"
	"strings"
)

// Ошибки разбора выбора.
var (
	// ErrNotANumber — ввод не является целым числом.
	ErrNotANumber = errors.New("selection is not a number")

	// ErrOutOfRange — номер вне диапазона 1..count.
	ErrOutOfRange = errors.New("selection out of range")

	// ErrSkipped — пустой ввод в необязательном выборе.
	ErrSkipped = errors.New("selection skipped")
)

// ParseSelection переводит 1-based номер из ввода в 0-based индекс.
// Не выполняет I/O.
func ParseSelection(input string, count int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if errors.Is(err, strconv.ErrRange) {
		return 0, ErrOutOfRange
	}
	if err != nil {
		return 0, ErrNotANumber
	}
	if n < 1 || n > count {
		return 0, ErrOutOfRange
	}
	return n - 1, nil
}

// ParseOptionalSelection — как ParseSelection, но пустой ввод даёт ErrSkipped.
func ParseOptionalSelection(input string, count int) (int, error) {
	if strings.TrimSpace(input) == "" {
		return 0, ErrSkipped
	}
	return ParseSelection(input, count)
}

// ParseYes — ответ "y" (без учёта регистра) считается согласием.
func ParseYes(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), "y")
}

// ParseAmount разбирает количество: пусто, не число или < 1 — значение по умолчанию.
func ParseAmount(input string, def int) int {
	s := strings.TrimSpace(input)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
