package iiko

import (
	"errors"
	"fmt"
)

// Ошибки клиента.
var (
	// ErrTransport — сетевая ошибка: соединение, таймаут, обрыв ответа.
	ErrTransport = errors.New("iiko transport failure")

	// ErrMissingField — успешный ответ без обязательного поля.
	ErrMissingField = errors.New("iiko response missing field")
)

// APIError — ответ API с кодом, отличным от 2xx.
//
// Если тело ответа — стандартная ошибка iiko
// ({"errorDescription": ..., "error": ..., "correlationId": ...}),
// поля Message/Description/CorrelationID заполняются из него.
type APIError struct {
	StatusCode    int
	Status        string
	Message       string
	Description   string
	CorrelationID string
	RawBody       []byte
}

// Error реализует интерфейс error.
func (e *APIError) Error() string {
	switch {
	case e.Description != "":
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Description)
	case e.Message != "":
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Status)
	}
}

func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}
