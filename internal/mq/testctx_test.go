package mq

import (
	"context"
	"testing"
)

// testContext заменяет testContext(t) (Go 1.24+) для тулчейна Go 1.21:
// контекст отменяется при завершении теста.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
