package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Placed — заказ, принятый iiko API (order/create вернул orderInfo).
// Передаётся наблюдателям: журналу и публикатору событий.
type Placed struct {
	OrderID         string          `json:"order_id"`
	ExternalNumber  string          `json:"external_number"`
	OrganizationID  string          `json:"organization_id"`
	TerminalGroupID string          `json:"terminal_group_id"`
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name"`
	ProductSizeID   *string         `json:"product_size_id,omitempty"`
	Price           decimal.Decimal `json:"price"`
	Amount          int             `json:"amount"`
	CustomerName    string          `json:"customer_name"`
	TableIDs        []string        `json:"table_ids,omitempty"`
	CreationStatus  string          `json:"creation_status"`
	CorrelationID   string          `json:"correlation_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Total возвращает сумму позиции.
func (p Placed) Total() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Amount)))
}
