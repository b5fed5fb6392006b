// Package order собирает документ заказа для iiko order/create.
package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shaiso/iikoctl/internal/iiko"
)

// Значения по умолчанию тестового заказа.
const (
	DefaultCustomerName = "Тестовый заказ"
	DefaultPhone        = "77777777777"
	DefaultSourceKey    = "api-test"

	customerGender = "NotSpecified"
	customerType   = "one_time"

	externalNumberLayout = "20060102-150405"
)

// Line — единственная позиция заказа.
type Line struct {
	ProductID string
	SizeID    *string // nil — продукт без размеров
	Price     decimal.Decimal
	Amount    int // < 1 трактуется как 1
}

// Options — необязательные атрибуты заказа. Пустые значения не попадают в документ.
type Options struct {
	CustomerName    string
	OrderTypeID     string
	PriceCategoryID string
	TableIDs        []string
}

// Builder создаёт документы заказа.
type Builder struct {
	now   func() time.Time
	newID func() string
}

// NewBuilder создаёт Builder с системными часами и UUID v4.
func NewBuilder() *Builder {
	return &Builder{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// Build собирает документ заказа с одной позицией.
func (b *Builder) Build(line Line, opts Options) *iiko.Order {
	amount := line.Amount
	if amount < 1 {
		amount = 1
	}

	name := opts.CustomerName
	if name == "" {
		name = DefaultCustomerName
	}

	item := iiko.OrderItem{
		ProductID: line.ProductID,
		Price:     line.Price,
		Type:      iiko.ItemTypeProduct,
		Amount:    amount,
		Comment:   "",
	}
	if line.SizeID != nil {
		sizeID := *line.SizeID
		item.ProductSizeID = &sizeID
	}

	order := &iiko.Order{
		ID:             b.newID(),
		ExternalNumber: ExternalNumber(b.now()),
		Customer: &iiko.Customer{
			ID:     b.newID(),
			Name:   name,
			Gender: customerGender,
			Type:   customerType,
		},
		Phone:      DefaultPhone,
		GuestCount: 1,
		Guests:     &iiko.Guests{Count: 1},
		Items:      []iiko.OrderItem{item},
		Combos:     []any{},
		Payments:   []any{},
		Tips:       []any{},
		SourceKey:  DefaultSourceKey,

		OrderTypeID:     opts.OrderTypeID,
		PriceCategoryID: opts.PriceCategoryID,
	}
	if len(opts.TableIDs) > 0 {
		order.TableIDs = append([]string(nil), opts.TableIDs...)
	}

	return order
}

// ExternalNumber форматирует внешний номер заказа: TEST-YYYYMMDD-HHMMSS.
// Два заказа в пределах одной секунды получат одинаковый номер.
func ExternalNumber(t time.Time) string {
	return "TEST-" + t.Format(externalNumberLayout)
}

// ExtractSizeAndPrice берёт размер и цену из первой записи sizePrices.
//
// Нет записей — (nil, 0). sizeId == null — размер не передаётся.
// Нет цены — 0: бесплатная позиция допустима.
func ExtractSizeAndPrice(p iiko.Product) (*string, decimal.Decimal) {
	if len(p.SizePrices) == 0 {
		return nil, decimal.Zero
	}

	first := p.SizePrices[0]

	var sizeID *string
	if first.SizeID != nil {
		id := *first.SizeID
		sizeID = &id
	}

	price := decimal.Zero
	if first.Price != nil && first.Price.CurrentPrice != nil {
		price = *first.Price.CurrentPrice
	}

	return sizeID, price
}
