package iiko

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

func init() {
	// iiko принимает цены только числом.
	decimal.MarshalJSONWithoutQuotes = true
}

// --- Token ---

// AccessToken — ответ access_token.
type AccessToken struct {
	CorrelationID string `json:"correlationId"`
	Token         string `json:"token"`
}

// --- Organizations ---

// OrganizationsRequest — фильтр для organizations.
type OrganizationsRequest struct {
	OrganizationIDs      []string `json:"organizationIds,omitempty"`
	ReturnAdditionalInfo bool     `json:"returnAdditionalInfo"`
	IncludeDisabled      bool     `json:"includeDisabled"`
	ReturnExternalData   []string `json:"returnExternalData,omitempty"`
}

// DefaultOrganizationsRequest возвращает фильтр «все организации с доп. информацией».
func DefaultOrganizationsRequest() OrganizationsRequest {
	return OrganizationsRequest{
		ReturnAdditionalInfo: true,
		IncludeDisabled:      true,
	}
}

// Organization — организация (ресторан) в iiko.
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OrganizationsResponse — ответ organizations.
type OrganizationsResponse struct {
	CorrelationID string         `json:"correlationId"`
	Organizations []Organization `json:"organizations"`
}

// --- Nomenclature ---

// Group — группа номенклатуры.
type Group struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductCategory — категория продуктов.
type ProductCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Size — размер продукта (S/M/L и т.п.).
type Size struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Price — цена из sizePrices.
type Price struct {
	CurrentPrice     *decimal.Decimal `json:"currentPrice"`
	IsIncludedInMenu bool             `json:"isIncludedInMenu"`
}

// SizePrice — цена продукта для конкретного размера.
//
// SizeID == nil означает, что у продукта нет размерной сетки.
type SizePrice struct {
	SizeID *string `json:"sizeId"`
	Price  *Price  `json:"price"`
}

// Product — позиция меню.
type Product struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Type       string      `json:"type,omitempty"`
	GroupID    string      `json:"groupId,omitempty"`
	SizePrices []SizePrice `json:"sizePrices"`
}

// Nomenclature — ответ nomenclature (меню организации).
//
// Raw хранит исходное тело ответа для сохранения в файл.
type Nomenclature struct {
	CorrelationID     string            `json:"correlationId"`
	Revision          int64             `json:"revision"`
	Groups            []Group           `json:"groups"`
	ProductCategories []ProductCategory `json:"productCategories"`
	Products          []Product         `json:"products"`
	Sizes             []Size            `json:"sizes"`

	Raw json.RawMessage `json:"-"`
}

// --- Terminal groups ---

// TerminalGroupsRequest — фильтр для terminal_groups.
type TerminalGroupsRequest struct {
	OrganizationIDs    []string `json:"organizationIds"`
	IncludeDisabled    bool     `json:"includeDisabled"`
	ReturnExternalData []string `json:"returnExternalData,omitempty"`
}

// TerminalGroup — группа терминалов (касс) организации.
type TerminalGroup struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organizationId"`
	Name           string `json:"name"`
	Address        string `json:"address"`
}

// TerminalGroupsByOrganization — группы терминалов одной организации.
type TerminalGroupsByOrganization struct {
	OrganizationID string          `json:"organizationId"`
	Items          []TerminalGroup `json:"items"`
}

// TerminalGroupsResponse — ответ terminal_groups.
type TerminalGroupsResponse struct {
	CorrelationID  string                         `json:"correlationId"`
	TerminalGroups []TerminalGroupsByOrganization `json:"terminalGroups"`
}

// --- Restaurant sections ---

// SectionsRequest — фильтр для reserve/available_restaurant_sections.
type SectionsRequest struct {
	TerminalGroupIDs []string `json:"terminalGroupIds"`
	ReturnSchema     bool     `json:"returnSchema"`
	Revision         int64    `json:"revision"`
}

// Table — стол в секции ресторана.
type Table struct {
	ID              string `json:"id"`
	Number          *int   `json:"number"` // nil — номер не передан
	Name            string `json:"name"`
	SeatingCapacity int    `json:"seatingCapacity"`
	Revision        int64  `json:"revision"`
	IsDeleted       bool   `json:"isDeleted"`
}

// RestaurantSection — зал/секция ресторана.
type RestaurantSection struct {
	ID              string  `json:"id"`
	TerminalGroupID string  `json:"terminalGroupId"`
	Name            string  `json:"name"`
	Tables          []Table `json:"tables"`
}

// SectionsResponse — ответ reserve/available_restaurant_sections.
type SectionsResponse struct {
	CorrelationID      string              `json:"correlationId"`
	RestaurantSections []RestaurantSection `json:"restaurantSections"`
	Revision           int64               `json:"revision"`
}

// --- Order create ---

// Item types.
const (
	ItemTypeProduct = "Product"
)

// Customer — клиент заказа.
type Customer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Type   string `json:"type"`
}

// Guests — информация о гостях.
type Guests struct {
	Count int `json:"count"`
}

// OrderItem — позиция заказа.
//
// ProductSizeID передаётся только для продуктов с размерами.
type OrderItem struct {
	ProductID     string          `json:"productId"`
	ProductSizeID *string         `json:"productSizeId,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Type          string          `json:"type"`
	Amount        int             `json:"amount"`
	Comment       string          `json:"comment"`
}

// Order — документ заказа для order/create.
type Order struct {
	ID              string      `json:"id"`
	ExternalNumber  string      `json:"externalNumber"`
	Customer        *Customer   `json:"customer,omitempty"`
	Phone           string      `json:"phone"`
	GuestCount      int         `json:"guestCount"`
	Guests          *Guests     `json:"guests,omitempty"`
	Items           []OrderItem `json:"items"`
	Combos          []any       `json:"combos"`
	Payments        []any       `json:"payments"`
	Tips            []any       `json:"tips"`
	SourceKey       string      `json:"sourceKey"`
	OrderTypeID     string      `json:"orderTypeId,omitempty"`
	PriceCategoryID string      `json:"priceCategoryId,omitempty"`
	TableIDs        []string    `json:"tableIds,omitempty"`
}

// CreateOrderSettings — настройки создания заказа.
type CreateOrderSettings struct {
	ServicePrint            bool `json:"servicePrint"`
	TransportToFrontTimeout int  `json:"transportToFrontTimeout"`
	CheckStopList           bool `json:"checkStopList"`
}

// DefaultCreateOrderSettings — без сервисной печати и проверки стоп-листа.
func DefaultCreateOrderSettings() *CreateOrderSettings {
	return &CreateOrderSettings{
		ServicePrint:            false,
		TransportToFrontTimeout: 0,
		CheckStopList:           false,
	}
}

// CreateOrderRequest — тело order/create.
type CreateOrderRequest struct {
	OrganizationID  string               `json:"organizationId"`
	TerminalGroupID string               `json:"terminalGroupId"`
	Order           *Order               `json:"order"`
	Settings        *CreateOrderSettings `json:"createOrderSettings"`
}

// --- Order info ---

// ErrorInfo — ошибка создания заказа на стороне iiko.
type ErrorInfo struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

// OrderCustomer — клиент в деталях заказа.
type OrderCustomer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OrderDetailsItem — позиция в деталях заказа.
type OrderDetailsItem struct {
	Amount decimal.Decimal `json:"amount"`
	Status string          `json:"status"`
}

// OrderPayment — оплата в деталях заказа.
type OrderPayment struct {
	Sum decimal.Decimal `json:"sum"`
}

// OrderDetails — детали заказа, доступные после обработки терминалом.
type OrderDetails struct {
	Number      *int64             `json:"number"`
	Status      string             `json:"status"`
	Sum         decimal.Decimal    `json:"sum"`
	WhenCreated string             `json:"whenCreated"`
	Customer    *OrderCustomer     `json:"customer"`
	Items       []OrderDetailsItem `json:"items"`
	Payments    []OrderPayment     `json:"payments"`
}

// OrderInfo — заказ в ответах order/create и order/by_id.
type OrderInfo struct {
	ID             string        `json:"id"`
	PosID          string        `json:"posId,omitempty"`
	ExternalNumber string        `json:"externalNumber,omitempty"`
	OrganizationID string        `json:"organizationId,omitempty"`
	Timestamp      int64         `json:"timestamp,omitempty"`
	CreationStatus string        `json:"creationStatus"`
	ErrorInfo      *ErrorInfo    `json:"errorInfo"`
	Order          *OrderDetails `json:"order"`
}

// CreateOrderResponse — ответ order/create.
type CreateOrderResponse struct {
	CorrelationID string     `json:"correlationId"`
	OrderInfo     *OrderInfo `json:"orderInfo"`

	Raw json.RawMessage `json:"-"`
}

// --- Order by id ---

// OrdersByIDRequest — фильтр для order/by_id. Пустые списки не передаются.
type OrdersByIDRequest struct {
	OrderIDs               []string `json:"orderIds,omitempty"`
	OrganizationIDs        []string `json:"organizationIds,omitempty"`
	PosOrderIDs            []string `json:"posOrderIds,omitempty"`
	SourceKeys             []string `json:"sourceKeys,omitempty"`
	ReturnExternalDataKeys []string `json:"returnExternalDataKeys,omitempty"`
}

// OrdersResponse — ответ order/by_id.
type OrdersResponse struct {
	CorrelationID string      `json:"correlationId"`
	Orders        []OrderInfo `json:"orders"`
}
