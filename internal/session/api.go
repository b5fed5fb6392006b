package session

//go:generate mockgen -source=api.go -destination=mock_api_test.go -package=session

import (
	"context"

	"github.com/shaiso/iikoctl/internal/iiko"
	"github.com/shaiso/iikoctl/internal/order"
)

// API — операции iiko API, нужные сессии. Реализуется *iiko.Client.
type API interface {
	Authenticate(ctx context.Context, apiLogin string) (*iiko.AccessToken, error)
	ListOrganizations(ctx context.Context, token string, req iiko.OrganizationsRequest) (*iiko.OrganizationsResponse, error)
	GetMenu(ctx context.Context, token, organizationID, startRevision string) (*iiko.Nomenclature, error)
	ListTerminalGroups(ctx context.Context, token string, req iiko.TerminalGroupsRequest) (*iiko.TerminalGroupsResponse, error)
	ListAvailableSections(ctx context.Context, token string, req iiko.SectionsRequest) (*iiko.SectionsResponse, error)
	CreateOrder(ctx context.Context, token string, req iiko.CreateOrderRequest) (*iiko.CreateOrderResponse, error)
	GetOrdersByID(ctx context.Context, token string, req iiko.OrdersByIDRequest) (*iiko.OrdersResponse, error)
}

// MenuSink сохраняет сырое меню организации.
type MenuSink interface {
	// Name — куда сохраняется меню ("файл", "Redis").
	Name() string
	// SaveMenu возвращает место сохранения (путь, ключ).
	SaveMenu(ctx context.Context, organizationID string, raw []byte) (string, error)
}

// OrderObserver получает уведомление о созданном заказе.
type OrderObserver interface {
	OrderPlaced(ctx context.Context, placed order.Placed) error
}
