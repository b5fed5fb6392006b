package iiko

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shaiso/iikoctl/internal/telemetry"
)

const (
	// DefaultBaseURL — облачный iiko API (RU).
	DefaultBaseURL = "https://api-ru.iiko.services"

	// DefaultTimeout — таймаут одного запроса.
	DefaultTimeout = 30 * time.Second

	apiPrefix       = "/api/1/"
	maxResponseBody = 64 * 1024 * 1024 // номенклатура крупных сетей весит десятки MB
)

// Endpoints.
const (
	endpointAccessToken    = "access_token"
	endpointOrganizations  = "organizations"
	endpointNomenclature   = "nomenclature"
	endpointTerminalGroups = "terminal_groups"
	endpointSections       = "reserve/available_restaurant_sections"
	endpointOrderCreate    = "order/create"
	endpointOrderByID      = "order/by_id"
)

// Client — HTTP-клиент для iiko Cloud API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *Metrics
}

// Option настраивает Client.
type Option func(*Client)

// WithHTTPClient подменяет http.Client (тесты, прокси).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout задаёт таймаут запроса.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithMetrics включает сбор метрик.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient создаёт клиент. Пустой baseURL — DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Authenticate обменивает apiLogin на bearer-токен.
func (c *Client) Authenticate(ctx context.Context, apiLogin string) (*AccessToken, error) {
	body := map[string]string{"apiLogin": apiLogin}

	var token AccessToken
	if _, err := c.post(ctx, endpointAccessToken, "", body, &token); err != nil {
		return nil, err
	}
	if token.Token == "" {
		return nil, missingField("token")
	}
	return &token, nil
}

// ListOrganizations возвращает организации, доступные apiLogin.
func (c *Client) ListOrganizations(ctx context.Context, token string, req OrganizationsRequest) (*OrganizationsResponse, error) {
	var resp OrganizationsResponse
	if _, err := c.post(ctx, endpointOrganizations, token, req, &resp); err != nil {
		return nil, err
	}
	if resp.Organizations == nil {
		return nil, missingField("organizations")
	}
	return &resp, nil
}

// GetMenu возвращает номенклатуру организации. Пустой startRevision — "0" (полное меню).
func (c *Client) GetMenu(ctx context.Context, token, organizationID, startRevision string) (*Nomenclature, error) {
	if startRevision == "" {
		startRevision = "0"
	}
	body := map[string]string{
		"organizationId": organizationID,
		"startRevision":  startRevision,
	}

	raw, err := c.post(ctx, endpointNomenclature, token, body, nil)
	if err != nil {
		return nil, err
	}
	return ParseNomenclature(raw)
}

// ParseNomenclature разбирает тело ответа nomenclature (в том числе
// сохранённое ранее) и оставляет его в Raw.
func ParseNomenclature(raw []byte) (*Nomenclature, error) {
	var menu Nomenclature
	if err := json.Unmarshal(raw, &menu); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", endpointNomenclature, err)
	}
	menu.Raw = raw
	return &menu, nil
}

// ListTerminalGroups возвращает группы терминалов, сгруппированные по организациям.
func (c *Client) ListTerminalGroups(ctx context.Context, token string, req TerminalGroupsRequest) (*TerminalGroupsResponse, error) {
	var resp TerminalGroupsResponse
	if _, err := c.post(ctx, endpointTerminalGroups, token, req, &resp); err != nil {
		return nil, err
	}
	if resp.TerminalGroups == nil {
		return nil, missingField("terminalGroups")
	}
	return &resp, nil
}

// ListAvailableSections возвращает секции ресторана со столами.
func (c *Client) ListAvailableSections(ctx context.Context, token string, req SectionsRequest) (*SectionsResponse, error) {
	var resp SectionsResponse
	if _, err := c.post(ctx, endpointSections, token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateOrder отправляет заказ на терминал. Если req.Settings == nil,
// используются DefaultCreateOrderSettings.
func (c *Client) CreateOrder(ctx context.Context, token string, req CreateOrderRequest) (*CreateOrderResponse, error) {
	if req.Settings == nil {
		req.Settings = DefaultCreateOrderSettings()
	}

	var resp CreateOrderResponse
	raw, err := c.post(ctx, endpointOrderCreate, token, req, &resp)
	if err != nil {
		return nil, err
	}
	resp.Raw = raw
	return &resp, nil
}

// GetOrdersByID ищет заказы по ID (или POS ID / sourceKey).
func (c *Client) GetOrdersByID(ctx context.Context, token string, req OrdersByIDRequest) (*OrdersResponse, error) {
	var resp OrdersResponse
	if _, err := c.post(ctx, endpointOrderByID, token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// --- HTTP helpers ---

// post выполняет JSON POST и декодирует ответ в result.
// Возвращает сырое тело ответа. Логгер берётся из контекста.
func (c *Client) post(ctx context.Context, endpoint, token string, body, result any) ([]byte, error) {
	logger := telemetry.FromContext(ctx)

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiPrefix+endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(endpoint, 0, time.Since(start))
		logger.Debug("iiko request failed", "endpoint", endpoint, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", ErrTransport, endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	elapsed := time.Since(start)
	c.metrics.observe(endpoint, resp.StatusCode, elapsed)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s response: %v", ErrTransport, endpoint, err)
	}

	logger.Debug("iiko request",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"duration", elapsed,
		"bytes", len(raw),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp, raw)
	}

	if result != nil {
		if err := json.Unmarshal(raw, result); err != nil {
			return nil, fmt.Errorf("decode %s response: %w", endpoint, err)
		}
	}
	return raw, nil
}

// errorBody — стандартное тело ошибки iiko.
type errorBody struct {
	CorrelationID    string `json:"correlationId"`
	ErrorDescription string `json:"errorDescription"`
	Error            string `json:"error"`
}

func newAPIError(resp *http.Response, raw []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Status:     http.StatusText(resp.StatusCode),
		RawBody:    raw,
	}

	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		apiErr.Message = eb.Error
		apiErr.Description = eb.ErrorDescription
		apiErr.CorrelationID = eb.CorrelationID
	}
	return apiErr
}
