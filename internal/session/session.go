package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shaiso/iikoctl/internal/console"
	"github.com/shaiso/iikoctl/internal/iiko"
	"github.com/shaiso/iikoctl/internal/order"
	"github.com/shaiso/iikoctl/internal/telemetry"
)

// errStopped — сессия завершена с сообщением оператору, процесс завершается штатно.
var errStopped = errors.New("session stopped")

// Config — зависимости сессии.
type Config struct {
	API       API
	Console   *console.Console
	Builder   *order.Builder
	Logger    *slog.Logger // nil — логгер из контекста Run
	APILogin  string // пусто — спросить у оператора
	MenuSinks []MenuSink
	Observers []OrderObserver
	Now       func() time.Time
}

// Session — одна интерактивная сессия оператора.
type Session struct {
	api       API
	con       *console.Console
	flow      *Flow
	builder   *order.Builder
	logger    *slog.Logger
	apiLogin  string
	menuSinks []MenuSink
	observers []OrderObserver
	now       func() time.Time
}

// New создаёт Session.
func New(cfg Config) *Session {
	s := &Session{
		api:       cfg.API,
		con:       cfg.Console,
		flow:      NewFlow(cfg.Console),
		builder:   cfg.Builder,
		logger:    cfg.Logger,
		apiLogin:  cfg.APILogin,
		menuSinks: cfg.MenuSinks,
		observers: cfg.Observers,
		now:       cfg.Now,
	}
	if s.builder == nil {
		s.builder = order.NewBuilder()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// state — данные, накопленные по ходу сессии.
type state struct {
	token  string
	org    *iiko.Organization
	menu   *iiko.Nomenclature
	logger *slog.Logger
}

// Run проводит сессию от получения токена до (опционально) проверки статуса заказа.
//
// Возвращает nil при штатном завершении и при остановке из-за отсутствия
// данных. Ошибку — если сессию оборвал сетевой сбой (iiko.ErrTransport)
// или закрылся ввод (console.ErrInputClosed).
func (s *Session) Run(ctx context.Context) error {
	err := s.run(ctx)
	if errors.Is(err, errStopped) {
		return nil
	}
	return err
}

func (s *Session) run(ctx context.Context) error {
	s.con.Println("iiko API Client")
	s.con.Println(strings.Repeat("=", 30))

	logger := s.logger
	if logger == nil {
		logger = telemetry.FromContext(ctx)
	}
	st := &state{logger: logger}

	if err := s.authenticate(ctx, st); err != nil {
		return err
	}
	if err := s.chooseOrganization(ctx, st); err != nil {
		return err
	}
	if err := s.loadMenu(ctx, st); err != nil {
		return err
	}

	create, err := s.con.Confirm("\nСоздать тестовый заказ? (y/n): ")
	if err != nil {
		return err
	}
	if !create {
		s.printMenuSample(st.menu)
		return nil
	}

	return s.placeOrder(ctx, st)
}

func (s *Session) authenticate(ctx context.Context, st *state) error {
	apiLogin := s.apiLogin
	if apiLogin == "" {
		input, err := s.con.Ask("Введите apiLogin: ")
		if err != nil {
			return err
		}
		apiLogin = strings.TrimSpace(input)
	}
	if apiLogin == "" {
		return s.stop("API логин не может быть пустым!")
	}

	s.con.Println("Получение токена доступа...")
	token, err := s.api.Authenticate(ctx, apiLogin)
	if err != nil {
		return s.abort(st, "authenticate", err, "Не удалось получить токен")
	}

	st.token = token.Token
	s.con.Printf("Токен получен: %s\n", token.CorrelationID)
	st.logger.Info("authenticated", "correlation_id", token.CorrelationID)
	return nil
}

func (s *Session) chooseOrganization(ctx context.Context, st *state) error {
	s.con.Println("\nПолучение списка организаций...")
	resp, err := s.api.ListOrganizations(ctx, st.token, iiko.DefaultOrganizationsRequest())
	if err != nil {
		return s.abort(st, "organizations", err, "Не удалось получить список организаций")
	}

	org, err := s.flow.SelectOrganization(resp.Organizations)
	if err != nil {
		return err
	}
	if org == nil {
		return s.stop("Организация не выбрана")
	}

	st.org = org
	st.logger = telemetry.WithOrganizationID(st.logger, org.ID)
	return nil
}

func (s *Session) loadMenu(ctx context.Context, st *state) error {
	s.con.Printf("\nПолучение меню для организации %s...\n", st.org.ID)
	menu, err := s.api.GetMenu(ctx, st.token, st.org.ID, "0")
	if err != nil {
		return s.abort(st, "nomenclature", err, "Не удалось получить меню")
	}
	st.menu = menu

	s.flow.PrintMenuStats(menu)
	st.logger.Info("menu loaded", "revision", menu.Revision, "products", len(menu.Products))

	return s.saveMenu(ctx, st)
}

// saveMenu предлагает сохранить сырое меню во все настроенные хранилища.
// Ошибка сохранения не прерывает сессию.
func (s *Session) saveMenu(ctx context.Context, st *state) error {
	if len(s.menuSinks) == 0 {
		return nil
	}

	save, err := s.con.Confirm("\nСохранить полные данные в файл? (y/n): ")
	if err != nil || !save {
		return err
	}

	for _, sink := range s.menuSinks {
		location, err := sink.SaveMenu(ctx, st.org.ID, st.menu.Raw)
		if err != nil {
			st.logger.Warn("failed to save menu", "sink", sink.Name(), "error", err)
			s.con.Printf("Не удалось сохранить меню (%s): %v\n", sink.Name(), err)
			continue
		}
		s.con.Printf("Меню сохранено в %s: %s\n", sink.Name(), location)
	}
	return nil
}

// menuSample — краткая сводка меню, когда заказ не создаётся.
type menuSample struct {
	CorrelationID string `json:"correlationId"`
	Revision      int64  `json:"revision"`
	GroupsCount   int    `json:"groups_count"`
	ProductsCount int    `json:"products_count"`
}

func (s *Session) printMenuSample(menu *iiko.Nomenclature) {
	s.con.Println("\nПример данных:")
	s.con.JSON(menuSample{
		CorrelationID: menu.CorrelationID,
		Revision:      menu.Revision,
		GroupsCount:   len(menu.Groups),
		ProductsCount: len(menu.Products),
	})
}

func (s *Session) placeOrder(ctx context.Context, st *state) error {
	if len(st.menu.Products) == 0 {
		return s.stop("В меню нет продуктов для заказа")
	}

	s.con.Println("\nПолучение групп терминалов...")
	tgResp, err := s.api.ListTerminalGroups(ctx, st.token, iiko.TerminalGroupsRequest{
		OrganizationIDs: []string{st.org.ID},
		IncludeDisabled: true,
	})
	if err != nil {
		return s.abort(st, "terminal_groups", err, "Не удалось получить группы терминалов")
	}

	tg, err := s.flow.SelectTerminalGroup(tgResp.TerminalGroups)
	if err != nil {
		return err
	}
	if tg == nil {
		return s.stop("Группа терминалов не выбрана")
	}

	table, err := s.chooseTable(ctx, st, tg.ID)
	if err != nil {
		return err
	}

	product, err := s.flow.SelectProduct(st.menu.Products)
	if err != nil {
		return err
	}
	if product == nil {
		return s.stop("Продукт не выбран")
	}

	sizeID, price := order.ExtractSizeAndPrice(*product)
	if sizeID != nil {
		s.con.Printf("Используемый productSizeId: %s\n", *sizeID)
	} else {
		s.con.Println("ProductSizeId не указывается (продукт без размеров)")
	}
	s.con.Printf("Цена продукта: %s\n", price.String())

	amount, customerName, err := s.flow.AskCustomer()
	if err != nil {
		return err
	}

	var tableIDs []string
	if table != nil {
		tableIDs = []string{table.Table.ID}
		s.con.Printf("Заказ будет привязан к столу: %s\n", TableLabel(table.Table))
	}

	s.con.Printf("\nСоздание заказа с продуктом: %s\n", product.Name)
	doc := s.builder.Build(
		order.Line{ProductID: product.ID, SizeID: sizeID, Price: price, Amount: amount},
		order.Options{CustomerName: customerName, TableIDs: tableIDs},
	)
	req := iiko.CreateOrderRequest{
		OrganizationID:  st.org.ID,
		TerminalGroupID: tg.ID,
		Order:           doc,
		Settings:        iiko.DefaultCreateOrderSettings(),
	}

	s.con.Println("Отправляемые данные заказа:")
	s.con.JSON(req)

	resp, err := s.api.CreateOrder(ctx, st.token, req)
	if err != nil {
		return s.abort(st, "order_create", err, "Не удалось создать заказ")
	}

	info := resp.OrderInfo
	s.printCreated(resp)

	if info != nil {
		s.notify(ctx, st, order.Placed{
			OrderID:         info.ID,
			ExternalNumber:  doc.ExternalNumber,
			OrganizationID:  st.org.ID,
			TerminalGroupID: tg.ID,
			ProductID:       product.ID,
			ProductName:     product.Name,
			ProductSizeID:   sizeID,
			Price:           price,
			Amount:          doc.Items[0].Amount,
			CustomerName:    customerName,
			TableIDs:        tableIDs,
			CreationStatus:  info.CreationStatus,
			CorrelationID:   resp.CorrelationID,
			CreatedAt:       s.now(),
		})
	}

	if info == nil || info.ID == "" {
		return nil
	}
	return s.checkStatus(ctx, st, info.ID)
}

// chooseTable запрашивает столы. Любая неудача — заказ без стола.
func (s *Session) chooseTable(ctx context.Context, st *state, terminalGroupID string) (*TableChoice, error) {
	s.con.Println("\nПолучение доступных столов...")
	resp, err := s.api.ListAvailableSections(ctx, st.token, iiko.SectionsRequest{
		TerminalGroupIDs: []string{terminalGroupID},
		ReturnSchema:     true,
	})
	if err != nil || len(resp.RestaurantSections) == 0 {
		if err != nil {
			st.logger.Warn("restaurant sections unavailable", "error", err)
			s.reportError(err)
		}
		s.con.Println("Не удалось получить информацию о столах, заказ будет создан без привязки к столу")
		return nil, nil
	}

	choice, err := s.flow.SelectTable(resp.RestaurantSections)
	if err != nil {
		return nil, err
	}
	if choice == nil {
		s.con.Println("Стол не выбран, заказ будет создан без привязки к столу")
	}
	return choice, nil
}

func (s *Session) printCreated(resp *iiko.CreateOrderResponse) {
	s.con.Println("\nЗаказ создан успешно!")

	info := resp.OrderInfo
	if info == nil {
		s.con.Println("Информация о заказе отсутствует в ответе")
	} else {
		s.con.Printf("ID заказа: %s\n", orDefault(info.ID, notSpecified))
		s.con.Printf("Статус создания: %s\n", orDefault(info.CreationStatus, notSpecified))
		s.con.Printf("Номер заказа: %s\n", orderNumber(info.Order))
		if info.ErrorInfo != nil {
			s.con.Printf("Ошибка: %s\n", orDefault(info.ErrorInfo.Message, "Неизвестная ошибка"))
		}
	}

	s.con.Println("\nПолный ответ:")
	if len(resp.Raw) > 0 {
		s.con.RawJSON(resp.Raw)
	} else {
		s.con.JSON(resp)
	}
}

// notify уведомляет наблюдателей. Ошибки только логируются: заказ уже создан.
func (s *Session) notify(ctx context.Context, st *state, placed order.Placed) {
	logger := telemetry.WithOrderID(st.logger, placed.OrderID)
	logger.Info("order created", "creation_status", placed.CreationStatus, "external_number", placed.ExternalNumber)

	for _, o := range s.observers {
		if err := o.OrderPlaced(ctx, placed); err != nil {
			logger.Warn("order observer failed", "observer", fmt.Sprintf("%T", o), "error", err)
		}
	}
}

// checkStatus — необязательный шаг: ошибки печатаются, но не обрывают процесс.
func (s *Session) checkStatus(ctx context.Context, st *state, orderID string) error {
	check, err := s.con.Confirm("\nПроверить статус заказа? (y/n): ")
	if err != nil || !check {
		return err
	}

	s.con.Printf("\nПроверка статуса заказа %s...\n", orderID)
	resp, err := s.api.GetOrdersByID(ctx, st.token, iiko.OrdersByIDRequest{
		OrderIDs:        []string{orderID},
		OrganizationIDs: []string{st.org.ID},
	})
	if err != nil {
		st.logger.Warn("order status unavailable", "order_id", orderID, "error", err)
		s.reportError(err)
		s.con.Println("Не удалось получить статус заказа")
		return nil
	}

	if len(resp.Orders) == 0 {
		s.con.Println("Заказ не найден")
		return nil
	}
	s.flow.DisplayOrderInfo(&resp.Orders[0])
	return nil
}

// stop печатает причину остановки.
func (s *Session) stop(msg string) error {
	s.con.Println(msg)
	return errStopped
}

// abort печатает ошибку шага и причину остановки. Сетевой сбой
// возвращается как есть, остальные ошибки — штатная остановка.
func (s *Session) abort(st *state, step string, err error, msg string) error {
	st.logger.Warn("session step failed", "step", step, "error", err)
	s.reportError(err)
	s.con.Println(msg)

	if errors.Is(err, iiko.ErrTransport) {
		return fmt.Errorf("%s: %w", step, err)
	}
	return errStopped
}

// reportError печатает ошибку API в виде, удобном оператору.
func (s *Session) reportError(err error) {
	var apiErr *iiko.APIError
	if !errors.As(err, &apiErr) {
		s.con.Printf("Ошибка при запросе: %v\n", err)
		return
	}

	s.con.Printf("Ошибка HTTP %d: %s\n", apiErr.StatusCode, apiErr.Status)
	if len(apiErr.RawBody) == 0 {
		return
	}
	if apiErr.Description != "" || apiErr.Message != "" {
		s.con.Println("Детали ошибки:")
		s.con.RawJSON(apiErr.RawBody)
		return
	}
	s.con.Printf("Текст ошибки: %s\n", apiErr.RawBody)
}
