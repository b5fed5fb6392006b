package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shaiso/iikoctl/internal/console"
	"github.com/shaiso/iikoctl/internal/iiko"
	"github.com/shaiso/iikoctl/internal/order"
)

// ProductListLimit — сколько продуктов меню показывается для выбора.
const ProductListLimit = 20

const (
	noName       = "Без названия"
	notSpecified = "не указан"
)

// TableChoice — стол вместе с секцией, в которой он находится.
type TableChoice struct {
	Table   iiko.Table
	Section iiko.RestaurantSection
}

// FlattenTerminalGroups собирает группы терминалов всех организаций в один список.
func FlattenTerminalGroups(groups []iiko.TerminalGroupsByOrganization) []iiko.TerminalGroup {
	var all []iiko.TerminalGroup
	for _, g := range groups {
		all = append(all, g.Items...)
	}
	return all
}

// AvailableTables возвращает неудалённые столы всех секций.
func AvailableTables(sections []iiko.RestaurantSection) []TableChoice {
	var all []TableChoice
	for _, s := range sections {
		for _, t := range s.Tables {
			if t.IsDeleted {
				continue
			}
			all = append(all, TableChoice{Table: t, Section: s})
		}
	}
	return all
}

// ProductCandidates возвращает первые ProductListLimit продуктов.
func ProductCandidates(products []iiko.Product) []iiko.Product {
	if len(products) > ProductListLimit {
		return products[:ProductListLimit]
	}
	return products
}

// TableLabel — название стола или "Стол <номер>".
func TableLabel(t iiko.Table) string {
	if t.Name != "" {
		return t.Name
	}
	if t.Number == nil {
		return "Стол без номера"
	}
	return fmt.Sprintf("Стол %d", *t.Number)
}

// ProductPriceLabel — цена первой записи sizePrices для списка продуктов.
func ProductPriceLabel(p iiko.Product) string {
	if len(p.SizePrices) == 0 {
		return "Цена не указана"
	}
	price := p.SizePrices[0].Price
	if price == nil || price.CurrentPrice == nil || price.CurrentPrice.IsZero() {
		return "Цена не указана"
	}
	return price.CurrentPrice.String() + " руб."
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Flow — шаги выбора и вывода поверх Console.
type Flow struct {
	con *console.Console
}

// NewFlow создаёт Flow.
func NewFlow(con *console.Console) *Flow {
	return &Flow{con: con}
}

// SelectOrganization предлагает выбрать организацию. Пустой список — nil.
func (f *Flow) SelectOrganization(orgs []iiko.Organization) (*iiko.Organization, error) {
	if len(orgs) == 0 {
		return nil, nil
	}

	options := make([]string, len(orgs))
	for i, o := range orgs {
		options[i] = fmt.Sprintf("%s (ID: %s)", orDefault(o.Name, noName), o.ID)
	}

	idx, err := f.con.Choose(console.Choice{
		Title:      "Доступные организации:",
		Options:    options,
		Prompt:     "Выберите организацию",
		OutOfRange: "Неверный номер организации",
	})
	if err != nil {
		return nil, err
	}
	return &orgs[idx], nil
}

// SelectTerminalGroup предлагает выбрать группу терминалов из всех организаций ответа.
func (f *Flow) SelectTerminalGroup(groups []iiko.TerminalGroupsByOrganization) (*iiko.TerminalGroup, error) {
	if len(groups) == 0 {
		return nil, nil
	}

	all := FlattenTerminalGroups(groups)
	if len(all) == 0 {
		f.con.Println("Группы терминалов не найдены")
		return nil, nil
	}

	options := make([]string, len(all))
	for i, tg := range all {
		options[i] = fmt.Sprintf("%s - %s (ID: %s)",
			orDefault(tg.Name, noName), orDefault(tg.Address, "Адрес не указан"), tg.ID)
	}

	idx, err := f.con.Choose(console.Choice{
		Title:      "Доступные группы терминалов:",
		Options:    options,
		Prompt:     "Выберите группу терминалов",
		OutOfRange: "Неверный номер группы терминалов",
	})
	if err != nil {
		return nil, err
	}
	return &all[idx], nil
}

// SelectTable предлагает выбрать стол. Стол необязателен: пустой ввод,
// отсутствие секций или столов возвращают nil без ошибки.
func (f *Flow) SelectTable(sections []iiko.RestaurantSection) (*TableChoice, error) {
	if len(sections) == 0 {
		f.con.Println("Нет доступных секций ресторана")
		return nil, nil
	}

	all := AvailableTables(sections)
	if len(all) == 0 {
		f.con.Println("Нет доступных столов")
		return nil, nil
	}

	options := make([]string, len(all))
	for i, tc := range all {
		options[i] = fmt.Sprintf("%s (Секция: %s, Вместимость: %d чел.)",
			TableLabel(tc.Table), orDefault(tc.Section.Name, noName), tc.Table.SeatingCapacity)
	}

	idx, err := f.con.Choose(console.Choice{
		Title:      "Доступные столы:",
		Options:    options,
		Prompt:     "Выберите стол",
		OutOfRange: "Неверный номер стола",
		Optional:   true,
	})
	if errors.Is(err, console.ErrSkipped) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &all[idx], nil
}

// SelectProduct предлагает выбрать продукт из первых ProductListLimit позиций меню.
func (f *Flow) SelectProduct(products []iiko.Product) (*iiko.Product, error) {
	if len(products) == 0 {
		return nil, nil
	}

	candidates := ProductCandidates(products)
	options := make([]string, len(candidates))
	for i, p := range candidates {
		options[i] = fmt.Sprintf("%s - %s", orDefault(p.Name, noName), ProductPriceLabel(p))
	}

	idx, err := f.con.Choose(console.Choice{
		Title:      fmt.Sprintf("Доступные продукты (первые %d):", ProductListLimit),
		Options:    options,
		Prompt:     "Выберите продукт",
		OutOfRange: "Неверный номер продукта",
	})
	if err != nil {
		return nil, err
	}
	return &candidates[idx], nil
}

// AskCustomer спрашивает количество и имя клиента.
func (f *Flow) AskCustomer() (int, string, error) {
	rawAmount, err := f.con.Ask("Введите количество (по умолчанию 1): ")
	if err != nil {
		return 0, "", err
	}
	amount := console.ParseAmount(rawAmount, 1)

	name, err := f.con.Ask(fmt.Sprintf("Введите имя клиента (по умолчанию '%s'): ", order.DefaultCustomerName))
	if err != nil {
		return 0, "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = order.DefaultCustomerName
	}
	return amount, name, nil
}

// PrintMenuStats печатает размеры меню.
func (f *Flow) PrintMenuStats(menu *iiko.Nomenclature) {
	if menu == nil {
		return
	}
	f.con.Println("\nМеню получено:")
	f.con.Printf("Групп: %d\n", len(menu.Groups))
	f.con.Printf("Категорий продуктов: %d\n", len(menu.ProductCategories))
	f.con.Printf("Продуктов: %d\n", len(menu.Products))
	f.con.Printf("Размеров: %d\n", len(menu.Sizes))
	f.con.Printf("Ревизия: %d\n", menu.Revision)
}

// DisplayOrderInfo печатает заказ из order/by_id.
func (f *Flow) DisplayOrderInfo(info *iiko.OrderInfo) {
	if info == nil {
		f.con.Println("Нет данных о заказе")
		return
	}

	f.con.Println("\n📋 Информация о заказе:")
	f.con.Printf("ID: %s\n", orDefault(info.ID, notSpecified))
	f.con.Printf("POS ID: %s\n", orDefault(info.PosID, notSpecified))
	f.con.Printf("Внешний номер: %s\n", orDefault(info.ExternalNumber, notSpecified))
	f.con.Printf("Статус создания: %s\n", orDefault(info.CreationStatus, notSpecified))

	if info.ErrorInfo != nil {
		f.con.Printf("❌ Ошибка: %s\n", orDefault(info.ErrorInfo.Message, "не указана"))
		f.con.Printf("Описание: %s\n", orDefault(info.ErrorInfo.Description, "не указано"))
	}

	details := info.Order
	if details == nil {
		f.con.Println("Детали заказа недоступны (возможно, заказ еще обрабатывается)")
		return
	}

	f.con.Println("\n📦 Детали заказа:")
	f.con.Printf("Номер: %s\n", orderNumber(details))
	f.con.Printf("Статус: %s\n", orDefault(details.Status, notSpecified))
	f.con.Printf("Сумма: %s руб.\n", details.Sum.String())
	f.con.Printf("Время создания: %s\n", orDefault(details.WhenCreated, "не указано"))

	if details.Customer != nil {
		f.con.Printf("Клиент: %s\n", orDefault(details.Customer.Name, notSpecified))
	}

	if len(details.Items) > 0 {
		f.con.Printf("Позиций в заказе: %d\n", len(details.Items))
		for i, item := range details.Items {
			f.con.Printf("  %d. Количество: %s, Статус: %s\n", i+1, item.Amount.String(), orDefault(item.Status, notSpecified))
		}
	}

	if len(details.Payments) > 0 {
		paid := decimal.Zero
		for _, p := range details.Payments {
			paid = paid.Add(p.Sum)
		}
		f.con.Printf("Платежей: %d\n", len(details.Payments))
		f.con.Printf("Оплачено: %s руб.\n", paid.String())
	}
}

func orderNumber(d *iiko.OrderDetails) string {
	if d == nil || d.Number == nil {
		return notSpecified
	}
	return fmt.Sprintf("%d", *d.Number)
}
