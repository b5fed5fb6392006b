package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/shaiso/iikoctl/internal/config"
	"github.com/shaiso/iikoctl/internal/iiko"
	"github.com/shaiso/iikoctl/internal/mq"
	"github.com/shaiso/iikoctl/internal/repo"
	"github.com/shaiso/iikoctl/internal/session"
	"github.com/shaiso/iikoctl/internal/store"
)

// Ошибки конфигурации команд.
var (
	// ErrNoAPILogin — apiLogin не задан ни флагом, ни переменной окружения.
	ErrNoAPILogin = errors.New("api login is not set (use --api-login or IIKO_API_LOGIN)")

	// ErrNoJournal — журнал заказов не настроен.
	ErrNoJournal = errors.New("order journal is not configured (set DB_URL)")

	// ErrNoBroker — RabbitMQ не настроен.
	ErrNoBroker = errors.New("message broker is not configured (set RABBITMQ_URL)")
)

// Deps — общие зависимости команд.
//
// Config заполняется из окружения до разбора флагов и дополняется
// флагами, поэтому всё остальное создаётся лениво внутри RunE.
type Deps struct {
	Config *config.Config
	JSON   bool
	Logger *slog.Logger

	In  io.Reader
	Out io.Writer
	Err io.Writer

	metrics *iiko.Metrics
}

// NewDeps создаёт Deps. reg == nil — без метрик.
func NewDeps(cfg *config.Config, reg prometheus.Registerer, logger *slog.Logger, in io.Reader, out, errW io.Writer) *Deps {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Deps{
		Config: cfg,
		Logger: logger,
		In:     in,
		Out:    out,
		Err:    errW,
	}
	if reg != nil {
		d.metrics = iiko.NewMetrics(reg)
	}
	return d
}

// Client создаёт клиент iiko API по текущей конфигурации.
// Логгер клиент берёт из контекста запроса.
func (d *Deps) Client() *iiko.Client {
	return iiko.NewClient(d.Config.APIURL,
		iiko.WithTimeout(d.Config.Timeout),
		iiko.WithMetrics(d.metrics),
	)
}

// Output создаёт Output по флагу --json.
func (d *Deps) Output() *Output {
	return NewOutput(d.JSON, d.Out, d.Err)
}

// Token получает токен по настроенному apiLogin.
func (d *Deps) Token(ctx context.Context, client *iiko.Client) (string, error) {
	if d.Config.APILogin == "" {
		return "", ErrNoAPILogin
	}
	token, err := client.Authenticate(ctx, d.Config.APILogin)
	if err != nil {
		return "", fmt.Errorf("authenticate: %w", err)
	}
	return token.Token, nil
}

// closers закрывает ресурсы в обратном порядке.
type closers []func()

func (c closers) Close() {
	for i := len(c) - 1; i >= 0; i-- {
		c[i]()
	}
}

// MenuSinks возвращает хранилища меню: файл всегда, Redis — если задан REDIS_ADDR.
// Недоступный Redis пропускается с предупреждением.
func (d *Deps) MenuSinks(ctx context.Context) ([]session.MenuSink, func()) {
	sinks := []session.MenuSink{store.NewFileSink(d.Config.MenuDir)}
	var cl closers

	if d.Config.RedisAddr != "" {
		rs := store.NewRedisSink(d.Config.RedisAddr, d.Config.RedisPassword, d.Config.RedisDB, d.Config.MenuTTL)
		if err := rs.Ping(ctx); err != nil {
			d.Logger.Warn("redis unavailable, menu will not be cached", "addr", d.Config.RedisAddr, "error", err)
			rs.Close()
		} else {
			sinks = append(sinks, rs)
			cl = append(cl, func() { rs.Close() })
		}
	}

	return sinks, cl.Close
}

// Observers возвращает наблюдателей созданных заказов: журнал в Postgres
// и публикатор RabbitMQ. Недоступная инфраструктура пропускается с
// предупреждением.
func (d *Deps) Observers(ctx context.Context) ([]session.OrderObserver, func()) {
	var observers []session.OrderObserver
	var cl closers

	if d.Config.DBURL != "" {
		orders, closeDB, err := d.openJournal(ctx)
		if err != nil {
			d.Logger.Warn("order journal unavailable", "error", err)
		} else {
			observers = append(observers, orders)
			cl = append(cl, closeDB)
		}
	}

	if d.Config.RabbitMQURL != "" {
		conn, err := d.openBroker(ctx)
		if err != nil {
			d.Logger.Warn("message broker unavailable", "error", err)
		} else {
			observers = append(observers, mq.NewPublisher(conn, d.Logger))
			cl = append(cl, func() { conn.Close() })
		}
	}

	return observers, cl.Close
}

// Journal открывает журнал заказов для команды order history.
func (d *Deps) Journal(ctx context.Context) (*repo.OrderRepo, func(), error) {
	if d.Config.DBURL == "" {
		return nil, nil, ErrNoJournal
	}
	return d.openJournal(ctx)
}

// Broker открывает соединение с RabbitMQ для команды order events.
func (d *Deps) Broker(ctx context.Context) (*mq.Connection, error) {
	if d.Config.RabbitMQURL == "" {
		return nil, ErrNoBroker
	}
	return d.openBroker(ctx)
}

func (d *Deps) openJournal(ctx context.Context) (*repo.OrderRepo, func(), error) {
	pool, err := repo.NewPool(ctx, d.Config.DBURL)
	if err != nil {
		return nil, nil, err
	}
	orders := repo.NewOrderRepo(pool)
	if err := orders.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return orders, pool.Close, nil
}

func (d *Deps) openBroker(ctx context.Context) (*mq.Connection, error) {
	conn, err := mq.NewConnection(d.Config.RabbitMQURL, d.Logger)
	if err != nil {
		return nil, err
	}
	if err := mq.SetupTopology(ctx, conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setup topology: %w", err)
	}
	return conn, nil
}
