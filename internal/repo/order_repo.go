package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/shaiso/iikoctl/internal/order"
)

// DefaultHistoryLimit — сколько заказов возвращает ListRecent по умолчанию.
const DefaultHistoryLimit = 20

const schema = `
CREATE TABLE IF NOT EXISTS iiko_orders (
	id                TEXT PRIMARY KEY,
	external_number   TEXT NOT NULL,
	organization_id   TEXT NOT NULL,
	terminal_group_id TEXT NOT NULL,
	product_id        TEXT NOT NULL,
	product_name      TEXT NOT NULL,
	product_size_id   TEXT,
	price             NUMERIC NOT NULL,
	amount            INTEGER NOT NULL,
	customer_name     TEXT NOT NULL,
	table_ids         TEXT[] NOT NULL DEFAULT '{}',
	creation_status   TEXT NOT NULL,
	correlation_id    TEXT,
	created_at        TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS iiko_orders_created_at_idx ON iiko_orders (created_at DESC);
ALTER TABLE iiko_orders ALTER COLUMN price TYPE NUMERIC;
`

// OrderRepo — репозиторий созданных заказов.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepo создаёт новый OrderRepo.
func NewOrderRepo(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// EnsureSchema создаёт таблицу журнала, если её нет.
func (r *OrderRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Create записывает заказ.
func (r *OrderRepo) Create(ctx context.Context, p order.Placed) error {
	if p.OrderID == "" {
		return fmt.Errorf("insert order: empty order id")
	}

	query := `
		INSERT INTO iiko_orders (
			id, external_number, organization_id, terminal_group_id,
			product_id, product_name, product_size_id, price, amount,
			customer_name, table_ids, creation_status, correlation_id, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.pool.Exec(ctx, query,
		p.OrderID,
		p.ExternalNumber,
		p.OrganizationID,
		p.TerminalGroupID,
		p.ProductID,
		p.ProductName,
		p.ProductSizeID,
		p.Price.String(),
		p.Amount,
		p.CustomerName,
		tableIDs(p.TableIDs),
		p.CreationStatus,
		nullString(p.CorrelationID),
		p.CreatedAt,
	)
	if isUniqueViolation(err) {
		return ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// OrderPlaced реализует session.OrderObserver.
func (r *OrderRepo) OrderPlaced(ctx context.Context, p order.Placed) error {
	return r.Create(ctx, p)
}

// GetByID возвращает заказ из журнала.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*order.Placed, error) {
	query := `
		SELECT id, external_number, organization_id, terminal_group_id,
		       product_id, product_name, product_size_id, price::text, amount,
		       customer_name, table_ids, creation_status, correlation_id, created_at
		FROM iiko_orders
		WHERE id = $1
	`
	p, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// ListRecent возвращает последние заказы, новые первыми.
func (r *OrderRepo) ListRecent(ctx context.Context, limit int) ([]order.Placed, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	query := `
		SELECT id, external_number, organization_id, terminal_group_id,
		       product_id, product_name, product_size_id, price::text, amount,
		       customer_name, table_ids, creation_status, correlation_id, created_at
		FROM iiko_orders
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []order.Placed
	for rows.Next() {
		p, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *p)
	}
	return orders, rows.Err()
}

// --- Helpers ---

// scanOrder сканирует строку (pgx.Row или pgx.Rows) в order.Placed.
func scanOrder(row pgx.Row) (*order.Placed, error) {
	var p order.Placed
	var price string
	var correlationID *string

	err := row.Scan(
		&p.OrderID,
		&p.ExternalNumber,
		&p.OrganizationID,
		&p.TerminalGroupID,
		&p.ProductID,
		&p.ProductName,
		&p.ProductSizeID,
		&price,
		&p.Amount,
		&p.CustomerName,
		&p.TableIDs,
		&p.CreationStatus,
		&correlationID,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}

	p.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", price, err)
	}
	if correlationID != nil {
		p.CorrelationID = *correlationID
	}
	if len(p.TableIDs) == 0 {
		p.TableIDs = nil
	}
	return &p, nil
}

// nullString возвращает nil для пустой строки (для NULL в БД).
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// tableIDs заменяет nil на пустой массив: колонка NOT NULL.
func tableIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
