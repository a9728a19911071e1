package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ev-storefront/internal/domain"
)

type OrderRepo interface {
	FindById(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	// CreateOrder stores the order in its own transaction; on error nothing is written.
	CreateOrder(ctx context.Context, order *domain.Order) error
	FindUnpublished(ctx context.Context, limit int) ([]domain.Order, error)
	MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) error
}

type orderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepo {
	return &orderRepo{db: db}
}

const orderColumns = `id, user_id, product_id, variant, color, wheels, interior, total_price, shipping_address, created_at`

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		order   domain.Order
		address []byte
	)
	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.ProductID,
		&order.Configuration.Variant,
		&order.Configuration.Color,
		&order.Configuration.Wheels,
		&order.Configuration.Interior,
		&order.TotalPrice,
		&address,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(address, &order.ShippingAddress); err != nil {
		return nil, fmt.Errorf("decode shipping address of order %s: %w", order.ID, err)
	}
	return &order, nil
}

func (r *orderRepo) FindById(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // not found
	}
	if err != nil {
		return nil, err // system error
	}
	return order, nil
}

func (r *orderRepo) CreateOrder(ctx context.Context, order *domain.Order) error {
	address, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return fmt.Errorf("encode shipping address: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO orders ("+orderColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)",
		order.ID,
		order.UserID,
		order.ProductID,
		order.Configuration.Variant,
		order.Configuration.Color,
		order.Configuration.Wheels,
		order.Configuration.Interior,
		order.TotalPrice,
		string(address),
		order.CreatedAt,
	)
	if err != nil {
		return err
	}

	// A failed commit is reported as not placed even if the server applied it;
	// orders carry no idempotency key, so a retry creates a new order.
	return tx.Commit()
}

func (r *orderRepo) FindUnpublished(ctx context.Context, limit int) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE published_at IS NULL ORDER BY created_at LIMIT $1",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *orderRepo) MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE orders SET published_at = $1 WHERE id = $2 AND published_at IS NULL",
		at, id,
	)
	return err
}
