package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"ev-storefront/internal/domain"
)

type ProductRepo interface {
	FindById(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	// Seed inserts products only when the table is empty and reports how many were written.
	Seed(ctx context.Context, products []domain.Product) (int, error)
}

type productRepo struct {
	db *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepo {
	return &productRepo{db: db}
}

const productColumns = `id, name, description, images, base_price, specifications, configurations`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	var images, specs, configuration []byte
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &images, &p.BasePrice, &specs, &configuration); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(images, &p.Images); err != nil {
		return nil, fmt.Errorf("decode images of product %s: %w", p.ID, err)
	}
	if err := json.Unmarshal(specs, &p.Specifications); err != nil {
		return nil, fmt.Errorf("decode specifications of product %s: %w", p.ID, err)
	}
	if err := json.Unmarshal(configuration, &p.Configurations); err != nil {
		return nil, fmt.Errorf("decode configurations of product %s: %w", p.ID, err)
	}
	return &p, nil
}

func (r *productRepo) FindById(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // not found
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+productColumns+" FROM products ORDER BY base_price, name")
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *productRepo) Seed(ctx context.Context, products []domain.Product) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil // already seeded
	}

	for i := range products {
		p := &products[i]
		if err := p.Validate(); err != nil {
			return 0, err
		}
		images, err := json.Marshal(p.Images)
		if err != nil {
			return 0, err
		}
		specs, err := json.Marshal(p.Specifications)
		if err != nil {
			return 0, err
		}
		configuration, err := json.Marshal(p.Configurations)
		if err != nil {
			return 0, err
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO products ("+productColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7)",
			p.ID, p.Name, p.Description, string(images), p.BasePrice, string(specs), string(configuration),
		)
		if err != nil {
			return 0, fmt.Errorf("seed product %s: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(products), nil
}
