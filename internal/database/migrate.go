package database

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		images JSONB NOT NULL DEFAULT '[]',
		base_price BIGINT NOT NULL CHECK (base_price >= 0),
		specifications JSONB NOT NULL DEFAULT '{}',
		configurations JSONB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users (id),
		product_id UUID NOT NULL REFERENCES products (id),
		variant TEXT NOT NULL,
		color TEXT NOT NULL,
		wheels TEXT NOT NULL,
		interior TEXT NOT NULL,
		total_price BIGINT NOT NULL CHECK (total_price >= 0),
		shipping_address JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		published_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS orders_unpublished_idx ON orders (created_at) WHERE published_at IS NULL`,
}

// Migrate creates the storefront tables if they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return tx.Commit()
}
