package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// schema is applied in order. Every foreign key spells out its ON DELETE
// action: set null everywhere except shipping_addresses, which go with
// their order.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(150) NOT NULL UNIQUE,
		email VARCHAR(254) NOT NULL DEFAULT '',
		first_name VARCHAR(150) NOT NULL DEFAULT '',
		last_name VARCHAR(150) NOT NULL DEFAULT '',
		password VARCHAR(128) NOT NULL DEFAULT '',
		is_staff BOOLEAN NOT NULL DEFAULT FALSE,
		date_joined TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
		name VARCHAR(200) NOT NULL DEFAULT '',
		image VARCHAR(200) NOT NULL DEFAULT '/placeholder.png',
		brand VARCHAR(200) NOT NULL DEFAULT '',
		category VARCHAR(200) NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		rating NUMERIC(7,2) NOT NULL DEFAULT 0,
		num_reviews INTEGER NOT NULL DEFAULT 0,
		price NUMERIC(7,2) NOT NULL DEFAULT 0,
		count_in_stock INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id BIGSERIAL PRIMARY KEY,
		product_id BIGINT REFERENCES products(id) ON DELETE SET NULL,
		user_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
		name VARCHAR(200) NOT NULL DEFAULT '',
		rating INTEGER NOT NULL DEFAULT 0,
		comment TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
		payment_method VARCHAR(200) NOT NULL DEFAULT '',
		tax_price NUMERIC(7,2) NOT NULL DEFAULT 0,
		shipping_price NUMERIC(7,2) NOT NULL DEFAULT 0,
		total_price NUMERIC(7,2) NOT NULL DEFAULT 0,
		is_paid BOOLEAN NOT NULL DEFAULT FALSE,
		paid_at TIMESTAMPTZ,
		is_delivered BOOLEAN NOT NULL DEFAULT FALSE,
		delivered_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id BIGSERIAL PRIMARY KEY,
		product_id BIGINT REFERENCES products(id) ON DELETE SET NULL,
		order_id BIGINT REFERENCES orders(id) ON DELETE SET NULL,
		name VARCHAR(200) NOT NULL DEFAULT '',
		qty INTEGER NOT NULL DEFAULT 0,
		price NUMERIC(7,2) NOT NULL DEFAULT 0,
		image VARCHAR(200) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS shipping_addresses (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL UNIQUE REFERENCES orders(id) ON DELETE CASCADE,
		address VARCHAR(200) NOT NULL DEFAULT '',
		city VARCHAR(200) NOT NULL DEFAULT '',
		postal_code VARCHAR(200) NOT NULL DEFAULT '',
		country VARCHAR(200) NOT NULL DEFAULT '',
		shipping_price NUMERIC(7,2) NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS reviews_product_id_idx ON reviews (product_id)`,
	`CREATE INDEX IF NOT EXISTS order_items_order_id_idx ON order_items (order_id)`,
	`CREATE INDEX IF NOT EXISTS orders_user_id_idx ON orders (user_id)`,
}

// Migrate creates any missing tables. It is safe to run repeatedly.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i+1, err)
		}
	}
	log.Printf("postgres: schema up to date (%d statements)", len(schema))
	return nil
}
