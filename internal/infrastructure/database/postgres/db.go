package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/wichananm65/ecommerce-backend/internal/domain/repository"
)

// Open connects through the pgx stdlib driver and pings before returning.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres: empty DATABASE_URL")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	return db, nil
}

// NewSet returns every postgres repository sharing db.
func NewSet(db *sql.DB) repository.Set {
	return repository.Set{
		Users:             NewUserRepository(db),
		Products:          NewProductRepository(db),
		Reviews:           NewReviewRepository(db),
		Orders:            NewOrderRepository(db),
		OrderItems:        NewOrderItemRepository(db),
		ShippingAddresses: NewShippingAddressRepository(db),
	}
}

// nullRef converts an optional reference to a driver value.
func nullRef(ref *int64) sql.NullInt64 {
	if ref == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *ref, Valid: true}
}

func refOf(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
