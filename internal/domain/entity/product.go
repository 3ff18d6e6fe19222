package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// MaxCharLength bounds every short text column.
	MaxCharLength = 200

	// DecimalPrecision and DecimalScale describe the NUMERIC(7,2) money columns.
	DecimalPrecision = 7
	DecimalScale     = 2

	DefaultProductImage = "/placeholder.png"
)

// Product is a catalogue entry. UserID is nil once the owning user is deleted.
type Product struct {
	ID           int64
	UserID       *int64
	Name         string
	Image        string
	Brand        string
	Category     string
	Description  string
	Rating       decimal.Decimal
	NumReviews   int
	Price        decimal.Decimal
	CountInStock int
	CreatedAt    time.Time
}

// NewProduct returns a product with the column defaults applied.
func NewProduct(ownerID *int64, name string) *Product {
	return &Product{
		UserID:     ownerID,
		Name:       name,
		Image:      DefaultProductImage,
		Rating:     decimal.Zero,
		Price:      decimal.Zero,
		NumReviews: 0,
	}
}
