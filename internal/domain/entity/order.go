package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a checkout. PaidAt and DeliveredAt stay nil until the matching
// flag is set; nothing enforces this besides the code that flips the flags.
type Order struct {
	ID            int64
	UserID        *int64
	PaymentMethod string
	TaxPrice      decimal.Decimal
	ShippingPrice decimal.Decimal
	TotalPrice    decimal.Decimal
	IsPaid        bool
	PaidAt        *time.Time
	IsDelivered   bool
	DeliveredAt   *time.Time
	CreatedAt     time.Time
}

// MarkPaid sets the paid flag and timestamp together.
func (o *Order) MarkPaid(at time.Time) {
	o.IsPaid = true
	o.PaidAt = &at
}

// MarkDelivered sets the delivered flag and timestamp together.
func (o *Order) MarkDelivered(at time.Time) {
	o.IsDelivered = true
	o.DeliveredAt = &at
}

// OrderItem is one line of an order. ProductID and OrderID are set to nil
// when the referenced record is deleted; the item itself survives.
type OrderItem struct {
	ID        int64
	ProductID *int64
	OrderID   *int64
	Name      string
	Qty       int
	Price     decimal.Decimal
	Image     string
}

// ShippingAddress belongs to exactly one order and is removed with it.
type ShippingAddress struct {
	ID            int64
	OrderID       int64
	Address       string
	City          string
	PostalCode    string
	Country       string
	ShippingPrice decimal.Decimal
}
