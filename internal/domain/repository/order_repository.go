package repository

import (
	"context"

	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
)

// OrderRepository defines persistence behavior for the Order entity.
// Delete cascades to the shipping address and nulls order item references.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) (*entity.Order, error)
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) (*entity.Order, error)
	Delete(ctx context.Context, id int64) error
}

// OrderItemRepository defines persistence behavior for the OrderItem entity.
type OrderItemRepository interface {
	Create(ctx context.Context, item *entity.OrderItem) (*entity.OrderItem, error)
	ListByOrder(ctx context.Context, orderID int64) ([]*entity.OrderItem, error)
	GetByID(ctx context.Context, id int64) (*entity.OrderItem, error)
}

// ShippingAddressRepository defines persistence behavior for the
// ShippingAddress entity. An order has at most one address.
type ShippingAddressRepository interface {
	Create(ctx context.Context, address *entity.ShippingAddress) (*entity.ShippingAddress, error)
	GetByOrder(ctx context.Context, orderID int64) (*entity.ShippingAddress, error)
}
