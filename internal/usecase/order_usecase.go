package usecase

import (
	"context"

	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
)

// OrderUsecase exposes application-level operations for orders.
type OrderUsecase interface {
	Create(ctx context.Context, user *entity.User, input CreateOrderInput) (*entity.Order, error)
	GetForUser(ctx context.Context, id int64, user *entity.User) (*entity.Order, error)
	ListMine(ctx context.Context, userID int64) ([]*entity.Order, error)
	ListAll(ctx context.Context) ([]*entity.Order, error)
	MarkPaid(ctx context.Context, id int64) (*entity.Order, error)
	MarkDelivered(ctx context.Context, id int64) (*entity.Order, error)
	Delete(ctx context.Context, id int64) error
}

var _ OrderUsecase = (*OrderService)(nil)
