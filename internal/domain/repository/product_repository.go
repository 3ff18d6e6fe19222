package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
)

// ProductFilter narrows List. An empty Keyword matches every product.
type ProductFilter struct {
	Keyword string
	Limit   int
	Offset  int
}

// ProductRepository defines persistence behavior for the Product entity.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// List returns one page, newest first, and the total match count.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int, error)
	// ListByIDs returns the products whose ids are present; missing ids are skipped.
	ListByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error)
	ListTopRated(ctx context.Context, minRating decimal.Decimal, limit int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}

// ReviewRepository defines persistence behavior for the Review entity.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) (*entity.Review, error)
	// ListByProduct returns reviews in retrieval (id ascending) order.
	ListByProduct(ctx context.Context, productID int64) ([]*entity.Review, error)
	ExistsForUser(ctx context.Context, productID, userID int64) (bool, error)
}
