package usecase

import (
	"context"
	"io"

	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
)

// ProductUsecase exposes application-level operations for the catalogue.
type ProductUsecase interface {
	List(ctx context.Context, keyword, page string) (*ProductPage, error)
	Top(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	CreateSample(ctx context.Context, ownerID int64) (*entity.Product, error)
	Update(ctx context.Context, id int64, input ProductInput) (*entity.Product, error)
	UploadImage(ctx context.Context, productID int64, filename string, r io.Reader) (*entity.Product, error)
	AddReview(ctx context.Context, productID int64, user *entity.User, rating int, comment string) (*entity.Review, error)
	Delete(ctx context.Context, id int64) error
	Seed(ctx context.Context, products []*entity.Product) (int, error)
}

var _ ProductUsecase = (*ProductService)(nil)
