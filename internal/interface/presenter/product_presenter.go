package presenter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
	"github.com/wichananm65/ecommerce-backend/internal/domain/repository"
	"github.com/wichananm65/ecommerce-backend/internal/usecase"
)

// money renders a NUMERIC(7,2) column the way the database stores it.
func money(d decimal.Decimal) string {
	return d.StringFixed(entity.DecimalScale)
}

type ReviewResponse struct {
	ID        int64     `json:"_id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	Product   *int64    `json:"product"`
	User      *int64    `json:"user"`
}

// ReviewPresenter shapes reviews.
type ReviewPresenter struct{}

func (ReviewPresenter) ToResponse(r *entity.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        r.ID,
		Name:      r.Name,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		Product:   r.ProductID,
		User:      r.UserID,
	}
}

type ProductResponse struct {
	ID           int64             `json:"_id"`
	Reviews      []*ReviewResponse `json:"reviews"`
	Name         string            `json:"name"`
	Image        string            `json:"image"`
	Brand        string            `json:"brand"`
	Category     string            `json:"category"`
	Description  string            `json:"description"`
	Rating       string            `json:"rating"`
	NumReviews   int               `json:"numReviews"`
	Price        string            `json:"price"`
	CountInStock int               `json:"countInStock"`
	CreatedAt    time.Time         `json:"createdAt"`
	User         *int64            `json:"user"`
}

type ProductPageResponse struct {
	Products []*ProductResponse `json:"products"`
	Page     int                `json:"page"`
	Pages    int                `json:"pages"`
}

// ProductPresenter embeds the product's reviews, read fresh on every call.
type ProductPresenter struct {
	reviews repository.ReviewRepository
	review  ReviewPresenter
}

func NewProductPresenter(reviews repository.ReviewRepository) *ProductPresenter {
	return &ProductPresenter{reviews: reviews}
}

func (p *ProductPresenter) ToResponse(ctx context.Context, product *entity.Product) (*ProductResponse, error) {
	reviews, err := p.reviews.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	embedded := make([]*ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		embedded = append(embedded, p.review.ToResponse(r))
	}

	return &ProductResponse{
		ID:           product.ID,
		Reviews:      embedded,
		Name:         product.Name,
		Image:        product.Image,
		Brand:        product.Brand,
		Category:     product.Category,
		Description:  product.Description,
		Rating:       money(product.Rating),
		NumReviews:   product.NumReviews,
		Price:        money(product.Price),
		CountInStock: product.CountInStock,
		CreatedAt:    product.CreatedAt,
		User:         product.UserID,
	}, nil
}

func (p *ProductPresenter) ToList(ctx context.Context, products []*entity.Product) ([]*ProductResponse, error) {
	result := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		resp, err := p.ToResponse(ctx, product)
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}
	return result, nil
}

func (p *ProductPresenter) ToPage(ctx context.Context, page *usecase.ProductPage) (*ProductPageResponse, error) {
	products, err := p.ToList(ctx, page.Products)
	if err != nil {
		return nil, err
	}
	return &ProductPageResponse{Products: products, Page: page.Page, Pages: page.Pages}, nil
}
