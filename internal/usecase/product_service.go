package usecase

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
	"github.com/wichananm65/ecommerce-backend/internal/domain/repository"
	"github.com/wichananm65/ecommerce-backend/internal/infrastructure/storage"
)

const topProductsLimit = 5

var topProductsMinRating = decimal.NewFromInt(4)

// ProductPage is one page of the catalogue. Page is 1-based.
type ProductPage struct {
	Products []*entity.Product
	Page     int
	Pages    int
}

// ProductInput holds the editable catalogue fields.
type ProductInput struct {
	Name         string
	Price        decimal.Decimal
	Brand        string
	CountInStock int
	Category     string
	Description  string
}

// ProductService handles the catalogue and its reviews.
type ProductService struct {
	products repository.ProductRepository
	reviews  repository.ReviewRepository
	images   storage.ImageStore
	pageSize int
}

func NewProductService(products repository.ProductRepository, reviews repository.ReviewRepository, images storage.ImageStore, pageSize int) *ProductService {
	if pageSize < 1 {
		pageSize = 5
	}
	return &ProductService{products: products, reviews: reviews, images: images, pageSize: pageSize}
}

// List returns the requested page of products whose name contains keyword.
// A page that is not a number serves page 1; a page out of range serves
// the last page.
func (s *ProductService) List(ctx context.Context, keyword, page string) (*ProductPage, error) {
	_, total, err := s.products.List(ctx, repository.ProductFilter{Keyword: keyword, Limit: 1})
	if err != nil {
		return nil, err
	}

	pages := (total + s.pageSize - 1) / s.pageSize
	if pages < 1 {
		pages = 1
	}

	n, err := strconv.Atoi(page)
	switch {
	case err != nil:
		n = 1
	case n < 1 || n > pages:
		n = pages
	}

	products, _, err := s.products.List(ctx, repository.ProductFilter{
		Keyword: keyword,
		Limit:   s.pageSize,
		Offset:  (n - 1) * s.pageSize,
	})
	if err != nil {
		return nil, err
	}
	return &ProductPage{Products: products, Page: n, Pages: pages}, nil
}

// Top returns up to five products rated 4 or better, best first.
func (s *ProductService) Top(ctx context.Context) ([]*entity.Product, error) {
	return s.products.ListTopRated(ctx, topProductsMinRating, topProductsLimit)
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.products.Delete(ctx, id)
}

// CreateSample adds a placeholder product for staff to fill in.
func (s *ProductService) CreateSample(ctx context.Context, ownerID int64) (*entity.Product, error) {
	p := entity.NewProduct(&ownerID, "Sample Name")
	p.Brand = "Sample Brand"
	p.Category = "Sample Category"
	return s.products.Create(ctx, p)
}

func (s *ProductService) Update(ctx context.Context, id int64, input ProductInput) (*entity.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = input.Name
	p.Price = input.Price
	p.Brand = input.Brand
	p.CountInStock = input.CountInStock
	p.Category = input.Category
	p.Description = input.Description
	return s.products.Update(ctx, p)
}

// UploadImage stores the file and points the product at it.
func (s *ProductService) UploadImage(ctx context.Context, productID int64, filename string, r io.Reader) (*entity.Product, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	url, err := s.images.Save(ctx, filename, r)
	if err != nil {
		return nil, fmt.Errorf("save image: %w", err)
	}
	p.Image = url
	return s.products.Update(ctx, p)
}

// AddReview records one review per user per product and refreshes the
// product's review count and mean rating.
func (s *ProductService) AddReview(ctx context.Context, productID int64, user *entity.User, rating int, comment string) (*entity.Review, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	exists, err := s.reviews.ExistsForUser(ctx, productID, user.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}
	if rating == 0 {
		return nil, ErrRatingRequired
	}

	userID := user.ID
	review, err := s.reviews.Create(ctx, &entity.Review{
		ProductID: &p.ID,
		UserID:    &userID,
		Name:      user.DisplayName(),
		Rating:    rating,
		Comment:   comment,
	})
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	p.NumReviews = len(reviews)
	p.Rating = meanRating(reviews)
	if _, err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return review, nil
}

func meanRating(reviews []*entity.Review) decimal.Decimal {
	if len(reviews) == 0 {
		return decimal.Zero
	}
	var sum int64
	for _, r := range reviews {
		sum += int64(r.Rating)
	}
	return decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(len(reviews)))).Round(entity.DecimalScale)
}

// Seed inserts the given products and reports how many were written.
func (s *ProductService) Seed(ctx context.Context, products []*entity.Product) (int, error) {
	for i, p := range products {
		if _, err := s.products.Create(ctx, p); err != nil {
			return i, fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}
	return len(products), nil
}
