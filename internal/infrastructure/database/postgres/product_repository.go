package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
	"github.com/wichananm65/ecommerce-backend/internal/domain/repository"
)

// ProductRepository is a PostgreSQL implementation of ProductRepository.
type ProductRepository struct {
	db *sql.DB
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

const (
	productColumns = `id, user_id, name, image, brand, category, description, rating, num_reviews, price, count_in_stock, created_at`

	insertProductQuery = `
		INSERT INTO products (user_id, name, image, brand, category, description, rating, num_reviews, price, count_in_stock)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING ` + productColumns
	getProductByIDQuery = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	listProductsQuery   = `
		SELECT ` + productColumns + `
		FROM products
		WHERE name ILIKE $1 ESCAPE '\'
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	countProductsQuery    = `SELECT COUNT(*) FROM products WHERE name ILIKE $1 ESCAPE '\'`
	listProductsByIDQuery = `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1) ORDER BY id`
	listTopRatedQuery     = `
		SELECT ` + productColumns + `
		FROM products
		WHERE rating >= $1
		ORDER BY rating DESC, id
		LIMIT $2`
	updateProductQuery = `
		UPDATE products
		SET user_id = $1,
			name = $2,
			image = $3,
			brand = $4,
			category = $5,
			description = $6,
			rating = $7,
			num_reviews = $8,
			price = $9,
			count_in_stock = $10
		WHERE id = $11
		RETURNING ` + productColumns
	deleteProductQuery = `DELETE FROM products WHERE id = $1`
)

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func scanProduct(row rowScanner) (*entity.Product, error) {
	var (
		p     entity.Product
		owner sql.NullInt64
	)
	err := row.Scan(&p.ID, &owner, &p.Name, &p.Image, &p.Brand, &p.Category, &p.Description,
		&p.Rating, &p.NumReviews, &p.Price, &p.CountInStock, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.UserID = refOf(owner)
	return &p, nil
}

func (r *ProductRepository) collect(rows *sql.Rows) ([]*entity.Product, error) {
	defer rows.Close()

	out := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	row := r.db.QueryRowContext(ctx, insertProductQuery,
		nullRef(product.UserID), product.Name, product.Image, product.Brand, product.Category,
		product.Description, product.Rating, product.NumReviews, product.Price, product.CountInStock)
	p, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, getProductByIDQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int, error) {
	pattern := containsPattern(filter.Keyword)
	var total int
	if err := r.db.QueryRowContext(ctx, countProductsQuery, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	// LIMIT NULL means no limit
	var limit sql.NullInt64
	if filter.Limit > 0 {
		limit = sql.NullInt64{Int64: int64(filter.Limit), Valid: true}
	}
	rows, err := r.db.QueryContext(ctx, listProductsQuery, pattern, limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	products, err := r.collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepository) ListByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}
	rows, err := r.db.QueryContext(ctx, listProductsByIDQuery, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list products by id: %w", err)
	}
	return r.collect(rows)
}

func (r *ProductRepository) ListTopRated(ctx context.Context, minRating decimal.Decimal, limit int) ([]*entity.Product, error) {
	rows, err := r.db.QueryContext(ctx, listTopRatedQuery, minRating, limit)
	if err != nil {
		return nil, fmt.Errorf("list top products: %w", err)
	}
	return r.collect(rows)
}

func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	row := r.db.QueryRowContext(ctx, updateProductQuery,
		nullRef(product.UserID), product.Name, product.Image, product.Brand, product.Category,
		product.Description, product.Rating, product.NumReviews, product.Price, product.CountInStock,
		product.ID)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, deleteProductQuery, id)
}

// ReviewRepository is a PostgreSQL implementation of ReviewRepository.
type ReviewRepository struct {
	db *sql.DB
}

var _ repository.ReviewRepository = (*ReviewRepository)(nil)

const (
	reviewColumns = `id, product_id, user_id, name, rating, comment, created_at`

	insertReviewQuery = `
		INSERT INTO reviews (product_id, user_id, name, rating, comment)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING ` + reviewColumns
	listReviewsByProductQuery = `SELECT ` + reviewColumns + ` FROM reviews WHERE product_id = $1 ORDER BY id`
	reviewExistsQuery         = `SELECT EXISTS (SELECT 1 FROM reviews WHERE product_id = $1 AND user_id = $2)`
)

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func scanReview(row rowScanner) (*entity.Review, error) {
	var (
		rv            entity.Review
		product, user sql.NullInt64
	)
	if err := row.Scan(&rv.ID, &product, &user, &rv.Name, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
		return nil, err
	}
	rv.ProductID = refOf(product)
	rv.UserID = refOf(user)
	return &rv, nil
}

func (r *ReviewRepository) Create(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	row := r.db.QueryRowContext(ctx, insertReviewQuery,
		nullRef(review.ProductID), nullRef(review.UserID), review.Name, review.Rating, review.Comment)
	rv, err := scanReview(row)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return rv, nil
}

func (r *ReviewRepository) ListByProduct(ctx context.Context, productID int64) ([]*entity.Review, error) {
	rows, err := r.db.QueryContext(ctx, listReviewsByProductQuery, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *ReviewRepository) ExistsForUser(ctx context.Context, productID, userID int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, reviewExistsQuery, productID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check review: %w", err)
	}
	return exists, nil
}
