package inmemory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
	"github.com/wichananm65/ecommerce-backend/internal/domain/repository"
)

// ProductRepository is an in-memory implementation of ProductRepository.
type ProductRepository struct {
	store *Store
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

func cloneProduct(p *entity.Product) *entity.Product {
	c := *p
	c.UserID = copyRef(p.UserID)
	return &c
}

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p := cloneProduct(product)
	p.ID = r.store.nextProductID
	r.store.nextProductID++
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	r.store.products[p.ID] = p
	return cloneProduct(p), nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneProduct(p), nil
}

func (r *ProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	keyword := strings.ToLower(filter.Keyword)
	matches := make([]*entity.Product, 0)
	for _, id := range sortedIDs(r.store.products) {
		p := r.store.products[id]
		if keyword != "" && !strings.Contains(strings.ToLower(p.Name), keyword) {
			continue
		}
		matches = append(matches, p)
	}
	// newest first, id breaks ties
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].ID > matches[j].ID
		}
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	total := len(matches)
	start := filter.Offset
	if start > total {
		start = total
	}
	end := total
	if filter.Limit > 0 && start+filter.Limit < total {
		end = start + filter.Limit
	}

	page := make([]*entity.Product, 0, end-start)
	for _, p := range matches[start:end] {
		page = append(page, cloneProduct(p))
	}
	return page, total, nil
}

func (r *ProductRepository) ListByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.store.products[id]; ok {
			out = append(out, cloneProduct(p))
		}
	}
	return out, nil
}

func (r *ProductRepository) ListTopRated(ctx context.Context, minRating decimal.Decimal, limit int) ([]*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	top := make([]*entity.Product, 0)
	for _, id := range sortedIDs(r.store.products) {
		if p := r.store.products[id]; p.Rating.GreaterThanOrEqual(minRating) {
			top = append(top, cloneProduct(p))
		}
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Rating.GreaterThan(top[j].Rating) })
	if limit > 0 && len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.products[product.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p := cloneProduct(product)
	p.CreatedAt = existing.CreatedAt
	r.store.products[p.ID] = p
	return cloneProduct(p), nil
}

// Delete removes the product; reviews and order items keep their rows with
// a nil product reference.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.store.products, id)

	for _, rv := range r.store.reviews {
		if sameRef(rv.ProductID, id) {
			rv.ProductID = nil
		}
	}
	for _, it := range r.store.items {
		if sameRef(it.ProductID, id) {
			it.ProductID = nil
		}
	}
	return nil
}
