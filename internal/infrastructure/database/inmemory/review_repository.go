package inmemory

import (
	"context"
	"time"

	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
	"github.com/wichananm65/ecommerce-backend/internal/domain/repository"
)

// ReviewRepository is an in-memory implementation of ReviewRepository.
type ReviewRepository struct {
	store *Store
}

var _ repository.ReviewRepository = (*ReviewRepository)(nil)

func cloneReview(rv *entity.Review) *entity.Review {
	c := *rv
	c.ProductID = copyRef(rv.ProductID)
	c.UserID = copyRef(rv.UserID)
	return &c
}

func (r *ReviewRepository) Create(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rv := cloneReview(review)
	rv.ID = r.store.nextReviewID
	r.store.nextReviewID++
	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = time.Now().UTC()
	}
	r.store.reviews[rv.ID] = rv
	return cloneReview(rv), nil
}

func (r *ReviewRepository) ListByProduct(ctx context.Context, productID int64) ([]*entity.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.Review, 0)
	for _, id := range sortedIDs(r.store.reviews) {
		if rv := r.store.reviews[id]; sameRef(rv.ProductID, productID) {
			out = append(out, cloneReview(rv))
		}
	}
	return out, nil
}

func (r *ReviewRepository) ExistsForUser(ctx context.Context, productID, userID int64) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, rv := range r.store.reviews {
		if sameRef(rv.ProductID, productID) && sameRef(rv.UserID, userID) {
			return true, nil
		}
	}
	return false, nil
}
