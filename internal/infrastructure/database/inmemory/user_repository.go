package inmemory

import (
	"context"
	"time"

	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
	"github.com/wichananm65/ecommerce-backend/internal/domain/repository"
)

// UserRepository is an in-memory implementation of UserRepository.
type UserRepository struct {
	store *Store
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	userCopy := *user
	userCopy.SyncUsernameWithEmail()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.usernameTaken(userCopy.Username, 0) {
		return nil, repository.ErrConflict
	}

	userCopy.ID = r.store.nextUserID
	r.store.nextUserID++
	if userCopy.DateJoined.IsZero() {
		userCopy.DateJoined = time.Now().UTC()
	}
	r.store.users[userCopy.ID] = &userCopy

	result := userCopy
	return &result, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	found := *user
	return &found, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, id := range sortedIDs(r.store.users) {
		if u := r.store.users[id]; u.Username == username {
			found := *u
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*entity.User, 0, len(r.store.users))
	for _, id := range sortedIDs(r.store.users) {
		found := *r.store.users[id]
		result = append(result, &found)
	}
	return result, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	userCopy := *user
	userCopy.SyncUsernameWithEmail()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.users[userCopy.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if r.usernameTaken(userCopy.Username, userCopy.ID) {
		return nil, repository.ErrConflict
	}
	userCopy.DateJoined = existing.DateJoined

	r.store.users[userCopy.ID] = &userCopy
	result := userCopy
	return &result, nil
}

// Delete removes the user and nulls every product, review and order
// reference to it.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.store.users, id)

	for _, p := range r.store.products {
		if sameRef(p.UserID, id) {
			p.UserID = nil
		}
	}
	for _, rv := range r.store.reviews {
		if sameRef(rv.UserID, id) {
			rv.UserID = nil
		}
	}
	for _, o := range r.store.orders {
		if sameRef(o.UserID, id) {
			o.UserID = nil
		}
	}
	return nil
}

// usernameTaken must be called with the lock held.
func (r *UserRepository) usernameTaken(username string, exceptID int64) bool {
	for id, u := range r.store.users {
		if id != exceptID && u.Username == username {
			return true
		}
	}
	return false
}
