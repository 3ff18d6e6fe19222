package repository

import (
	"context"

	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
)

// UserRepository defines persistence behavior for the User entity.
// Create and Update apply User.SyncUsernameWithEmail before writing and
// leave the argument untouched; the stored record is returned.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	Delete(ctx context.Context, id int64) error
}
