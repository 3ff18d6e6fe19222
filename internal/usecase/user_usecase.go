package usecase

import (
	"context"

	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
)

// UserUsecase exposes application-level operations for User.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	UpdateProfile(ctx context.Context, id int64, input ProfileInput) (*entity.User, error)
	UpdateUser(ctx context.Context, id int64, input AdminUpdateInput) (*entity.User, error)
	CreateAdmin(ctx context.Context, input RegisterInput) (*entity.User, error)
	Delete(ctx context.Context, id int64) error
}

// RegisterInput carries data required to create a user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// ProfileInput is what a user may change on their own account. An empty
// Password keeps the current one.
type ProfileInput struct {
	Name     string
	Email    string
	Password string
}

// AdminUpdateInput is what staff may change on any account.
type AdminUpdateInput struct {
	Name    string
	Email   string
	IsAdmin bool
}
