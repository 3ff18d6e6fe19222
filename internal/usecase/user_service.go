package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
	"github.com/wichananm65/ecommerce-backend/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserService implements UserUsecase with repository dependency.
type UserService struct {
	repo repository.UserRepository
	cost int
}

var _ UserUsecase = (*UserService)(nil)

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo, cost: bcrypt.DefaultCost}
}

func (s *UserService) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	return s.create(ctx, input, false)
}

// CreateAdmin registers a staff account.
func (s *UserService) CreateAdmin(ctx context.Context, input RegisterInput) (*entity.User, error) {
	return s.create(ctx, input, true)
}

func (s *UserService) create(ctx context.Context, input RegisterInput, staff bool) (*entity.User, error) {
	email := strings.TrimSpace(input.Email)
	if _, err := s.repo.GetByUsername(ctx, email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, &entity.User{
		Username:  email,
		Email:     email,
		FirstName: strings.TrimSpace(input.Name),
		Password:  string(hashed),
		IsStaff:   staff,
	})
	if errors.Is(err, repository.ErrConflict) {
		return nil, ErrUserExists
	}
	return user, err
}

func (s *UserService) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*entity.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) UpdateProfile(ctx context.Context, id int64, input ProfileInput) (*entity.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FirstName = strings.TrimSpace(input.Name)
	user.Email = strings.TrimSpace(input.Email)
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}
	return s.update(ctx, user)
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, input AdminUpdateInput) (*entity.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FirstName = strings.TrimSpace(input.Name)
	user.Email = strings.TrimSpace(input.Email)
	user.IsStaff = input.IsAdmin
	return s.update(ctx, user)
}

func (s *UserService) update(ctx context.Context, user *entity.User) (*entity.User, error) {
	updated, err := s.repo.Update(ctx, user)
	if errors.Is(err, repository.ErrConflict) {
		return nil, ErrUserExists
	}
	return updated, err
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
