package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/wichananm65/ecommerce-backend/internal/domain/repository"
	"github.com/wichananm65/ecommerce-backend/internal/infrastructure/database/inmemory"
	"golang.org/x/crypto/bcrypt"
)

func newUserService() *UserService {
	svc := NewUserService(inmemory.NewStore().Users())
	svc.cost = bcrypt.MinCost
	return svc
}

func TestUserService_RegisterAndAuthenticate(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterInput{Name: "Jane", Email: "jane@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("expected register to succeed, got error: %v", err)
	}
	if created.Username != "jane@example.com" || created.FirstName != "Jane" || created.IsStaff {
		t.Fatalf("unexpected user %+v", created)
	}
	if created.Password == "secret" {
		t.Fatal("password stored in clear text")
	}

	got, err := svc.Authenticate(ctx, "jane@example.com", "secret")
	if err != nil {
		t.Fatalf("expected authenticate to succeed, got error: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected user %d, got %d", created.ID, got.ID)
	}

	if _, err := svc.Authenticate(ctx, "jane@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody@example.com", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_RegisterDuplicate(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@example.com", Password: "x"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(ctx, RegisterInput{Name: "B", Email: "a@example.com", Password: "y"}); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@example.com", Password: "old"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	updated, err := svc.UpdateProfile(ctx, u.ID, ProfileInput{Name: "Alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Username != "alice@example.com" || updated.FirstName != "Alice" {
		t.Fatalf("unexpected user %+v", updated)
	}
	// empty password keeps the old one
	if _, err := svc.Authenticate(ctx, "alice@example.com", "old"); err != nil {
		t.Fatalf("expected old password to still work: %v", err)
	}

	if _, err := svc.UpdateProfile(ctx, u.ID, ProfileInput{Name: "Alice", Email: "alice@example.com", Password: "new"}); err != nil {
		t.Fatalf("update password: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "alice@example.com", "new"); err != nil {
		t.Fatalf("expected new password to work: %v", err)
	}
}

func TestUserService_UpdateProfileConflict(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Email: "a@example.com", Password: "x"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	b, err := svc.Register(ctx, RegisterInput{Email: "b@example.com", Password: "x"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.UpdateProfile(ctx, b.ID, ProfileInput{Email: "a@example.com"}); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	stored, err := svc.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Username != "b@example.com" {
		t.Fatalf("username changed after rejected write: %q", stored.Username)
	}
}

func TestUserService_AdminOperations(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	admin, err := svc.CreateAdmin(ctx, RegisterInput{Name: "Root", Email: "root@example.com", Password: "x"})
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}
	if !admin.IsStaff {
		t.Fatal("expected staff account")
	}

	u, err := svc.Register(ctx, RegisterInput{Name: "U", Email: "u@example.com", Password: "x"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	promoted, err := svc.UpdateUser(ctx, u.ID, AdminUpdateInput{Name: "Una", Email: "una@example.com", IsAdmin: true})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if !promoted.IsStaff || promoted.Username != "una@example.com" {
		t.Fatalf("unexpected user %+v", promoted)
	}

	users, err := svc.List(ctx)
	if err != nil || len(users) != 2 {
		t.Fatalf("expected 2 users, got %d (%v)", len(users), err)
	}

	if err := svc.Delete(ctx, u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, u.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
