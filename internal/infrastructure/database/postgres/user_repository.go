package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
	"github.com/wichananm65/ecommerce-backend/internal/domain/repository"
)

// UserRepository is a PostgreSQL implementation of UserRepository.
type UserRepository struct {
	db *sql.DB
}

var _ repository.UserRepository = (*UserRepository)(nil)

const (
	userColumns = `id, username, email, first_name, last_name, password, is_staff, date_joined`

	insertUserQuery = `
		INSERT INTO users (username, email, first_name, last_name, password, is_staff)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING ` + userColumns
	getUserByIDQuery       = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	getUserByUsernameQuery = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	listUsersQuery         = `SELECT ` + userColumns + ` FROM users ORDER BY id`
	updateUserQuery        = `
		UPDATE users
		SET username = $1,
			email = $2,
			first_name = $3,
			last_name = $4,
			password = $5,
			is_staff = $6
		WHERE id = $7
		RETURNING ` + userColumns
	deleteUserQuery = `DELETE FROM users WHERE id = $1`
)

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.Password, &u.IsStaff, &u.DateJoined); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	u := *user
	u.SyncUsernameWithEmail()

	row := r.db.QueryRowContext(ctx, insertUserQuery, u.Username, u.Email, u.FirstName, u.LastName, u.Password, u.IsStaff)
	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrConflict
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.getOne(ctx, getUserByIDQuery, id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getOne(ctx, getUserByUsernameQuery, username)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.db.QueryContext(ctx, listUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	u := *user
	u.SyncUsernameWithEmail()

	row := r.db.QueryRowContext(ctx, updateUserQuery, u.Username, u.Email, u.FirstName, u.LastName, u.Password, u.IsStaff, u.ID)
	updated, err := scanUser(row)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, repository.ErrNotFound
		case isUniqueViolation(err):
			return nil, repository.ErrConflict
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

// Delete relies on the schema to null product, review and order owners.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, deleteUserQuery, id)
}

func execDelete(ctx context.Context, db *sql.DB, query string, id int64) error {
	res, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
