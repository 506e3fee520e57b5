package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cardcollection-app/cardcollection-backend/internal/models"
)

// UserRepository defines the user-related database operations.
type UserRepository interface {
	// CreateUser inserts a new account. The Password field must already be
	// hashed by the caller.
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByEmail returns the account with the given email, or nil when
	// no such account exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns the account with the given id, or nil when no such
	// account exists.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

type userRepositoryImpl struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository backed by db.
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = "id, name, email, password, cedula, role, created_at, updated_at"

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Cedula, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not scan user row: %w", err)
	}
	return &u, nil
}

func (r *userRepositoryImpl) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, password, cedula, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING `+userColumns,
		user.Name, user.Email, user.Password, user.Cedula, user.Role,
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("could not create user: %w", err)
	}
	return created, nil
}

func (r *userRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email)
	return scanUser(row)
}

func (r *userRepositoryImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return scanUser(row)
}
