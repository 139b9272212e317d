package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veldwerk/backend/internal/model"
)

// AdminRepository is the persistence interface for the administrative user.
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	GetByID(ctx context.Context, id string) (*model.AdminUser, error)
	Create(ctx context.Context, user *model.AdminUser) error
}

// PgAdminRepository is the PostgreSQL implementation of AdminRepository.
type PgAdminRepository struct {
	pool *pgxpool.Pool
}

// NewPgAdminRepository creates a PgAdminRepository backed by the given pool.
func NewPgAdminRepository(pool *pgxpool.Pool) *PgAdminRepository {
	return &PgAdminRepository{pool: pool}
}

var _ AdminRepository = (*PgAdminRepository)(nil)

// GetByEmail returns the admin user with the given email, or ErrNotFound.
func (r *PgAdminRepository) GetByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	var user model.AdminUser
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at FROM admin_users WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the admin user with the given id, or ErrNotFound.
func (r *PgAdminRepository) GetByID(ctx context.Context, id string) (*model.AdminUser, error) {
	var user model.AdminUser
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at FROM admin_users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts an admin user and populates user.ID and CreatedAt.
func (r *PgAdminRepository) Create(ctx context.Context, user *model.AdminUser) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO admin_users (email, password_hash) VALUES ($1, $2)
		 RETURNING id, created_at`,
		user.Email, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)
}
