package postgres

import (
	"context"
	"errors"

	"github.com/swasthya-setu/backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) (domain.UserID, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (phone, password_hash, name, role, village)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		u.Phone, u.PasswordHash, u.Name, u.Role, u.Village).Scan(&id)
	if err != nil {
		return 0, mapPgError(err)
	}
	return domain.UserID(id), nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	var id int64
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&id, &u.Phone, &u.PasswordHash, &u.Name, &u.Role, &u.Village, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	u.ID = domain.UserID(id)
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return r.getOne(ctx, `
		SELECT id, phone, password_hash, name, role, village, created_at
		FROM users WHERE id=$1`, int64(id))
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.getOne(ctx, `
		SELECT id, phone, password_hash, name, role, village, created_at
		FROM users WHERE phone=$1`, phone)
}

func (r *UserRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE phone=$1)`, phone).Scan(&exists)
	return exists, err
}
