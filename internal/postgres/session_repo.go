package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/swasthya-setu/backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO sessions (user_id, refresh_token_hash, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		int64(s.UserID), s.RefreshTokenHash, s.ExpiresAt).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *SessionRepository) GetByTokenHash(ctx context.Context, hash string) (*domain.Session, error) {
	var s domain.Session
	var uid int64
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, refresh_token_hash, expires_at, created_at, revoked_at
		FROM sessions WHERE refresh_token_hash=$1`, hash).
		Scan(&s.ID, &uid, &s.RefreshTokenHash, &s.ExpiresAt, &s.CreatedAt, &s.RevokedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	s.UserID = domain.UserID(uid)
	return &s, nil
}

func (r *SessionRepository) Revoke(ctx context.Context, id string, now time.Time) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE sessions SET revoked_at=$2 WHERE id=$1 AND revoked_at IS NULL`, id, now)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
