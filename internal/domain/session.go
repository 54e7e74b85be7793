package domain

import "time"

// Session хранит только хэш refresh-токена, сам токен не сохраняется.
type Session struct {
	ID               string    `db:"id" json:"id"`
	UserID           UserID    `db:"user_id" json:"userId"`
	RefreshTokenHash string    `db:"refresh_token_hash" json:"-"`
	ExpiresAt        time.Time `db:"expires_at" json:"expiresAt"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
	RevokedAt        *time.Time `db:"revoked_at" json:"revokedAt,omitempty"`
}

func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
