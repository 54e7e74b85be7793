package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/swasthya-setu/backend/internal/domain"
	"github.com/swasthya-setu/backend/internal/postgres"
	"github.com/swasthya-setu/backend/internal/security"
)

type AuthResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

type AuthService struct {
	users      *postgres.UserRepository
	sessions   *postgres.SessionRepository
	jwt        *security.JWTSigner
	refreshTTL time.Duration
	passPolicy security.BcryptConfig
	now        func() time.Time
}

func NewAuthService(
	users *postgres.UserRepository,
	sessions *postgres.SessionRepository,
	jwt *security.JWTSigner,
	refreshTTL time.Duration,
	passPolicy security.BcryptConfig,
	now func() time.Time,
) *AuthService {
	if now == nil {
		now = time.Now
	}

	return &AuthService{
		users:      users,
		sessions:   sessions,
		jwt:        jwt,
		refreshTTL: refreshTTL,
		passPolicy: passPolicy,
		now:        now,
	}
}

func (s *AuthService) AccessTTL() time.Duration {
	return s.jwt.TTL()
}

func (s *AuthService) Register(ctx context.Context, phone, password, name string, role domain.Role, village *string) (*AuthResult, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" || strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: phone and name are required", domain.ErrInvalidInput)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}

	exists, err := s.users.ExistsByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("users.ExistsByPhone: %w", err)
	}
	if exists {
		return nil, domain.ErrAlreadyExists
	}

	hash, err := security.HashPassword(password, &s.passPolicy)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Phone:        phone,
		PasswordHash: hash,
		Name:         strings.TrimSpace(name),
		Role:         role,
		Village:      village,
	}
	id, err := s.users.Create(ctx, u)
	if err != nil {
		slog.Error("auth.register create failed", "err", err)
		return nil, err
	}
	u.ID = id

	access, refresh, err := s.issueTokens(ctx, u)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: u, AccessToken: access, RefreshToken: refresh}, nil
}

// Login аутентифицирует по телефону и паролю.
func (s *AuthService) Login(ctx context.Context, phone, password string) (*AuthResult, error) {
	u, err := s.users.GetByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := security.ComparePassword(u.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	access, refresh, err := s.issueTokens(ctx, u)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: u, AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh меняет refresh-токен на новую пару, старая сессия отзывается.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	hash := security.SHA256HexOfString(refreshToken)

	sess, err := s.sessions.GetByTokenHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	now := s.now()
	if !sess.Active(now) {
		return nil, domain.ErrSessionExpired
	}

	if err := s.sessions.Revoke(ctx, sess.ID, now); err != nil {
		slog.Warn("auth.refresh revoke failed", "session", sess.ID, "err", err)
	}

	u, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	access, refresh, err := s.issueTokens(ctx, u)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: u, AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) Me(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *AuthService) issueTokens(ctx context.Context, u *domain.User) (access, refresh string, err error) {
	now := s.now()

	access, err = s.jwt.SignAccessToken(u.ID, u.Role, now)
	if err != nil {
		return "", "", fmt.Errorf("sign access token: %w", err)
	}

	refresh, err = security.RandomStringURLSafe(32)
	if err != nil {
		return "", "", fmt.Errorf("generate refresh token: %w", err)
	}

	sess := &domain.Session{
		UserID:           u.ID,
		RefreshTokenHash: security.SHA256HexOfString(refresh),
		ExpiresAt:        now.Add(s.refreshTTL),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return "", "", fmt.Errorf("create session: %w", err)
	}

	return access, refresh, nil
}
