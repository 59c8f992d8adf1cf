package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"musings-backend/internal/domains/user"
	"musings-backend/pkg/cache"
	"musings-backend/pkg/jwt"
	"musings-backend/pkg/logger"
)

func revokedTokenKey(token string) string {
	return fmt.Sprintf("auth:revoked:%s", token)
}

type userService struct {
	repo     user.Repository
	jwt      *jwt.Manager
	cache    cache.Cache
	readOnly bool
}

// NewUserService wires the auth service. With readOnly set the site runs in
// static publishing mode: both operations fail with user.ErrAuthDisabled and
// never touch the repository.
func NewUserService(repo user.Repository, manager *jwt.Manager, c cache.Cache, readOnly bool) user.Service {
	return &userService{
		repo:     repo,
		jwt:      manager,
		cache:    c,
		readOnly: readOnly,
	}
}

// Login checks credentials and issues a JWT carrying the admin role claim.
// Unknown email and wrong password collapse into the same error so the form
// cannot be used to probe for accounts.
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if s.readOnly {
		return nil, user.ErrAuthDisabled
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwt.GenerateToken(u.ID.String(), u.Email, u.Role)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &user.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      u.ToDTO(),
	}, nil
}

// Logout revokes the presented token by placing it on the Redis denylist
// until its natural expiry. An already-invalid token has nothing to revoke.
func (s *userService) Logout(ctx context.Context, token string) error {
	if s.readOnly {
		return user.ErrAuthDisabled
	}

	claims, err := s.jwt.VerifyToken(token)
	if err != nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	if err := s.cache.Set(ctx, revokedTokenKey(token), true, ttl); err != nil {
		logger.Error("Failed to denylist token", err)
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
