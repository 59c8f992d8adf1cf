package user

import "context"

// Service is the auth contract. In static publishing mode both operations
// fail with ErrAuthDisabled.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context, token string) error
}
