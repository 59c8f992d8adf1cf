package user

import "context"

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*AdminUser, error)
}
