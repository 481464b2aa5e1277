package repository

import (
	"context"

	"account-service/internal/user/domain"
)

// Repository defines persistence for users.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	// SetTwoFA sets the two_fa flag. Returns domain.ErrNotFound when no row matched.
	SetTwoFA(ctx context.Context, id string, enabled bool) error
	// SetPhoneVerified marks the phone as verified. Returns domain.ErrNotFound when no row matched.
	SetPhoneVerified(ctx context.Context, id string) error
}
