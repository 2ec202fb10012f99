package ports

import (
	"context"

	"github.com/amk-marketing/landing-api/internal/core/domain"
)

// UserRepository persists legacy accounts. Create assigns the next integer id
// and fails with domain.ErrUserExists on a duplicate username.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserService manages legacy accounts. Nothing on the HTTP surface consumes
// it; it exists for parity with the admin tooling schema.
type UserService interface {
	CreateUser(ctx context.Context, username, password string) (*domain.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*domain.User, error)
}
