package ports

import (
	"context"

	"github.com/murahjaya/inventory-system/internal/core/domain"
)

// AuthService verifies credentials and creates accounts.
type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
}
