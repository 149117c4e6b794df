package ports

import (
	"context"
	"time"

	"github.com/junhobyun/customer-admin/internal/core/domain"
)

// AccountRepository defines persistence for login principals.
type AccountRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

// AuthService validates credentials and issues signed access tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.Account, error)
}

// TokenDenylist records revoked tokens until their natural expiry. A nil
// denylist means revocation is disabled and tokens die only by expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
