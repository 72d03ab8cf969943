package ports

import (
	"context"
	"time"

	"github.com/murahjaya/inventory-system/internal/core/domain"
)

// SessionManager owns the session lifecycle: Start mints an identity from a
// verified credential record and returns the signed token to hand to the
// client; End destroys the identity. TTL reports the lifetime applied for the
// given remember flag so the transport can align cookie expiry with it.
type SessionManager interface {
	Start(ctx context.Context, user *domain.User, remember bool) (*domain.Session, string, error)
	End(ctx context.Context, sessionID string) error
	TTL(remember bool) time.Duration
}
