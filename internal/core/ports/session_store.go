package ports

import (
	"context"
	"time"

	"github.com/murahjaya/inventory-system/internal/core/domain"
)

// SessionStore persists ephemeral session identities. Get returns
// domain.ErrSessionNotFound for unknown or expired IDs; Delete is idempotent.
type SessionStore interface {
	Create(ctx context.Context, session *domain.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
