package ports

import (
	"context"

	"github.com/murahjaya/inventory-system/internal/core/domain"
)

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuditEvent) error
}

// AuditSink accepts audit events for asynchronous persistence. Record never
// blocks the caller beyond queue capacity and never returns an error; delivery
// failures are the sink's problem.
type AuditSink interface {
	Record(event domain.AuditEvent)
}
