package domain

import "time"

// Audit actions.
const (
	AuditCreate = "create"
	AuditUpdate = "update"
	AuditDelete = "delete"
)

// Audited entity kinds.
const (
	EntityUser     = "user"
	EntityCategory = "category"
	EntityProduct  = "product"
)

// AuditEvent records a role-gated mutation for the audit trail. Events are
// persisted asynchronously; losing one never fails the originating request.
type AuditEvent struct {
	Actor    string    `json:"actor"`
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID int64     `json:"entity_id"`
	At       time.Time `json:"at"`
}
