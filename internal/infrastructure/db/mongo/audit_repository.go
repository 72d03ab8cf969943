package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/murahjaya/inventory-system/internal/core/domain"
)

const auditCollection = "audit_events"

// AuditRepository appends audit events to a capped-growth Mongo collection.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	Actor    string `bson:"actor"`
	Action   string `bson:"action"`
	Entity   string `bson:"entity"`
	EntityID int64  `bson:"entity_id"`
	At       int64  `bson:"at"`
}

func (r *AuditRepository) Insert(ctx context.Context, event domain.AuditEvent) error {
	doc := auditDoc{
		Actor:    event.Actor,
		Action:   event.Action,
		Entity:   event.Entity,
		EntityID: event.EntityID,
		At:       event.At.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
