package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/murahjaya/inventory-system/internal/core/domain"
)

type recordingAuditRepo struct {
	mu     sync.Mutex
	events []domain.AuditEvent
	signal chan struct{}
}

func newRecordingAuditRepo() *recordingAuditRepo {
	return &recordingAuditRepo{signal: make(chan struct{}, 64)}
}

func (r *recordingAuditRepo) Insert(ctx context.Context, event domain.AuditEvent) error {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
	r.signal <- struct{}{}
	return nil
}

func (r *recordingAuditRepo) waitFor(t *testing.T, n int) []domain.AuditEvent {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for i := 0; i < n; i++ {
		select {
		case <-r.signal:
		case <-deadline:
			t.Fatalf("timed out waiting for %d events", n)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditEvent, len(r.events))
	copy(out, r.events)
	return out
}

func TestDispatcher_PersistsEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := newRecordingAuditRepo()
	d := NewDispatcher(2, repo, zerolog.Nop())
	d.Start(ctx)

	d.Record(domain.AuditEvent{Actor: "admin", Action: domain.AuditCreate, Entity: domain.EntityProduct, EntityID: 1})
	d.Record(domain.AuditEvent{Actor: "admin", Action: domain.AuditDelete, Entity: domain.EntityCategory, EntityID: 2})

	events := repo.waitFor(t, 2)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
}

func TestDispatcher_SameEntityKeepsOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := newRecordingAuditRepo()
	d := NewDispatcher(4, repo, zerolog.Nop())
	d.Start(ctx)

	for i := int64(1); i <= 8; i++ {
		d.Record(domain.AuditEvent{Actor: "admin", Action: domain.AuditUpdate, Entity: domain.EntityProduct, EntityID: i})
	}

	events := repo.waitFor(t, 8)
	for i, event := range events {
		if event.EntityID != int64(i+1) {
			t.Fatalf("order broken at %d: %+v", i, events)
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, newRecordingAuditRepo(), zerolog.Nop())

	first := d.shardIndex(domain.EntityProduct)
	for i := 0; i < 16; i++ {
		if got := d.shardIndex(domain.EntityProduct); got != first {
			t.Fatalf("shard moved: %d vs %d", first, got)
		}
	}
}
