package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/murahjaya/inventory-system/internal/api/metrics"
	"github.com/murahjaya/inventory-system/internal/core/domain"
	"github.com/murahjaya/inventory-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes audit events to a fixed set of workers using consistent
// hashing on the entity kind, guaranteeing per-entity event ordering. Losing an
// event never fails the request that produced it; persistence failures are
// logged and counted.
type Dispatcher struct {
	workers []chan domain.AuditEvent
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an audit event for asynchronous persistence. When the worker
// channel is full the event is dropped rather than blocking the request path.
func (d *Dispatcher) Record(event domain.AuditEvent) {
	select {
	case d.workers[d.shardIndex(event.Entity)] <- event:
	default:
		metrics.AuditEventsTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().
			Str("entity", event.Entity).
			Str("action", event.Action).
			Msg("audit queue full, event dropped")
	}
}

// shardIndex maps an entity kind deterministically to a worker index.
func (d *Dispatcher) shardIndex(entity string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(entity))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.repo.Insert(ctx, event); err != nil {
				metrics.AuditEventsTotal.WithLabelValues("dropped").Inc()
				d.log.Error().Err(err).
					Str("entity", event.Entity).
					Int("worker_id", id).
					Msg("audit event persistence failed")
				continue
			}
			metrics.AuditEventsTotal.WithLabelValues("persisted").Inc()
		}
	}
}
