// Package metrics defines and registers all custom Prometheus metrics for the
// inventory backend. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at package init;
// the /metrics endpoint and HTTP-level metrics are wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// ── Store metrics ─────────────────────────────────────────────────────────────

// StoreReconnectsTotal counts backend connection (re-)establishments, including
// the initial lazy dial.
var StoreReconnectsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_reconnects_total",
		Help:      "Total number of backend connections established by the data store.",
	},
)

// StoreRetriesTotal counts statements that were retried after a connectivity
// failure.
// Label:
//   - result: "success" (retry worked) or "failure" (retry also failed)
var StoreRetriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_retries_total",
		Help:      "Total number of statement retries after a broken connection, by result.",
	},
	[]string{"result"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// GuardRejectionsTotal counts requests short-circuited by the session guards.
// Label:
//   - reason: "unauthenticated" or "not_admin"
var GuardRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_rejections_total",
		Help:      "Total number of requests rejected by the auth guards, by reason.",
	},
	[]string{"reason"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditEventsTotal counts audit events by outcome.
// Label:
//   - result: "persisted" or "dropped"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events, by persistence result.",
	},
	[]string{"result"},
)
