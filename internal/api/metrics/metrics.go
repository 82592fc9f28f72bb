// Package metrics defines and registers all custom Prometheus metrics for the
// contacts system API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics registered via promauto are attached to the default registry at
// package load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "contacts"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "throttled", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ContactMutationsTotal counts contact create/update/delete operations.
// Label:
//   - action: "created", "updated", or "deleted"
var ContactMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_mutations_total",
		Help:      "Total number of contact mutations, labelled by action.",
	},
	[]string{"action"},
)

// UserMutationsTotal counts account create/update/delete operations.
// Label:
//   - action: "created", "updated", or "deleted"
var UserMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_mutations_total",
		Help:      "Total number of user mutations, labelled by action.",
	},
	[]string{"action"},
)

// ValidationFailuresTotal counts requests rejected by payload validation.
// Label:
//   - form: which request schema failed ("contact" or "user")
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of requests rejected with a field-level validation error.",
	},
	[]string{"form"},
)

// AuditEventsTotal counts audit events persisted successfully.
// Labels:
//   - entity: "user" or "contact"
//   - action: "created", "updated", or "deleted"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events persisted.",
	},
	[]string{"entity", "action"},
)

// AuditErrorsTotal counts audit events that failed to persist.
// Label:
//   - entity: "user" or "contact"
var AuditErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of audit events that failed persistence.",
	},
	[]string{"entity"},
)
