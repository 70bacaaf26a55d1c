// Package metrics defines the custom Prometheus metrics of the portfolio API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Metrics register with the default registry on package initialisation and
// are exposed on /metrics next to the echoprometheus request metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// ── Authorization and identity ───────────────────────────────────────────────

// AuthorizationDenialsTotal counts requests stopped by the policy.
// Labels:
//   - operation: policy operation name (e.g. "catalog:create")
//   - reason: "identity_missing", "insufficient_role" or "not_owner"
var AuthorizationDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denials_total",
		Help:      "Total number of requests denied by the authorization policy.",
	},
	[]string{"operation", "reason"},
)

// IdentityResolutionsTotal counts identity lookups by outcome.
// Label:
//   - result: "anonymous", "resolved", "unknown" or "error"
var IdentityResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identity_resolutions_total",
		Help:      "Total number of caller identity resolutions, by result.",
	},
	[]string{"result"},
)

// ── Resources ─────────────────────────────────────────────────────────────────

// MutationsTotal counts successful state changes.
// Labels:
//   - resource: "account", "investment" or "holding"
//   - action: "create", "update", "delete" or "elevate"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of successful resource mutations.",
	},
	[]string{"resource", "action"},
)

// ValidationFailuresTotal counts payloads rejected by validation.
// Label:
//   - route: the echo route template (e.g. "/users/:userId/investimentos")
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of requests rejected with field violations.",
	},
	[]string{"route"},
)

// ── Serializer ────────────────────────────────────────────────────────────────

// SerializerQueueDepth tracks the number of jobs waiting for a record lock
// held by another job on the same record.
var SerializerQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "serializer_queue_depth",
		Help:      "Current number of record jobs waiting behind another job on the same record.",
	},
)
