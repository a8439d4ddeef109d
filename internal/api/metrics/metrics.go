// Package metrics defines and registers all custom Prometheus metrics for the
// MatchFit API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "matchfit"

// ── Invitation metrics ────────────────────────────────────────────────────────

// InvitationsCreatedTotal counts created invitations.
// Label:
//   - event_type: "wedding", "birthday", "tahlilan", or "costume"
var InvitationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invitations_created_total",
		Help:      "Total number of invitations created, by event type.",
	},
	[]string{"event_type"},
)

// RSVPsRecordedTotal counts recorded guest responses.
// Label:
//   - status: "attending" or "declined"
var RSVPsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rsvps_recorded_total",
		Help:      "Total number of RSVPs recorded, by attendance status.",
	},
	[]string{"status"},
)

// ── Shop metrics ──────────────────────────────────────────────────────────────

// OrdersPlacedTotal counts placed orders.
// Label:
//   - payment_method: the label chosen at checkout (e.g. "Credit Card")
var OrdersPlacedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders placed, by payment method.",
	},
	[]string{"payment_method"},
)

// OrderValue observes the total price of each placed order, in rupiah.
var OrderValue = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_value_rupiah",
		Help:      "Distribution of order totals in rupiah.",
		Buckets:   prometheus.ExponentialBuckets(10_000, 4, 8), // 10k .. ~164M
	},
)

// ── Advisor metrics ───────────────────────────────────────────────────────────

// AdvisorRequestsTotal counts advisory calls to the generative backend.
// Labels:
//   - kind: "invitation_copy", "fashion", or "face"
//   - outcome: "ok", "fallback", or "error"
var AdvisorRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "advisor_requests_total",
		Help:      "Total number of advisor requests, by kind and outcome.",
	},
	[]string{"kind", "outcome"},
)

// AdvisorRequestDuration measures end-to-end advisor call latency.
// Label:
//   - kind: "invitation_copy", "fashion", or "face"
var AdvisorRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "advisor_request_duration_seconds",
		Help:      "Duration of advisor requests from receipt to reply.",
		Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 20, 40, 60},
	},
	[]string{"kind"},
)
