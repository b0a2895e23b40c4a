// Package metrics defines and registers all custom Prometheus metrics for the
// HR portal API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hr"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (failure is generic: wrong email, wrong
//     password, and unverified account are deliberately indistinguishable)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts self-registration attempts.
// Label:
//   - result: "success", "conflict" (duplicate email), or "invalid"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Collection metrics ────────────────────────────────────────────────────────

// EntityMutationsTotal counts successful add/update/delete operations.
// Labels:
//   - entity: "account", "employee"
//   - action: "add", "update", "delete", "reset_password"
var EntityMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_mutations_total",
		Help:      "Total number of successful entity mutations, by entity and action.",
	},
	[]string{"entity", "action"},
)

// RequestsSubmittedTotal counts stored resource requests.
// Label:
//   - type: the request type chosen by the submitter (e.g. "Equipment")
var RequestsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_submitted_total",
		Help:      "Total number of resource requests submitted, by type.",
	},
	[]string{"type"},
)
