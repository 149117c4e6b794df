// Package metrics defines and registers all custom Prometheus metrics for the
// customer administration API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "customer_admin"

// LoginsTotal counts credential checks at the login endpoint.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// CustomerOpsTotal counts customer record operations reaching the store.
// Labels:
//   - operation: "create", "search", "update", or "delete"
//   - result: "ok", "conflict", "not_found", or "error"
var CustomerOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "customer_operations_total",
		Help:      "Total number of customer record operations, labelled by operation and result.",
	},
	[]string{"operation", "result"},
)

// TokensRevokedTotal counts access tokens revoked through the logout endpoint.
var TokensRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of access tokens added to the revocation denylist.",
	},
)
