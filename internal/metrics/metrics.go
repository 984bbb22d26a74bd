// Package metrics defines and registers all custom Prometheus metrics for
// the BuildFlow client. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "buildflow_client"

// RequestsTotal counts gateway requests by endpoint group and outcome.
// Labels:
//   - group: the endpoint family (e.g. "auth", "projects", "import")
//   - status: the HTTP status code, or "transport_error" when the request
//     never produced a response
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of API gateway requests, by endpoint group and status.",
	},
	[]string{"group", "status"},
)

// RequestDuration measures the wall time of a single gateway call.
// Label:
//   - group: the endpoint family
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of API gateway calls from dispatch to decoded response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"group"},
)

// SessionExpiredTotal counts 401 responses that terminated the session.
var SessionExpiredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_expired_total",
		Help:      "Total number of unauthorized responses that forced a session reset.",
	},
)
