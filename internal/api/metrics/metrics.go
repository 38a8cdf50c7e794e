// Package metrics defines and registers all custom Prometheus metrics for
// the taskie API. It is the single source of truth for metric names, labels,
// and help strings. Registration happens at import time via promauto; the
// router exposes everything on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskie"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts accounts created through the register endpoint.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts created via registration.",
	},
)

// LoginsTotal counts login attempts that reached the auth service.
// Labels:
//   - method: "local" or "google"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by method and result.",
	},
	[]string{"method", "result"},
)

// GoogleUserInfoDuration measures the outbound call to the Google user-info
// endpoint.
// Label:
//   - result: "success" or "error"
var GoogleUserInfoDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "google_userinfo_duration_seconds",
		Help:      "Duration of the Google user-info request during OAuth login.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)

// ── Task metrics ──────────────────────────────────────────────────────────────

// TasksCreatedTotal counts created tasks.
// Label:
//   - status: the initial board column ("To Do", "In Progress", "Done")
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by initial status.",
	},
	[]string{"status"},
)

// TasksDeletedTotal counts permanently deleted tasks.
var TasksDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_deleted_total",
		Help:      "Total number of tasks permanently deleted.",
	},
)
