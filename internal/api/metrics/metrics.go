// Package metrics defines and registers all custom Prometheus metrics for the
// HR backend. It is the single source of truth for metric names, labels, and
// help strings. Registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hr"

// EmployeesCreatedTotal counts successfully created employee records.
var EmployeesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employees_created_total",
		Help:      "Total number of employee records created.",
	},
)

// EmployeesDeletedTotal counts deleted employee records.
var EmployeesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employees_deleted_total",
		Help:      "Total number of employee records deleted.",
	},
)

// AuthFailuresTotal counts rejected requests on guarded routes.
// Label:
//   - reason: "missing_header", "invalid_token", "forbidden", "no_secret"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth middleware.",
	},
	[]string{"reason"},
)

// OTPIssuedTotal counts password-reset codes issued.
var OTPIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_issued_total",
		Help:      "Total number of password reset OTPs issued.",
	},
)

// AvatarUploadBytes observes the size of stored avatar uploads.
var AvatarUploadBytes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "avatar_upload_bytes",
		Help:      "Size distribution of accepted avatar uploads.",
		Buckets:   prometheus.ExponentialBuckets(1024, 4, 7), // 1KiB .. 4MiB
	},
)
