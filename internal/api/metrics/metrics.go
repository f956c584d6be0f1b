// Package metrics defines and registers the custom Prometheus metrics of the
// access-control API. It is the single source of truth for metric names,
// labels and help strings.
//
// Metrics register with the default registry on package init, so they are
// served by the same /metrics handler as the echoprometheus HTTP metrics.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "access_control"

// ── Role metrics ──────────────────────────────────────────────────────────────

// RolesCreatedTotal counts created roles.
// Label:
//   - api_version: "v1" or "v2"
var RolesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "roles_created_total",
		Help:      "Total number of roles created, by API version.",
	},
	[]string{"api_version"},
)

var RolesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "roles_deleted_total",
		Help:      "Total number of roles deleted.",
	},
)

// RoleAssignmentSize observes how many roles each assignment grants.
var RoleAssignmentSize = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "role_assignment_size",
		Help:      "Number of roles granted per assignment request.",
		Buckets:   prometheus.LinearBuckets(1, 1, 6),
	},
)

// ── User metrics ──────────────────────────────────────────────────────────────

var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created.",
	},
)

var UsersDeactivatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deactivated_total",
		Help:      "Total number of users soft-deleted.",
	},
)

// ── Conflicts ─────────────────────────────────────────────────────────────────

// ConflictsTotal counts requests refused by a uniqueness or in-use check.
// Labels:
//   - resource: "user" or "role"
//   - reason: e.g. "email_taken", "name_taken", "in_use"
var ConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conflicts_total",
		Help:      "Total number of requests rejected with a conflict.",
	},
	[]string{"resource", "reason"},
)

// APIVersionRequestsTotal counts role requests per negotiated version.
// Label:
//   - api_version: "v1" or "v2"
//   - explicit: "true" when the version came from the path
var APIVersionRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_version_requests_total",
		Help:      "Total number of role requests by negotiated API version.",
	},
	[]string{"api_version", "explicit"},
)

// Recorder forwards service observations to the package metrics.
type Recorder struct{}

func (Recorder) RoleCreated(version string) { RolesCreatedTotal.WithLabelValues(version).Inc() }
func (Recorder) RoleDeleted()               { RolesDeletedTotal.Inc() }
func (Recorder) RolesAssigned(count int)    { RoleAssignmentSize.Observe(float64(count)) }
func (Recorder) UserCreated()               { UsersCreatedTotal.Inc() }
func (Recorder) UserDeactivated()           { UsersDeactivatedTotal.Inc() }

func (Recorder) Conflict(resource, reason string) {
	ConflictsTotal.WithLabelValues(resource, reason).Inc()
}

// VersionNegotiated records the outcome of version negotiation.
func VersionNegotiated(version string, explicit bool) {
	APIVersionRequestsTotal.WithLabelValues(version, strconv.FormatBool(explicit)).Inc()
}
