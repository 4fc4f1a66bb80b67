// Package metrics defines the custom Prometheus metrics of the users service.
// It is the single source of truth for metric names, labels, and help strings.
//
// Metrics are bound to the registry passed to New, so tests can build as many
// instances as they need without colliding on the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "users"

// Login results used as the "result" label of LoginsTotal.
const (
	LoginSuccess            = "success"
	LoginInvalidCredentials = "invalid_credentials"
	LoginError              = "error"
)

// Metrics groups the domain counters.
type Metrics struct {
	// UsersCreatedTotal counts successfully persisted users.
	UsersCreatedTotal prometheus.Counter

	// UsersDeletedTotal counts users removed by the authenticated delete.
	UsersDeletedTotal prometheus.Counter

	// CreateConflictsTotal counts create attempts rejected by a uniqueness
	// constraint on username or email.
	CreateConflictsTotal prometheus.Counter

	// LoginsTotal counts token requests.
	// Label:
	//   - result: "success", "invalid_credentials" or "error"
	LoginsTotal *prometheus.CounterVec
}

// New registers the metrics with reg. A nil reg yields unregistered metrics.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		UsersCreatedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "created_total",
			Help:      "Total number of users created.",
		}),
		UsersDeletedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deleted_total",
			Help:      "Total number of users deleted.",
		}),
		CreateConflictsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "create_conflicts_total",
			Help:      "Total number of user creations rejected as duplicates.",
		}),
		LoginsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "logins_total",
				Help:      "Total number of token requests, by result.",
			},
			[]string{"result"},
		),
	}
}
