// Package metrics exposes user and session counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is nil-safe.
type Metrics struct {
	Registrations prometheus.Counter
	Logins        *prometheus.CounterVec
	Logouts       prometheus.Counter
}

func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Registrations: f.NewCounter(prometheus.CounterOpts{
			Name: "ecrc42_user_registrations_total",
			Help: "Number of students registered with a new access code",
		}),
		Logins: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ecrc42_logins_total",
			Help: "Login attempts by method and result",
		}, []string{"method", "result"}),
		Logouts: f.NewCounter(prometheus.CounterOpts{
			Name: "ecrc42_logouts_total",
			Help: "Number of revoked session tokens",
		}),
	}
}

func (m *Metrics) IncrementRegistrations() {
	if m == nil {
		return
	}
	m.Registrations.Inc()
}

func (m *Metrics) IncrementLogin(method string, ok bool) {
	if m == nil {
		return
	}
	result := "failure"
	if ok {
		result = "success"
	}
	m.Logins.WithLabelValues(method, result).Inc()
}

func (m *Metrics) IncrementLogouts() {
	if m == nil {
		return
	}
	m.Logouts.Inc()
}
