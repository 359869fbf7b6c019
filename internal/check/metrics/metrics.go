// Package metrics exposes check record counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is nil-safe.
type Metrics struct {
	ChecksCreated   *prometheus.CounterVec
	ChecksCompleted prometheus.Counter
	ChecksDeleted   prometheus.Counter
	Exports         *prometheus.CounterVec
}

func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ChecksCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ecrc42_checks_created_total",
			Help: "Stored checks by initial status",
		}, []string{"status"}),
		ChecksCompleted: f.NewCounter(prometheus.CounterOpts{
			Name: "ecrc42_checks_completed_total",
			Help: "Drafts moved to completed",
		}),
		ChecksDeleted: f.NewCounter(prometheus.CounterOpts{
			Name: "ecrc42_checks_deleted_total",
			Help: "Deleted checks",
		}),
		Exports: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ecrc42_check_exports_total",
			Help: "Rendered check reports by format",
		}, []string{"format"}),
	}
}

func (m *Metrics) IncrementCreated(status string) {
	if m == nil {
		return
	}
	m.ChecksCreated.WithLabelValues(status).Inc()
}

func (m *Metrics) IncrementCompleted() {
	if m == nil {
		return
	}
	m.ChecksCompleted.Inc()
}

func (m *Metrics) IncrementDeleted() {
	if m == nil {
		return
	}
	m.ChecksDeleted.Inc()
}

func (m *Metrics) IncrementExport(format string) {
	if m == nil {
		return
	}
	m.Exports.WithLabelValues(format).Inc()
}
