package revocation

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records revocation check latency. A nil *Metrics is a no-op.
type Metrics struct {
	checkDuration prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		checkDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "ecrc42_is_token_revoked_duration_ms",
			Help:    "Latency of token revocation checks in milliseconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
		}),
	}
}

func (m *Metrics) ObserveCheck(d time.Duration) {
	if m == nil {
		return
	}
	m.checkDuration.Observe(float64(d.Microseconds()) / 1000.0)
}
