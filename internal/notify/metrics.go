package notify

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is nil-safe.
type Metrics struct {
	Published    *prometheus.CounterVec
	Dropped      *prometheus.CounterVec
	Delivered    *prometheus.CounterVec
	Failures     *prometheus.CounterVec
	SendDuration *prometheus.HistogramVec
	QueueDepth   prometheus.Gauge
	BreakerState *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	return NewMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func NewMetricsWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Published: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ecrc42_notify_published_total",
			Help: "Events accepted into the notification queue",
		}, []string{"type"}),
		Dropped: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ecrc42_notify_dropped_total",
			Help: "Events dropped because the notification queue was full",
		}, []string{"type"}),
		Delivered: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ecrc42_notify_delivered_total",
			Help: "Events delivered per sink",
		}, []string{"sink"}),
		Failures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ecrc42_notify_failures_total",
			Help: "Failed deliveries per sink",
		}, []string{"sink"}),
		SendDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ecrc42_notify_send_duration_ms",
			Help:    "Sink send latency in milliseconds",
			Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 5000},
		}, []string{"sink"}),
		QueueDepth: f.NewGauge(prometheus.GaugeOpts{
			Name: "ecrc42_notify_queue_depth",
			Help: "Events waiting in the notification queue",
		}),
		BreakerState: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ecrc42_notify_circuit_open",
			Help: "Sink circuit breaker state (0=closed, 1=open)",
		}, []string{"sink"}),
	}
}

func (m *Metrics) IncrementPublished(eventType string) {
	if m == nil {
		return
	}
	m.Published.WithLabelValues(eventType).Inc()
}

func (m *Metrics) IncrementDropped(eventType string) {
	if m == nil {
		return
	}
	m.Dropped.WithLabelValues(eventType).Inc()
}

func (m *Metrics) IncrementDelivered(sink string) {
	if m == nil {
		return
	}
	m.Delivered.WithLabelValues(sink).Inc()
}

func (m *Metrics) IncrementFailure(sink string) {
	if m == nil {
		return
	}
	m.Failures.WithLabelValues(sink).Inc()
}

func (m *Metrics) ObserveSend(sink string, d time.Duration) {
	if m == nil {
		return
	}
	m.SendDuration.WithLabelValues(sink).Observe(float64(d.Milliseconds()))
}

func (m *Metrics) SetQueueDepth(n int) {
	if m == nil {
		return
	}
	m.QueueDepth.Set(float64(n))
}

func (m *Metrics) SetBreakerOpen(sink string, open bool) {
	if m == nil {
		return
	}
	v := 0.0
	if open {
		v = 1
	}
	m.BreakerState.WithLabelValues(sink).Set(v)
}
