package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for rule evaluation.
type Metrics struct {
	// Outcomes by category and the rule that fired
	Outcomes *prometheus.CounterVec

	// Answer sets that needed a conservative fallback
	NeedsReview prometheus.Counter

	EvaluateLatency prometheus.Histogram

	// Wizard transitions by direction and resulting step
	WizardTransitions *prometheus.CounterVec
}

func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Outcomes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ecrc42_evaluator_outcomes_total",
			Help: "Evaluator outcomes by category and rule",
		}, []string{"category", "rule"}),

		NeedsReview: f.NewCounter(prometheus.CounterOpts{
			Name: "ecrc42_evaluator_needs_review_total",
			Help: "Outcomes flagged for further review",
		}),

		EvaluateLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "ecrc42_evaluator_evaluate_duration_seconds",
			Help:    "Duration of a single rule evaluation",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005},
		}),

		WizardTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ecrc42_wizard_transitions_total",
			Help: "Wizard transitions by direction and resulting step",
		}, []string{"direction", "step"}),
	}
}

func (m *Metrics) IncrementOutcome(category, rule string, needsReview bool) {
	if m == nil {
		return
	}
	m.Outcomes.WithLabelValues(category, rule).Inc()
	if needsReview {
		m.NeedsReview.Inc()
	}
}

func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}

func (m *Metrics) IncrementTransition(direction, step string) {
	if m != nil {
		m.WizardTransitions.WithLabelValues(direction, step).Inc()
	}
}
