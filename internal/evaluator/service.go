package evaluator

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"ecrc42/internal/evaluator/metrics"
)

// Service wraps the pure rule table with metrics and tracing.
type Service struct {
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(*Service)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(opts ...Option) *Service {
	s := &Service{tracer: otel.Tracer("ecrc42/evaluator")}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Evaluate runs the rule table and records the outcome.
func (s *Service) Evaluate(ctx context.Context, a AnswerSet) Outcome {
	_, span := s.tracer.Start(ctx, "evaluator.Evaluate")
	defer span.End()

	start := time.Now()
	o := Evaluate(a)
	s.metrics.ObserveEvaluateLatency(time.Since(start))
	s.metrics.IncrementOutcome(string(o.Category), o.Rule, o.NeedsReview)

	span.SetAttributes(
		attribute.String("evaluator.rule", o.Rule),
		attribute.String("evaluator.category", string(o.Category)),
		attribute.Bool("evaluator.needs_review", o.NeedsReview),
	)
	return o
}

// Next advances the wizard. The outcome is set once the result step is reached.
func (s *Service) Next(ctx context.Context, st WizardState) (WizardState, *Outcome, error) {
	next, err := st.Next()
	if err != nil {
		return st, nil, err
	}
	s.metrics.IncrementTransition("next", string(next.Step))
	if next.Step != StepResult {
		return next, nil, nil
	}
	o := s.Evaluate(ctx, next.Answers)
	return next, &o, nil
}

// Back moves the wizard one step back.
func (s *Service) Back(_ context.Context, st WizardState) (WizardState, error) {
	prev, err := st.Back()
	if err != nil {
		return st, err
	}
	s.metrics.IncrementTransition("back", string(prev.Step))
	return prev, nil
}
