package evaluator

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecrc42/internal/evaluator/metrics"
)

func TestServiceRecordsOutcome(t *testing.T) {
	m := metrics.NewWithRegisterer(prometheus.NewRegistry())
	svc := NewService(WithMetrics(m))

	o := svc.Evaluate(context.Background(), AnswerSet{IsProtected: Yes})
	assert.Equal(t, "needs_review", o.Rule)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Outcomes.WithLabelValues("conditional", "needs_review")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NeedsReview))
}

func TestServiceNextReturnsOutcomeAtResult(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	st, o, err := svc.Next(ctx, WizardState{Step: StepUsageType, Answers: AnswerSet{PublicDomain: Yes, UsageType: UsageBlog}})
	require.NoError(t, err)
	assert.Equal(t, StepUsageDetails, st.Step)
	assert.Nil(t, o)

	st, o, err = svc.Next(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, StepResult, st.Step)
	require.NotNil(t, o)
	assert.Equal(t, CategoryAllowed, o.Category)

	back, err := svc.Back(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, StepUsageDetails, back.Step)
}

func TestServiceNextKeepsStateOnError(t *testing.T) {
	svc := NewService()
	st := NewWizard()
	got, o, err := svc.Next(context.Background(), st)
	require.Error(t, err)
	assert.Nil(t, o)
	assert.Equal(t, st, got)
}
