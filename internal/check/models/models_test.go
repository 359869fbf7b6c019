package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecrc42/internal/evaluator"
	id "ecrc42/pkg/domain"
)

func TestCheckLifecycle(t *testing.T) {
	now := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	owner := id.NewUserID()

	c := NewCheck(id.NewCheckID(), owner, evaluator.AnswerSet{}, evaluator.Outcome{}, false, now)
	assert.Equal(t, StatusDraft, c.Status)
	assert.Nil(t, c.CompletedAt)
	assert.True(t, c.OwnedBy(owner))
	assert.False(t, c.OwnedBy(id.NewUserID()))

	later := now.Add(time.Hour)
	require.True(t, c.Complete(later))
	assert.True(t, c.IsCompleted())
	require.NotNil(t, c.CompletedAt)
	assert.Equal(t, later, *c.CompletedAt)

	assert.False(t, c.Complete(later.Add(time.Hour)), "completing twice is a no-op")
	assert.Equal(t, later, *c.CompletedAt)
}

func TestNewCheckFinalized(t *testing.T) {
	now := time.Now()
	c := NewCheck(id.NewCheckID(), id.NewUserID(), evaluator.AnswerSet{}, evaluator.Outcome{}, true, now)
	assert.Equal(t, StatusCompleted, c.Status)
	require.NotNil(t, c.CompletedAt)
	assert.Equal(t, now, c.UpdatedAt)
}
