package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC)
	l := NewMemory(3, time.Minute)
	l.now = func() time.Time { return now }

	for i := range 3 {
		ok, err := l.Allow(ctx, "login:10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d", i+1)
	}
	ok, _ := l.Allow(ctx, "login:10.0.0.1")
	assert.False(t, ok, "fourth attempt in the window is rejected")

	ok, _ = l.Allow(ctx, "login:10.0.0.2")
	assert.True(t, ok, "keys are independent")

	now = now.Add(20 * time.Second)
	ok, _ = l.Allow(ctx, "login:10.0.0.1")
	assert.True(t, ok, "one token refilled")
}

func TestMemoryLimiterEvictsIdleBuckets(t *testing.T) {
	now := time.Now()
	l := NewMemory(1, time.Minute)
	l.now = func() time.Time { return now }

	_, _ = l.Allow(context.Background(), "a")
	now = now.Add(3 * time.Minute)
	_, _ = l.Allow(context.Background(), "b")

	assert.NotContains(t, l.buckets, "a")
	assert.Contains(t, l.buckets, "b")
}
