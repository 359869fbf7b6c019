package ratelimit

import (
	"context"
	"log/slog"

	"ecrc42/pkg/platform/circuit"
)

type limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// FallbackLimiter asks the primary limiter while its breaker is closed and
// switches to the in-memory fallback after repeated primary errors. An open
// breaker lets one probe through per cooldown to detect recovery.
type FallbackLimiter struct {
	primary  limiter
	fallback limiter
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

func NewFallback(primary, fallback limiter, breaker *circuit.Breaker, logger *slog.Logger) *FallbackLimiter {
	return &FallbackLimiter{primary: primary, fallback: fallback, breaker: breaker, logger: logger}
}

func (l *FallbackLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if !l.breaker.Allow() {
		return l.fallback.Allow(ctx, key)
	}
	allowed, err := l.primary.Allow(ctx, key)
	if err != nil {
		if _, change := l.breaker.RecordFailure(); change.Opened {
			l.logger.WarnContext(ctx, "rate limiter degraded to memory", "breaker", l.breaker.Name(), "error", err)
		}
		return l.fallback.Allow(ctx, key)
	}
	if _, change := l.breaker.RecordSuccess(); change.Closed {
		l.logger.InfoContext(ctx, "rate limiter recovered", "breaker", l.breaker.Name())
	}
	return allowed, nil
}

// Degraded reports whether requests are currently served by the fallback.
func (l *FallbackLimiter) Degraded() bool {
	return l.breaker.IsOpen()
}
