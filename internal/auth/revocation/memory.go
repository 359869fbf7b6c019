package revocation

import (
	"context"
	"sync"
	"time"
)

// MemoryList is a single-instance revocation list.
type MemoryList struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
	metrics *Metrics
}

func NewMemory(m *Metrics) *MemoryList {
	return &MemoryList{revoked: make(map[string]time.Time), now: time.Now, metrics: m}
}

func (l *MemoryList) RevokeToken(_ context.Context, jti string, ttl time.Duration) error {
	if jti == "" {
		return nil
	}
	if err := validateTTL(ttl); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pruneLocked()
	l.revoked[jti] = l.now().Add(ttl)
	return nil
}

func (l *MemoryList) IsTokenRevoked(_ context.Context, jti string) (bool, error) {
	start := time.Now()
	defer func() { l.metrics.ObserveCheck(time.Since(start)) }()

	l.mu.Lock()
	defer l.mu.Unlock()
	until, ok := l.revoked[jti]
	if !ok {
		return false, nil
	}
	if !l.now().Before(until) {
		delete(l.revoked, jti)
		return false, nil
	}
	return true, nil
}

func (l *MemoryList) pruneLocked() {
	now := l.now()
	for jti, until := range l.revoked {
		if !now.Before(until) {
			delete(l.revoked, jti)
		}
	}
}
