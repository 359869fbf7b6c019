package revocation

import (
	"fmt"
	"time"

	"ecrc42/pkg/platform/sentinel"
)

func validateTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive: %w", sentinel.ErrInvalidState)
	}
	return nil
}

// TTLUntil returns the remaining lifetime of a token expiring at exp, or a
// minimal positive TTL when it already expired.
func TTLUntil(exp, now time.Time) time.Duration {
	if d := exp.Sub(now); d > 0 {
		return d
	}
	return time.Second
}
