// Package revocation tracks token ids revoked by logout until they expire.
package revocation

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis key prefix for revoked tokens.
const revokedTokenKeyPrefix = "trl:jti:"

// RedisList is shared by all instances of the service.
type RedisList struct {
	client  redis.UniversalClient
	metrics *Metrics
}

func NewRedis(client redis.UniversalClient, m *Metrics) *RedisList {
	return &RedisList{client: client, metrics: m}
}

// RevokeToken marks jti revoked for ttl. Uses SET with expiry so entries
// disappear together with the token.
func (t *RedisList) RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" {
		return nil
	}
	if err := validateTTL(ttl); err != nil {
		return err
	}
	return t.client.Set(ctx, revokedTokenKeyPrefix+jti, "1", ttl).Err()
}

func (t *RedisList) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	start := time.Now()
	defer func() { t.metrics.ObserveCheck(time.Since(start)) }()

	if jti == "" {
		return false, nil
	}
	_, err := t.client.Get(ctx, revokedTokenKeyPrefix+jti).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
