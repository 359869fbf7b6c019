package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("ECRC_ADDR", "")
	t.Setenv("ECRC_STORE", "")
	t.Setenv("KAFKA_BROKERS", "")

	cfg := FromEnv()
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, StoreMemory, cfg.Store.Backend)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "Europe/Zurich", cfg.Server.Timezone)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("ECRC_STORE", "postgres")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("LOGIN_RATE_PER_MIN", "not-a-number")
	t.Setenv("ADMIN_EMAIL", "Admin@School.CH")
	t.Setenv("ECRC_PUBLIC_BASE_URL", "https://ecrc.example/")

	cfg := FromEnv()
	assert.Equal(t, StorePostgres, cfg.Store.Backend)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 10, cfg.Auth.LoginRatePerMin)
	assert.Equal(t, "admin@school.ch", cfg.Auth.AdminEmail)
	assert.Equal(t, "https://ecrc.example", cfg.Server.PublicBaseURL)
}
