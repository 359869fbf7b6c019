// Package config reads service configuration from the environment once at startup.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// StoreBackend selects the document store implementation.
type StoreBackend string

const (
	StoreMemory   StoreBackend = "memory"
	StorePostgres StoreBackend = "postgres"
	StoreBadger   StoreBackend = "badger"
)

// Config is the root configuration.
type Config struct {
	Server   Server
	Store    Store
	Postgres PostgresConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Webhook  WebhookConfig
	Kafka    KafkaConfig
	Tracing  TracingConfig
	Log      LogConfig
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string
	RequestTimeout time.Duration
	PublicBaseURL  string
	// Timezone is used for dates printed on reports and certificates.
	Timezone string
}

type Store struct {
	Backend   StoreBackend
	BadgerDir string
}

type PostgresConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

// RedisConfig is optional; an empty URL keeps revocation and rate limiting in memory.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type AuthConfig struct {
	JWTSigningKey     string
	JWTIssuer         string
	TokenTTL          time.Duration
	AdminEmail        string
	AdminPasswordHash string
	LoginRatePerMin   int
}

type WebhookConfig struct {
	URL              string
	Timeout          time.Duration
	FailureThreshold int
	Cooldown         time.Duration
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type TracingConfig struct {
	Stdout      bool
	ServiceName string
}

type LogConfig struct {
	Format string
	Level  string
}

// FromEnv builds the config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Server: Server{
			Addr:           getEnv("ECRC_ADDR", ":8080"),
			RequestTimeout: getDuration("ECRC_REQUEST_TIMEOUT", 15*time.Second),
			PublicBaseURL:  strings.TrimRight(getEnv("ECRC_PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
			Timezone:       getEnv("ECRC_TIMEZONE", "Europe/Zurich"),
		},
		Store: Store{
			Backend:   StoreBackend(getEnv("ECRC_STORE", string(StoreMemory))),
			BadgerDir: getEnv("ECRC_BADGER_DIR", "./data/badger"),
		},
		Postgres: PostgresConfig{
			DSN:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: getInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getInt("DB_MAX_IDLE_CONNS", 5),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     getInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Auth: AuthConfig{
			// Development default; override in production.
			JWTSigningKey:     getEnv("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
			JWTIssuer:         getEnv("JWT_ISSUER", "ecrc42"),
			TokenTTL:          getDuration("TOKEN_TTL", 30*24*time.Hour),
			AdminEmail:        strings.ToLower(os.Getenv("ADMIN_EMAIL")),
			AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
			LoginRatePerMin:   getInt("LOGIN_RATE_PER_MIN", 10),
		},
		Webhook: WebhookConfig{
			URL:              os.Getenv("CASE_WEBHOOK_URL"),
			Timeout:          getDuration("CASE_WEBHOOK_TIMEOUT", 5*time.Second),
			FailureThreshold: getInt("CASE_WEBHOOK_FAILURE_THRESHOLD", 5),
			Cooldown:         getDuration("CASE_WEBHOOK_COOLDOWN", 30*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:   getEnv("KAFKA_CASE_TOPIC", "ecrc42.case-examples"),
		},
		Tracing: TracingConfig{
			Stdout:      os.Getenv("OTEL_TRACES_STDOUT") == "true",
			ServiceName: getEnv("OTEL_SERVICE_NAME", "ecrc42"),
		},
		Log: LogConfig{
			Format: getEnv("LOG_FORMAT", "json"),
			Level:  getEnv("LOG_LEVEL", "info"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
