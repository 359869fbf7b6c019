package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"ecrc42/internal/auth/ratelimit"
	"ecrc42/internal/auth/revocation"
	"ecrc42/internal/docstore"
	httpapi "ecrc42/internal/http"
	"ecrc42/internal/notify"
	"ecrc42/internal/platform/config"
	"ecrc42/internal/platform/postgres"
	redisclient "ecrc42/internal/platform/redis"
	"ecrc42/pkg/platform/middleware/auth"
	"ecrc42/pkg/platform/circuit"
)

// tokenRevocations is satisfied by the memory and Redis revocation lists.
type tokenRevocations interface {
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

// backends holds the infrastructure the services run on and how to release it.
type backends struct {
	docs        docstore.Store
	revocations tokenRevocations
	limiter     auth.Limiter
	health      map[string]httpapi.HealthCheck
	closers     []func() error
}

func (b *backends) Close(logger *slog.Logger) {
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			logger.Warn("failed to close backend", "error", err)
		}
	}
}

func openBackends(ctx context.Context, cfg config.Config, logger *slog.Logger) (*backends, error) {
	b := &backends{health: map[string]httpapi.HealthCheck{}}

	docs, err := openDocstore(ctx, cfg, logger, b)
	if err != nil {
		b.Close(logger)
		return nil, err
	}
	b.docs = docs

	rc, err := redisclient.New(ctx, cfg.Redis)
	if err != nil {
		b.Close(logger)
		return nil, err
	}
	revMetrics := revocation.NewMetrics(prometheus.DefaultRegisterer)
	window := time.Minute
	memoryLimiter := ratelimit.NewMemory(cfg.Auth.LoginRatePerMin, window)
	if rc == nil {
		logger.Info("redis not configured, revocation and rate limiting stay in memory")
		b.revocations = revocation.NewMemory(revMetrics)
		b.limiter = memoryLimiter
		return b, nil
	}

	b.closers = append(b.closers, rc.Close)
	b.health["redis"] = rc.Health
	b.revocations = revocation.NewRedis(rc.Client, revMetrics)
	b.limiter = ratelimit.NewFallback(
		ratelimit.NewRedis(rc.Client, cfg.Auth.LoginRatePerMin, window),
		memoryLimiter,
		circuit.New("login-limiter"),
		logger,
	)
	return b, nil
}

func openDocstore(ctx context.Context, cfg config.Config, logger *slog.Logger, b *backends) (docstore.Store, error) {
	switch cfg.Store.Backend {
	case config.StoreMemory:
		logger.Warn("using in-memory document store, data is lost on restart")
		return docstore.NewMemory(), nil

	case config.StorePostgres:
		db, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, db.Close)
		b.health["postgres"] = db.PingContext
		store := docstore.NewPostgres(db)
		if err := store.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate document store: %w", err)
		}
		return store, nil

	case config.StoreBadger:
		store, err := docstore.OpenBadger(docstore.BadgerConfig{Dir: cfg.Store.BadgerDir, Logger: logger})
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, store.Close)
		return store, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

// openSinks builds the case notification sinks. Without a webhook or Kafka
// the notifications are only logged.
func openSinks(ctx context.Context, cfg config.Config, logger *slog.Logger, m *notify.Metrics) ([]notify.Sink, func(), error) {
	var sinks []notify.Sink
	cleanup := func() {}

	if cfg.Webhook.URL != "" {
		breaker := circuit.New("case-webhook",
			circuit.WithFailureThreshold(cfg.Webhook.FailureThreshold),
			circuit.WithCooldown(cfg.Webhook.Cooldown),
		)
		sinks = append(sinks, notify.NewWebhookSink(cfg.Webhook.URL,
			notify.WithHTTPClient(&http.Client{Timeout: cfg.Webhook.Timeout}),
			notify.WithBreaker(breaker),
			notify.WithWebhookLogger(logger),
			notify.WithWebhookMetrics(m),
		))
	}
	if len(cfg.Kafka.Brokers) > 0 {
		k, err := notify.NewKafkaSink(ctx, notify.KafkaConfig{Brokers: cfg.Kafka.Brokers, Topic: cfg.Kafka.Topic})
		if err != nil {
			return nil, cleanup, err
		}
		sinks = append(sinks, k)
		cleanup = k.Close
	}
	if len(sinks) == 0 {
		sinks = append(sinks, notify.NewLogSink(logger))
	}
	return sinks, cleanup, nil
}
