// Package activity records the dashboard counters of a user. Counter updates
// are best effort: failures are logged and counted, never returned.
package activity

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"ecrc42/internal/user/models"
	id "ecrc42/pkg/domain"
)

type Store interface {
	IncrementActivity(ctx context.Context, userID id.UserID, counter models.Counter, delta int) error
}

type Recorder struct {
	store    Store
	logger   *slog.Logger
	updates  *prometheus.CounterVec
	failures *prometheus.CounterVec
}

func NewRecorder(store Store, logger *slog.Logger, reg prometheus.Registerer) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	f := promauto.With(reg)
	return &Recorder{
		store:  store,
		logger: logger,
		updates: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ecrc42_activity_updates_total",
			Help: "Applied activity counter updates",
		}, []string{"counter"}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ecrc42_activity_update_failures_total",
			Help: "Activity counter updates that failed and were skipped",
		}, []string{"counter"}),
	}
}

// Add applies delta to the counter.
func (r *Recorder) Add(ctx context.Context, userID id.UserID, counter models.Counter, delta int) {
	if delta == 0 {
		return
	}
	if err := r.store.IncrementActivity(ctx, userID, counter, delta); err != nil {
		r.failures.WithLabelValues(string(counter)).Inc()
		r.logger.WarnContext(ctx, "activity counter update failed",
			"user_id", userID,
			"counter", counter,
			"delta", delta,
			"error", err,
		)
		return
	}
	r.updates.WithLabelValues(string(counter)).Inc()
}
