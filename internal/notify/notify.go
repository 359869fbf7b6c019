// Package notify fans domain events out to external sinks (webhook, Kafka)
// from a single background worker. Publishing never blocks the caller and
// delivery failures never reach it.
package notify

import (
	"context"
	"log/slog"
	"time"
)

// Event is one notification. Data is encoded as JSON by the sinks.
type Event struct {
	Type       string    `json:"type"`
	Key        string    `json:"key"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

// Sink delivers events to one destination.
type Sink interface {
	Name() string
	Send(ctx context.Context, e Event) error
}

const (
	defaultQueueSize   = 256
	defaultSendTimeout = 10 * time.Second
)

// Dispatcher owns a bounded queue drained by Run.
type Dispatcher struct {
	queue       chan Event
	sinks       []Sink
	logger      *slog.Logger
	metrics     *Metrics
	sendTimeout time.Duration
}

type Option func(*Dispatcher)

func WithQueueSize(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.queue = make(chan Event, n)
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

func WithMetrics(m *Metrics) Option {
	return func(d *Dispatcher) { d.metrics = m }
}

// WithSendTimeout bounds each sink call.
func WithSendTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.sendTimeout = timeout
		}
	}
}

func NewDispatcher(sinks []Sink, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		queue:       make(chan Event, defaultQueueSize),
		sinks:       sinks,
		logger:      slog.Default(),
		sendTimeout: defaultSendTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Publish enqueues e. A full queue drops the event and reports false.
func (d *Dispatcher) Publish(ctx context.Context, e Event) bool {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now()
	}
	select {
	case d.queue <- e:
		d.metrics.IncrementPublished(e.Type)
		d.metrics.SetQueueDepth(len(d.queue))
		return true
	default:
		d.metrics.IncrementDropped(e.Type)
		d.logger.WarnContext(ctx, "notification queue full, event dropped",
			"event_type", e.Type,
			"event_key", e.Key,
		)
		return false
	}
}

// Run delivers queued events until ctx is cancelled, then drains what is
// left in the queue.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			d.drain()
			return nil
		case e := <-d.queue:
			d.deliver(ctx, e)
		}
	}
}

func (d *Dispatcher) drain() {
	for {
		select {
		case e := <-d.queue:
			d.deliver(context.Background(), e)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, e Event) {
	d.metrics.SetQueueDepth(len(d.queue))
	for _, sink := range d.sinks {
		sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
		start := time.Now()
		err := sink.Send(sendCtx, e)
		cancel()
		d.metrics.ObserveSend(sink.Name(), time.Since(start))
		if err != nil {
			d.metrics.IncrementFailure(sink.Name())
			d.logger.Error("notification delivery failed",
				"sink", sink.Name(),
				"event_type", e.Type,
				"event_key", e.Key,
				"error", err,
			)
			continue
		}
		d.metrics.IncrementDelivered(sink.Name())
	}
}

// LogSink writes events to the logger. It is used when no external sink is
// configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Send(ctx context.Context, e Event) error {
	s.logger.InfoContext(ctx, "notification",
		"event_type", e.Type,
		"event_key", e.Key,
		"occurred_at", e.OccurredAt,
	)
	return nil
}
