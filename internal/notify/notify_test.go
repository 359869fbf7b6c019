package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecrc42/pkg/platform/circuit"
)

type recordingSink struct {
	name string
	err  error

	mu     sync.Mutex
	events []Event
	got    chan struct{}
}

func newRecordingSink(name string, err error) *recordingSink {
	return &recordingSink{name: name, err: err, got: make(chan struct{}, 16)}
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Send(_ context.Context, e Event) error {
	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()
	s.got <- struct{}{}
	return s.err
}

func (s *recordingSink) received() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivery")
	}
}

func TestDispatcherDeliversToAllSinks(t *testing.T) {
	failing := newRecordingSink("failing", errors.New("boom"))
	ok := newRecordingSink("ok", nil)
	m := NewMetricsWithRegisterer(prometheus.NewRegistry())
	d := NewDispatcher([]Sink{failing, ok}, WithLogger(quietLogger()), WithMetrics(m))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	require.True(t, d.Publish(context.Background(), Event{Type: "case.created", Key: "c1", Data: map[string]string{"title": "x"}}))
	waitFor(t, failing.got)
	waitFor(t, ok.got)

	cancel()
	require.NoError(t, <-done)

	require.Len(t, ok.received(), 1)
	assert.Equal(t, "c1", ok.received()[0].Key)
	assert.False(t, ok.received()[0].OccurredAt.IsZero())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Failures.WithLabelValues("failing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Delivered.WithLabelValues("ok")))
}

func TestPublishNeverBlocks(t *testing.T) {
	m := NewMetricsWithRegisterer(prometheus.NewRegistry())
	d := NewDispatcher(nil, WithQueueSize(1), WithLogger(quietLogger()), WithMetrics(m))

	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.True(t, d.Publish(context.Background(), Event{Type: "t"}))
		for range 10 {
			assert.False(t, d.Publish(context.Background(), Event{Type: "t"}))
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full queue")
	}
	assert.Equal(t, 10.0, testutil.ToFloat64(m.Dropped.WithLabelValues("t")))
}

func TestRunDrainsOnShutdown(t *testing.T) {
	sink := newRecordingSink("s", nil)
	d := NewDispatcher([]Sink{sink}, WithLogger(quietLogger()))
	for range 3 {
		d.Publish(context.Background(), Event{Type: "t"})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, d.Run(ctx))
	assert.Len(t, sink.received(), 3)
}

func TestWebhookSink(t *testing.T) {
	var (
		mu      sync.Mutex
		bodies  []map[string]any
		headers []string
		status  = http.StatusOK
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		mu.Lock()
		bodies = append(bodies, body)
		headers = append(headers, r.Header.Get("X-Event-Type"))
		code := status
		mu.Unlock()
		w.WriteHeader(code)
	}))
	defer srv.Close()

	now := time.Now()
	breaker := circuit.New("webhook",
		circuit.WithFailureThreshold(2),
		circuit.WithCooldown(time.Minute),
		circuit.WithClock(func() time.Time { return now }),
	)
	sink := NewWebhookSink(srv.URL, WithBreaker(breaker), WithWebhookLogger(quietLogger()))
	event := Event{Type: "case.created", Key: "c1", Data: map[string]any{"title": "Plakat", "tags": []string{"#kreativ"}}}

	t.Run("posts event data", func(t *testing.T) {
		require.NoError(t, sink.Send(context.Background(), event))
		mu.Lock()
		defer mu.Unlock()
		require.Len(t, bodies, 1)
		assert.Equal(t, "Plakat", bodies[0]["title"])
		assert.Equal(t, "case.created", headers[0])
	})

	t.Run("opens after repeated failures", func(t *testing.T) {
		mu.Lock()
		status = http.StatusBadGateway
		mu.Unlock()

		require.Error(t, sink.Send(context.Background(), event))
		require.Error(t, sink.Send(context.Background(), event))
		assert.True(t, breaker.IsOpen())
		assert.ErrorIs(t, sink.Send(context.Background(), event), ErrCircuitOpen)

		mu.Lock()
		defer mu.Unlock()
		assert.Len(t, bodies, 3, "open circuit skips the request")
	})

	t.Run("closes after cooldown probe succeeds", func(t *testing.T) {
		mu.Lock()
		status = http.StatusNoContent
		mu.Unlock()
		now = now.Add(2 * time.Minute)

		require.NoError(t, sink.Send(context.Background(), event))
		assert.False(t, breaker.IsOpen())
	})
}
