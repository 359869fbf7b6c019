package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"ecrc42/pkg/platform/circuit"
)

// ErrCircuitOpen is returned while the sink's breaker rejects calls.
var ErrCircuitOpen = errors.New("circuit open")

// WebhookSink POSTs the event data as JSON to a fixed URL, the shape a
// workflow tool webhook expects. The event type travels in a header.
type WebhookSink struct {
	url     string
	client  *http.Client
	breaker *circuit.Breaker
	logger  *slog.Logger
	metrics *Metrics
}

type WebhookOption func(*WebhookSink)

func WithHTTPClient(c *http.Client) WebhookOption {
	return func(s *WebhookSink) { s.client = c }
}

func WithBreaker(b *circuit.Breaker) WebhookOption {
	return func(s *WebhookSink) { s.breaker = b }
}

func WithWebhookLogger(logger *slog.Logger) WebhookOption {
	return func(s *WebhookSink) { s.logger = logger }
}

func WithWebhookMetrics(m *Metrics) WebhookOption {
	return func(s *WebhookSink) { s.metrics = m }
}

func NewWebhookSink(url string, opts ...WebhookOption) *WebhookSink {
	s := &WebhookSink{
		url:     url,
		client:  &http.Client{Timeout: 5 * time.Second},
		breaker: circuit.New("webhook", circuit.WithFailureThreshold(5), circuit.WithCooldown(30*time.Second)),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *WebhookSink) Name() string { return "webhook" }

func (s *WebhookSink) Send(ctx context.Context, e Event) error {
	if !s.breaker.Allow() {
		return ErrCircuitOpen
	}
	err := s.post(ctx, e)
	if err != nil {
		if _, change := s.breaker.RecordFailure(); change.Opened {
			s.metrics.SetBreakerOpen(s.Name(), true)
			s.logger.WarnContext(ctx, "webhook circuit opened", "url", s.url)
		}
		return err
	}
	if _, change := s.breaker.RecordSuccess(); change.Closed {
		s.metrics.SetBreakerOpen(s.Name(), false)
		s.logger.InfoContext(ctx, "webhook circuit closed", "url", s.url)
	}
	return nil
}

func (s *WebhookSink) post(ctx context.Context, e Event) error {
	body, err := json.Marshal(e.Data)
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Event-Type", e.Type)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
