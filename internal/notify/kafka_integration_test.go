//go:build integration

package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"ecrc42/pkg/testutil/containers"
)

func TestKafkaSink(t *testing.T) {
	rp := containers.GetManager().GetRedpanda(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	const topic = "ecrc42.cases.test"
	sink, err := NewKafkaSink(ctx, KafkaConfig{Brokers: rp.Brokers, Topic: topic})
	require.NoError(t, err)
	defer sink.Close()

	// A second sink must tolerate the existing topic.
	again, err := NewKafkaSink(ctx, KafkaConfig{Brokers: rp.Brokers, Topic: topic})
	require.NoError(t, err)
	again.Close()

	require.NoError(t, sink.Send(ctx, Event{Type: "case.created", Key: "case-1", Data: map[string]string{"title": "Plakat"}}))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(rp.Brokers...),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	require.NoError(t, fetches.Err())
	records := fetches.Records()
	require.NotEmpty(t, records)

	assert.Equal(t, "case-1", string(records[0].Key))
	var got Event
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	assert.Equal(t, "case.created", got.Type)
}
