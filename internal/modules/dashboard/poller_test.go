package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devgenius/devgenius/internal/modules/dashboard/events"
	"github.com/devgenius/devgenius/internal/modules/dashboard/topics"
	"github.com/devgenius/devgenius/internal/pubsub"
	"github.com/devgenius/devgenius/internal/status"
)

type capturePublisher struct {
	mu   sync.Mutex
	msgs []pubsub.Message
}

func (p *capturePublisher) Publish(ctx context.Context, msg pubsub.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func (p *capturePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.msgs)
}

func (p *capturePublisher) first() pubsub.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.msgs[0]
}

type failingProvider struct{}

func (failingProvider) Current(ctx context.Context) (status.Snapshot, error) {
	return status.Snapshot{}, errors.New("telemetry unavailable")
}

func TestPollerPublishesImmediatelyAndOnTicks(t *testing.T) {
	publisher := &capturePublisher{}
	poller := NewPoller(status.NewStaticProvider(), publisher, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go poller.Run(ctx)

	require.Eventually(t, func() bool { return publisher.count() >= 2 }, 2*time.Second, 5*time.Millisecond)

	msg := publisher.first()
	assert.Equal(t, topics.Updated, msg.Topic)
	assert.NotEmpty(t, msg.ID)

	var evt events.StatusUpdated
	require.NoError(t, json.Unmarshal(msg.Payload, &evt))
	assert.Equal(t, "Successful", evt.Snapshot.Build.State)
	assert.Equal(t, msg.ID, evt.ID.String())
	assert.False(t, evt.OccurredAt.IsZero())
}

func TestPollerFallsBackWhenProviderFails(t *testing.T) {
	publisher := &capturePublisher{}
	poller := NewPoller(failingProvider{}, publisher, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go poller.Run(ctx)

	require.Eventually(t, func() bool { return publisher.count() >= 1 }, 2*time.Second, 5*time.Millisecond)

	var evt events.StatusUpdated
	require.NoError(t, json.Unmarshal(publisher.first().Payload, &evt))
	assert.Equal(t, status.Fallback(), evt.Snapshot)
}

func TestPollerStopsWithContext(t *testing.T) {
	publisher := &capturePublisher{}
	poller := NewPoller(status.NewStaticProvider(), publisher, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	go poller.Run(ctx)

	require.Eventually(t, func() bool { return publisher.count() >= 1 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	// Give the loop a moment to exit, then confirm publishing stopped.
	time.Sleep(50 * time.Millisecond)
	count := publisher.count()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, count, publisher.count())
}
