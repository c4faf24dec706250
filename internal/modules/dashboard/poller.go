package dashboard

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/devgenius/devgenius/internal/modules/dashboard/events"
	"github.com/devgenius/devgenius/internal/modules/dashboard/topics"
	"github.com/devgenius/devgenius/internal/pubsub"
	"github.com/devgenius/devgenius/internal/status"
)

// Poller periodically reads the status provider and publishes the snapshot
// on the bus. It is the only component that talks to the provider on a
// schedule; everything downstream reacts to the published events.
type Poller struct {
	provider  status.Provider
	publisher pubsub.Publisher
	interval  time.Duration
}

// NewPoller creates a poller with the given refresh interval.
func NewPoller(provider status.Provider, publisher pubsub.Publisher, interval time.Duration) *Poller {
	return &Poller{
		provider:  provider,
		publisher: publisher,
		interval:  interval,
	}
}

// Run publishes one snapshot immediately, then one per interval until the
// context is canceled. It must be run in its own goroutine.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.publishOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Debug("Status poller stopped")
			return
		case <-ticker.C:
			p.publishOnce(ctx)
		}
	}
}

func (p *Poller) publishOnce(ctx context.Context) {
	snapshot, err := p.provider.Current(ctx)
	if err != nil {
		// The dashboard keeps working on the documented demo figures when
		// telemetry is unavailable.
		slog.Warn("Status provider failed, using fallback snapshot", "error", err)
		snapshot = status.Fallback()
	}

	evt := events.NewStatusUpdated(snapshot)
	payload, err := json.Marshal(evt)
	if err != nil {
		slog.Error("Failed to encode status event", "error", err)
		return
	}

	msg := pubsub.Message{
		Topic:   topics.Updated,
		ID:      evt.ID.String(),
		Payload: payload,
	}
	if err := p.publisher.Publish(ctx, msg); err != nil {
		slog.Error("Failed to publish status event", "error", err)
	}
}
