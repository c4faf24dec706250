package dashboard

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/devgenius/devgenius/internal/hub"
	"github.com/devgenius/devgenius/internal/modules/dashboard/events"
	"github.com/devgenius/devgenius/internal/modules/dashboard/topics"
	"github.com/devgenius/devgenius/internal/pubsub"
	"github.com/devgenius/devgenius/internal/rendering"
)

// StatusSubscriber listens for status events on the bus, renders each one
// into an out-of-band widget fragment, and hands the HTML to the hub for
// delivery to connected browsers.
type StatusSubscriber struct {
	subscriber pubsub.Subscriber
	renderer   rendering.Renderer
	hub        *hub.Hub
	fragment   Fragment
}

// NewStatusSubscriber creates a subscriber with its dependencies.
func NewStatusSubscriber(sub pubsub.Subscriber, renderer rendering.Renderer, h *hub.Hub, fragment Fragment) *StatusSubscriber {
	return &StatusSubscriber{
		subscriber: sub,
		renderer:   renderer,
		hub:        h,
		fragment:   fragment,
	}
}

// Start subscribes to the status topic. It returns once the subscription is
// active; handling runs until the context is canceled.
func (s *StatusSubscriber) Start(ctx context.Context) error {
	return s.subscriber.Subscribe(ctx, topics.Updated, s.handle)
}

func (s *StatusSubscriber) handle(ctx context.Context, msg pubsub.Message) error {
	var evt events.StatusUpdated
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return fmt.Errorf("decode status event: %w", err)
	}

	html, err := s.renderer.RenderComponent(ctx, s.fragment(evt.Snapshot))
	if err != nil {
		return fmt.Errorf("render status fragment: %w", err)
	}

	s.hub.Broadcast <- html
	return nil
}
