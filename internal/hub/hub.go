package hub

import (
	"context"
	"log/slog"
)

// Subscriber represents a single browser connection that receives rendered
// HTML fragments from the Hub.
type Subscriber struct {
	// ID identifies the connection in logs.
	ID string

	// Send is a buffered channel of outbound fragments. The Hub writes to
	// this channel, and the websocket client drains it.
	Send chan []byte
}

// Hub fans rendered fragments out to every connected client. It maintains
// the set of active subscribers and serializes all membership changes and
// broadcasts through its channels, so no locking is needed.
type Hub struct {
	subscribers map[*Subscriber]bool

	// Broadcast is the channel for inbound fragments. Any component can send
	// a fragment here to have it delivered to all subscribers.
	Broadcast chan []byte

	// Register is a channel for new subscribers to register with the hub.
	Register chan *Subscriber

	// Unregister is a channel for subscribers to unregister from the hub.
	Unregister chan *Subscriber
}

// New creates and returns a new Hub instance.
func New() *Hub {
	return &Hub{
		Broadcast:   make(chan []byte),
		Register:    make(chan *Subscriber),
		Unregister:  make(chan *Subscriber),
		subscribers: make(map[*Subscriber]bool),
	}
}

// Run starts the Hub's processing loop. It must be run in its own goroutine
// and exits when the context is canceled, closing every subscriber channel.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for subscriber := range h.subscribers {
				close(subscriber.Send)
				delete(h.subscribers, subscriber)
			}
			slog.Debug("Hub stopped")
			return

		case subscriber := <-h.Register:
			h.subscribers[subscriber] = true
			slog.Info("New subscriber registered", "subscriber_id", subscriber.ID, "total_subscribers", len(h.subscribers))

		case subscriber := <-h.Unregister:
			if _, ok := h.subscribers[subscriber]; ok {
				delete(h.subscribers, subscriber)
				close(subscriber.Send)
				slog.Info("Subscriber unregistered", "subscriber_id", subscriber.ID, "total_subscribers", len(h.subscribers))
			}

		case fragment := <-h.Broadcast:
			slog.Debug("Broadcasting fragment", "recipient_count", len(h.subscribers))
			for subscriber := range h.subscribers {
				// Non-blocking send. A full buffer means the client is
				// lagging or gone, so it gets evicted.
				select {
				case subscriber.Send <- fragment:
				default:
					close(subscriber.Send)
					delete(h.subscribers, subscriber)
					slog.Warn("Unregistering slow subscriber", "subscriber_id", subscriber.ID, "total_subscribers", len(h.subscribers))
				}
			}
		}
	}
}
