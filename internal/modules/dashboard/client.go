package dashboard

import (
	"context"
	"log/slog"

	"github.com/coder/websocket"

	"github.com/devgenius/devgenius/internal/hub"
)

// Client is a middleman between one WebSocket connection and the hub.
// Dashboard clients are receive-only: the browser never sends application
// messages, so the read side exists solely to notice disconnects.
type Client struct {
	conn       *websocket.Conn
	hub        *hub.Hub
	subscriber *hub.Subscriber
}

// readPump blocks on the connection until the client goes away, then
// unregisters it. One readPump runs per connection, keeping at most one
// reader on the socket.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister <- c.subscriber
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		_, _, err := c.conn.Read(context.Background())
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				slog.Debug("WebSocket closed normally", "subscriber_id", c.subscriber.ID)
			} else {
				slog.Debug("WebSocket read ended", "subscriber_id", c.subscriber.ID, "error", err)
			}
			return
		}
		// Ignore anything the client sends; this channel only pushes.
	}
}

// writePump streams fragments from the hub to the WebSocket connection.
// It exits when the subscriber's channel is closed by the hub.
func (c *Client) writePump() {
	defer func() {
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for fragment := range c.subscriber.Send {
		if err := c.conn.Write(context.Background(), websocket.MessageText, fragment); err != nil {
			slog.Debug("writePump error", "subscriber_id", c.subscriber.ID, "error", err)
			return
		}
	}
}
