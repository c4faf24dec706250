package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/devgenius/devgenius/internal/hub"
	appmw "github.com/devgenius/devgenius/internal/middleware"
	"github.com/devgenius/devgenius/internal/status"
)

// Handler holds dependencies for the dashboard module's HTTP endpoints.
type Handler struct {
	provider status.Provider
	hub      *hub.Hub
	fragment Fragment
}

// NewHandler creates a new dashboard handler with its dependencies.
func NewHandler(provider status.Provider, h *hub.Hub, fragment Fragment) *Handler {
	return &Handler{provider: provider, hub: h, fragment: fragment}
}

// StatusGet serves the current status widgets as an HTML fragment. The
// dashboard page polls this endpoint with htmx as a fallback when the
// websocket is unavailable.
func (h *Handler) StatusGet(c echo.Context) error {
	snapshot, err := h.provider.Current(c.Request().Context())
	if err != nil {
		appmw.FromContext(c.Request().Context()).Warn("Status provider failed, serving fallback snapshot", "error", err)
		snapshot = status.Fallback()
	}

	return c.Render(http.StatusOK, "", h.fragment(snapshot))
}

// ServeWS upgrades the connection and registers the browser with the hub so
// it receives pushed status fragments.
func (h *Handler) ServeWS(c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		// The site is served same-origin; a deployment behind a different
		// public origin should verify it here.
		InsecureSkipVerify: true,
	})
	if err != nil {
		slog.Error("Failed to upgrade WebSocket connection", "error", err)
		return c.String(http.StatusInternalServerError, "Failed to upgrade to WebSocket")
	}

	sub := &hub.Subscriber{
		ID:   uuid.NewString(),
		Send: make(chan []byte, 256),
	}
	client := &Client{conn: conn, hub: h.hub, subscriber: sub}
	h.hub.Register <- sub

	go client.writePump()
	go client.readPump()

	return nil
}
