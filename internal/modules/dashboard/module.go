package dashboard

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"maragu.dev/gomponents"

	"github.com/devgenius/devgenius/internal/hub"
	appmw "github.com/devgenius/devgenius/internal/middleware"
	"github.com/devgenius/devgenius/internal/module"
	"github.com/devgenius/devgenius/internal/pubsub"
	"github.com/devgenius/devgenius/internal/registry"
	"github.com/devgenius/devgenius/internal/rendering"
	"github.com/devgenius/devgenius/internal/status"
)

// KeyProvider is the registry key under which the module publishes its
// status provider for other modules to consume.
var KeyProvider = registry.Key[status.Provider]("dashboard.status.provider")

// Fragment renders a status snapshot into a dashboard widget fragment.
// The concrete implementations live in the web templates; they are injected
// here to keep this module free of view dependencies.
type Fragment func(status.Snapshot) gomponents.Node

// DashboardModule wires the live-status pipeline: a poller reads the status
// provider and publishes bus events, a subscriber renders each event into an
// HTML fragment and hands it to the hub, and the hub pushes it to connected
// browsers over the websocket.
type DashboardModule struct {
	module.BaseModule

	publisher   pubsub.Publisher
	subscriber  pubsub.Subscriber
	renderer    rendering.Renderer
	hub         *hub.Hub
	provider    status.Provider
	fragment    Fragment
	fragmentOOB Fragment
}

// Dependencies holds all the services that the DashboardModule requires.
type Dependencies struct {
	Publisher   pubsub.Publisher
	Subscriber  pubsub.Subscriber
	Renderer    rendering.Renderer
	Hub         *hub.Hub
	Provider    status.Provider
	Fragment    Fragment
	FragmentOOB Fragment
}

// New creates a new instance of the DashboardModule, injecting its dependencies.
func New(deps Dependencies) *DashboardModule {
	return &DashboardModule{
		publisher:   deps.Publisher,
		subscriber:  deps.Subscriber,
		renderer:    deps.Renderer,
		hub:         deps.Hub,
		provider:    deps.Provider,
		fragment:    deps.Fragment,
		fragmentOOB: deps.FragmentOOB,
	}
}

// Name returns the module name.
func (m *DashboardModule) Name() string {
	return "dashboard"
}

// Register publishes the status provider in the service registry.
func (m *DashboardModule) Register(reg *registry.Registry) error {
	registry.Set(reg, KeyProvider, m.provider)
	return nil
}

// Boot starts the poller and the fragment subscriber, and registers the
// module's HTTP routes. The refresh interval comes from the registry's
// configuration.
func (m *DashboardModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	interval := reg.Config().GetStatusInterval()
	slog.Info("Booting DashboardModule", "refresh_interval", interval)

	statusSubscriber := NewStatusSubscriber(m.subscriber, m.renderer, m.hub, m.fragmentOOB)
	if err := statusSubscriber.Start(ctx); err != nil {
		return err
	}

	poller := NewPoller(m.provider, m.publisher, interval)
	go poller.Run(ctx)

	handler := NewHandler(m.provider, m.hub, m.fragment)
	g.GET("/dashboard/status", handler.StatusGet, appmw.RateLimiter())
	g.GET("/ws", handler.ServeWS)

	return nil
}

// Shutdown is called on application termination. Background goroutines stop
// with the boot context, so there is nothing extra to tear down.
func (m *DashboardModule) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down DashboardModule")
	return nil
}
