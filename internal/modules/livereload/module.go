// Package livereload pushes a page reload to connected browsers whenever a
// static asset changes on disk. It is only booted in development.
package livereload

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/devgenius/devgenius/internal/assets"
	"github.com/devgenius/devgenius/internal/hub"
	"github.com/devgenius/devgenius/internal/module"
	"github.com/devgenius/devgenius/internal/pubsub"
	"github.com/devgenius/devgenius/internal/registry"
	"github.com/devgenius/devgenius/internal/rendering"
)

// LiveReloadModule watches the static asset directory and broadcasts a
// reload fragment through the hub when something changes.
type LiveReloadModule struct {
	module.BaseModule

	publisher  pubsub.Publisher
	subscriber pubsub.Subscriber
	renderer   rendering.Renderer
	hub        *hub.Hub
	dir        string
}

// Dependencies holds the services that the LiveReloadModule requires.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Renderer   rendering.Renderer
	Hub        *hub.Hub
	Dir        string
}

// New creates a new instance of the LiveReloadModule.
func New(deps Dependencies) *LiveReloadModule {
	return &LiveReloadModule{
		publisher:  deps.Publisher,
		subscriber: deps.Subscriber,
		renderer:   deps.Renderer,
		hub:        deps.Hub,
		dir:        deps.Dir,
	}
}

// Name returns the module name.
func (m *LiveReloadModule) Name() string {
	return "livereload"
}

// Boot starts the filesystem watcher and the reload subscriber.
func (m *LiveReloadModule) Boot(ctx context.Context, grp *echo.Group, reg *registry.Registry) error {
	if err := m.subscriber.Subscribe(ctx, assets.TopicChanged, m.handle); err != nil {
		return err
	}

	watcher := assets.NewWatcher(m.dir, m.publisher)
	go func() {
		if err := watcher.Run(ctx); err != nil {
			slog.Error("Asset watcher stopped", "error", err)
		}
	}()

	return nil
}

func (m *LiveReloadModule) handle(ctx context.Context, msg pubsub.Message) error {
	html, err := m.renderer.RenderComponent(ctx, reloadFragment())
	if err != nil {
		return fmt.Errorf("render reload fragment: %w", err)
	}
	m.hub.Broadcast <- html
	return nil
}

// reloadFragment is appended to the body via an out-of-band swap; the
// script runs as soon as htmx inserts it.
func reloadFragment() g.Node {
	return Div(
		hx.SwapOOB("beforeend:body"),
		Script(g.Raw("window.location.reload()")),
	)
}
