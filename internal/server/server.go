package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/devgenius/devgenius/internal/app"
	"github.com/devgenius/devgenius/internal/assets"
	"github.com/devgenius/devgenius/internal/config"
	"github.com/devgenius/devgenius/internal/hub"
	"github.com/devgenius/devgenius/internal/logging"
	"github.com/devgenius/devgenius/internal/middleware"
	"github.com/devgenius/devgenius/internal/module"
	"github.com/devgenius/devgenius/internal/pubsub"
	"github.com/devgenius/devgenius/internal/registry"
	"github.com/devgenius/devgenius/internal/rendering"
	"github.com/devgenius/devgenius/internal/status"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Hub      *hub.Hub
	Bridge   *pubsub.WatermillBridge
	Renderer *rendering.UniversalRenderer

	registry *registry.Registry
	modules  []module.Module

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a new Server instance with all core services wired.
func New() *Server {
	logging.New()
	cfg := config.New()

	// Background services (hub, poller, watchers) all stop with this context.
	ctx, cancel := context.WithCancel(context.Background())

	h := hub.New()
	go h.Run(ctx)

	bridge := pubsub.NewWatermillBridge()
	renderer := rendering.NewUniversalRenderer()
	provider := status.NewStaticProvider()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.Logger)
	e.Renderer = renderer

	assetFS, err := assets.New(cfg)
	if err != nil {
		slog.Error("Failed to initialize static assets", "error", err)
		cancel()
		os.Exit(1)
	}
	e.GET("/static/*", echo.WrapHandler(http.StripPrefix("/static/", assets.Handler(assetFS))))

	reg := registry.New(cfg)
	modules := app.NewModules(app.Dependencies{
		Publisher:  bridge,
		Subscriber: bridge,
		Renderer:   renderer,
		Hub:        h,
		Provider:   provider,
		Cfg:        cfg,
	})

	return &Server{
		E:        e,
		Cfg:      cfg,
		Hub:      h,
		Bridge:   bridge,
		Renderer: renderer,
		registry: reg,
		modules:  modules,
		ctx:      ctx,
		cancel:   cancel,
	}
}
