package server

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/devgenius/devgenius/internal/handlers"
	"github.com/devgenius/devgenius/internal/modules/dashboard"
	"github.com/devgenius/devgenius/internal/registry"
)

// RegisterRoutes runs the module Register phase, sets up the page routes
// against the services the modules published, and then boots the modules so
// they can register their own endpoints.
func (s *Server) RegisterRoutes() {
	for _, m := range s.modules {
		if err := m.Register(s.registry); err != nil {
			slog.Error("Failed to register module", "module", m.Name(), "error", err)
			os.Exit(1)
		}
	}

	// The dashboard module owns the status provider; page handlers resolve
	// it from the registry rather than holding their own reference.
	provider := registry.MustGet(s.registry, dashboard.KeyProvider)

	homeHandler := handlers.NewHomeHandler()
	dashboardHandler := handlers.NewDashboardHandler(provider)

	s.E.GET("/", homeHandler.HomeGet)
	s.E.GET("/about", handlers.AboutGet)
	s.E.GET("/dashboard", dashboardHandler.DashboardGet)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	// Paths outside the route table get a proper 404 page instead of an
	// empty body.
	s.E.RouteNotFound("/*", handlers.NotFound)

	for _, m := range s.modules {
		if err := m.Boot(s.ctx, s.E.Group(""), s.registry); err != nil {
			slog.Error("Failed to boot module", "module", m.Name(), "error", err)
			os.Exit(1)
		}
	}
}
