package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devgenius/devgenius/internal/middleware"
	"github.com/devgenius/devgenius/internal/status"
	"github.com/devgenius/devgenius/web/src/templates/layouts"
	"github.com/devgenius/devgenius/web/src/templates/pages"
)

// DashboardHandler handles requests for the status dashboard page.
type DashboardHandler struct {
	provider status.Provider
}

// NewDashboardHandler creates a new DashboardHandler with its telemetry source.
func NewDashboardHandler(provider status.Provider) *DashboardHandler {
	return &DashboardHandler{provider: provider}
}

// DashboardGet renders the dashboard with the current snapshot. When the
// provider fails, the page falls back to the documented demo figures rather
// than erroring.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	snapshot, err := h.provider.Current(c.Request().Context())
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Status provider failed, rendering fallback snapshot", "error", err)
		snapshot = status.Fallback()
	}

	component := layouts.Base("Dashboard", pages.Dashboard(snapshot))
	return c.Render(http.StatusOK, "", component)
}
