package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devgenius/devgenius/web/src/templates/layouts"
	"github.com/devgenius/devgenius/web/src/templates/pages"
)

// HomeHandler handles requests for the home page.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// HomeGet handles the GET request for the home page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	component := layouts.Base("Home", pages.Home())
	return c.Render(http.StatusOK, "", component)
}
