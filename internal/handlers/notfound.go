package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devgenius/devgenius/web/src/templates/layouts"
	"github.com/devgenius/devgenius/web/src/templates/pages"
)

// NotFound renders the 404 page for any path outside the route table.
func NotFound(c echo.Context) error {
	component := layouts.Base("Not Found", pages.NotFound(c.Request().URL.Path))
	return c.Render(http.StatusNotFound, "", component)
}
