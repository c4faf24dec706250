package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devgenius/devgenius/web/src/templates/layouts"
	"github.com/devgenius/devgenius/web/src/templates/pages"
)

// AboutGet renders the about page.
func AboutGet(c echo.Context) error {
	component := layouts.Base("About", pages.About())
	return c.Render(http.StatusOK, "", component)
}
