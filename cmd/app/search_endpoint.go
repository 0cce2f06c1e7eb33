package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zapzocket/studio/internal/search"
)

func registerSearchRoutes(g *echo.Group, coord *search.Coordinator) {

	// GET /search?q= — runs the product search and the vendor
	// recommendation independently; either side may fail without
	// touching the other.
	g.GET("/search", func(c echo.Context) error {
		query := c.QueryParam("q")
		if query == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Search query 'q' parameter is required"})
		}
		view := coord.Run(c.Request().Context(), query)
		return c.JSON(http.StatusOK, view)
	})
}
