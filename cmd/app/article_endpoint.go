package main

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zapzocket/studio/internal/services"
)

func registerArticleRoutes(g *echo.Group, as *services.ArticleService) {

	g.GET("/articles", func(c echo.Context) error {
		return c.JSON(http.StatusOK, as.All())
	})

	g.GET("/articles/:slug", func(c echo.Context) error {
		article, err := as.BySlug(c.Param("slug"))
		if err != nil {
			if errors.Is(err, services.ErrArticleNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "article not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, article)
	})
}
