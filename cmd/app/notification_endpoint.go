package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zapzocket/studio/internal/notify"
)

func registerNotificationRoutes(g *echo.Group, center *notify.Center) {

	// the transient toast feed, newest first
	g.GET("/notifications", func(c echo.Context) error {
		return c.JSON(http.StatusOK, center.Recent())
	})
}
