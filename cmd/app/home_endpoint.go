package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zapzocket/studio/internal/model"
	"github.com/zapzocket/studio/internal/price"
	"github.com/zapzocket/studio/internal/services"
)

const topProductCount = 4

type homeView struct {
	TopProducts  []productView        `json:"top_products"`
	Categories   []model.CategoryInfo `json:"categories"`
	Articles     []model.Article      `json:"articles"`
	Testimonials []model.Testimonial  `json:"testimonials"`
	CartCount    int                  `json:"cart_count"`
}

func registerHomeRoutes(g *echo.Group, cs *services.CatalogService, as *services.ArticleService, counter interface{ ItemCount() int }, fmtr *price.Formatter) {

	g.GET("/home", func(c echo.Context) error {
		view := homeView{
			Categories:   cs.Categories(),
			Articles:     as.Latest(3),
			Testimonials: as.Testimonials(),
			CartCount:    counter.ItemCount(),
		}
		// a failed catalog fetch degrades the section, it does not
		// take down the page
		if top, err := cs.TopProducts(c.Request().Context(), topProductCount); err == nil {
			view.TopProducts = toProductViews(top, fmtr)
		} else {
			view.TopProducts = []productView{}
		}
		return c.JSON(http.StatusOK, view)
	})
}
