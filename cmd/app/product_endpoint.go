package main

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zapzocket/studio/internal/model"
	"github.com/zapzocket/studio/internal/price"
	"github.com/zapzocket/studio/internal/services"
)

type addCommentRequest struct {
	User   string `json:"user"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

type productView struct {
	model.Product
	PriceDisplay string `json:"price_display"`
}

func toProductViews(products []model.Product, fmtr *price.Formatter) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, productView{Product: p, PriceDisplay: fmtr.ToDisplay(p.Price)})
	}
	return views
}

func registerProductRoutes(g *echo.Group, cs *services.CatalogService, fmtr *price.Formatter) {

	// PUBLIC — partner product list with category/name filters
	g.GET("/products", func(c echo.Context) error {
		products, err := cs.List(c.Request().Context(), c.QueryParam("category"), c.QueryParam("q"))
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, toProductViews(products, fmtr))
	})

	// PUBLIC — product page
	g.GET("/products/:id", func(c echo.Context) error {
		product, err := cs.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, services.ErrProductNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "product not found"})
			}
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, productView{Product: product, PriceDisplay: fmtr.ToDisplay(product.Price)})
	})

	// PUBLIC — leave a review
	g.POST("/products/:id/comments", func(c echo.Context) error {
		req := new(addCommentRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		comment, err := cs.AddComment(c.Param("id"), req.User, req.Text, req.Rating)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, comment)
	})
}
