package main

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zapzocket/studio/internal/model"
	"github.com/zapzocket/studio/internal/price"
	"github.com/zapzocket/studio/internal/services"
)

func registerVendorRoutes(g *echo.Group, vs *services.VendorService, cs *services.CatalogService, fmtr *price.Formatter) {
	p := g.Group("/vendor")

	// SIGNUP
	p.POST("/signup", func(c echo.Context) error {
		req := new(model.VendorSignup)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		vendorID, err := vs.Signup(c.Request().Context(), *req)
		if err != nil {
			var vErr *services.ValidationError
			if errors.As(err, &vErr) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": vErr.Error()})
			}
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{
			"message":   "Vendor registered successfully",
			"vendor_id": vendorID,
		})
	})

	// SUBMIT item for sale
	p.POST("/items", func(c echo.Context) error {
		req := new(model.ItemSubmission)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		productID, err := vs.SubmitItem(c.Request().Context(), *req)
		if err != nil {
			var vErr *services.ValidationError
			if errors.As(err, &vErr) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": vErr.Error()})
			}
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{
			"message":    "Item submitted successfully",
			"product_id": productID,
		})
	})

	// DASHBOARD — the vendor's current listings
	p.GET("/dashboard", func(c echo.Context) error {
		products, err := cs.List(c.Request().Context(), "", "")
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"products": toProductViews(products, fmtr),
			"count":    len(products),
		})
	})
}
