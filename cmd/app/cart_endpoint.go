package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zapzocket/studio/internal/cart"
	"github.com/zapzocket/studio/internal/model"
	"github.com/zapzocket/studio/internal/price"
)

type addCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func cartView(store *cart.Store, fmtr *price.Formatter) model.CartView {
	items := store.Items()
	view := model.CartView{Items: make([]model.CartLineView, 0, len(items))}
	for _, item := range items {
		sub := cart.Subtotal(item)
		view.Items = append(view.Items, model.CartLineView{
			CartItem:         item,
			Subtotal:         sub,
			UnitPriceDisplay: fmtr.ToDisplay(item.Price),
			SubtotalDisplay:  fmtr.ToDisplay(sub),
		})
	}
	view.ItemCount = store.ItemCount()
	view.Total = store.Total()
	view.TotalDisplay = fmtr.ToDisplay(view.Total)
	return view
}

func registerCartRoutes(g *echo.Group, store *cart.Store, fmtr *price.Formatter) {
	p := g.Group("/cart")

	// GET cart
	p.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, cartView(store, fmtr))
	})

	// ADD item (backend merges quantity for an existing product)
	p.POST("/items", func(c echo.Context) error {
		req := new(addCartItemRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := store.Add(c.Request().Context(), req.ProductID, req.Quantity); err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cartView(store, fmtr))
	})

	// SET quantity (server removes the line at quantity 0)
	p.PUT("/items/:id", func(c echo.Context) error {
		req := new(updateCartItemRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := store.SetQuantity(c.Request().Context(), c.Param("id"), req.Quantity); err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cartView(store, fmtr))
	})

	// REMOVE item
	p.DELETE("/items/:id", func(c echo.Context) error {
		if err := store.Remove(c.Request().Context(), c.Param("id")); err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cartView(store, fmtr))
	})

	// CLEAR cart
	p.DELETE("", func(c echo.Context) error {
		if err := store.Clear(c.Request().Context()); err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cartView(store, fmtr))
	})
}
