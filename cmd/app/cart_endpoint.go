package main

import (
	"net/http"
	"strconv"

	"PetStoreAPI/internal/middleware"
	"PetStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type cartItemRequest struct {
	ProductDetailID int64 `json:"productdetailid"`
	Quantity        int   `json:"quantity"`
}

func registerCartRoutes(g *echo.Group, cs *services.CartService) {

	p := g.Group("/cart")
	p.Use(middleware.JWTMiddleware())

	p.GET("", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		resp, err := cs.Get(c.Request().Context(), cl.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, resp)
	})

	p.POST("/items", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		req := new(cartItemRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if err := cs.Add(c.Request().Context(), cl.UserID, req.ProductDetailID, req.Quantity); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, echo.Map{"message": "added"})
	})

	p.PUT("/items/:detailid", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		detailID, err := strconv.ParseInt(c.Param("detailid"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		req := new(cartItemRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if err := cs.Update(c.Request().Context(), cl.UserID, detailID, req.Quantity); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "updated"})
	})

	p.DELETE("/items/:detailid", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		detailID, err := strconv.ParseInt(c.Param("detailid"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		if err := cs.Remove(c.Request().Context(), cl.UserID, detailID); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "removed"})
	})

	p.DELETE("", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		if err := cs.Clear(c.Request().Context(), cl.UserID); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "cleared"})
	})
}
