package main

import (
	"net/http"
	"strconv"

	"PetStoreAPI/internal/middleware"
	"PetStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

type orderStatusRequest struct {
	Status int `json:"status"`
}

func registerOrderRoutes(g *echo.Group, os *services.OrderService) {

	p := g.Group("/orders")
	p.Use(middleware.JWTMiddleware())

	p.GET("", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		list, err := os.GetMine(c.Request().Context(), cl.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	p.GET("/:id/lines", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		lines, err := os.GetLines(c.Request().Context(), orderID, cl.UserID, cl.Role == "admin")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, lines)
	})

	p.POST("/:id/cancel", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		req := new(cancelOrderRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if err := os.Cancel(c.Request().Context(), orderID, cl.UserID, req.Reason); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "cancelled"})
	})

	// PROTECTED — admin only back-office screens
	admin := g.Group("/admin/orders")
	admin.Use(middleware.JWTMiddleware())
	admin.Use(middleware.AdminOnly)

	admin.GET("", func(c echo.Context) error {
		list, err := os.ListAll(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	admin.PUT("/:id/status", func(c echo.Context) error {
		orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		req := new(orderStatusRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if err := os.UpdateStatus(c.Request().Context(), orderID, req.Status); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "updated"})
	})
}
