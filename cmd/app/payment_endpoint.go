package main

import (
	"net/http"

	"PetStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

// registerPaymentRoutes exposes the gateway notification callback. It
// must stay public (no JWT): midtrans calls it server-to-server, and it
// expects HTTP 200 even for payloads we reject or it keeps retrying.
func registerPaymentRoutes(g *echo.Group, ps *services.PaymentService) {

	g.POST("/payments/notification", func(c echo.Context) error {
		var payload map[string]interface{}
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusOK, echo.Map{"status": "ignored", "reason": "invalid payload"})
		}

		if err := ps.HandleGatewayNotification(c.Request().Context(), payload); err != nil {
			return c.JSON(http.StatusOK, echo.Map{"status": "ignored", "reason": err.Error()})
		}

		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
}
