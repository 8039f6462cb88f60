package main

import (
	"errors"
	"net/http"

	"PetStoreAPI/internal/middleware"
	"PetStoreAPI/internal/model"
	"PetStoreAPI/internal/services"
	"PetStoreAPI/internal/session"

	"github.com/labstack/echo/v4"
)

type applyVoucherRequest struct {
	VoucherID int64 `json:"voucherid"`
}

type submitRequest struct {
	PaymentMethod string `json:"paymentmethod"`
	ReturnURL     string `json:"returnurl"`
}

func registerCheckoutRoutes(g *echo.Group, chs *services.CheckoutService, vs *services.VoucherService, cs *services.CartService, sessions *session.Store) {

	p := g.Group("/checkout")
	p.Use(middleware.JWTMiddleware())

	// priced summary for the current session (address + voucher so far)
	p.GET("/quote", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		ctx := c.Request().Context()

		snap, err := sessions.Load(ctx, cl.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		pricing, err := chs.Quote(ctx, cl.UserID, snap.Address, snap.SelectedVoucherID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, pricing)
	})

	// vouchers the current cart qualifies for
	p.GET("/vouchers", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		ctx := c.Request().Context()

		cart, err := cs.Get(ctx, cl.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		list, err := vs.ListEligible(ctx, cart.Subtotal)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	// pick a voucher; it survives the address step via the session snapshot
	p.POST("/voucher", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		req := new(applyVoucherRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		ctx := c.Request().Context()
		if _, err := vs.Get(ctx, req.VoucherID); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		snap, err := sessions.Load(ctx, cl.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		snap.SelectedVoucherID = &req.VoucherID
		if err := sessions.Save(ctx, cl.UserID, snap); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		pricing, err := chs.Quote(ctx, cl.UserID, snap.Address, snap.SelectedVoucherID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, pricing)
	})

	// removing the voucher restores finalTotal = subtotal + shipping fee
	p.DELETE("/voucher", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		ctx := c.Request().Context()

		snap, err := sessions.Load(ctx, cl.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		snap.SelectedVoucherID = nil
		if err := sessions.Save(ctx, cl.UserID, snap); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		pricing, err := chs.Quote(ctx, cl.UserID, snap.Address, nil)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, pricing)
	})

	p.POST("/submit", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		req := new(submitRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		ctx := c.Request().Context()
		snap, err := sessions.Load(ctx, cl.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		result, err := chs.Submit(ctx, model.SubmitRequest{
			UserID:        cl.UserID,
			Address:       snap.Address,
			PaymentMethod: req.PaymentMethod,
			VoucherID:     snap.SelectedVoucherID,
			GatewayReturn: req.ReturnURL,
		})
		if err != nil {
			status := http.StatusBadGateway
			if errors.Is(err, services.ErrValidation) {
				status = http.StatusBadRequest
			}
			return c.JSON(status, echo.Map{
				"state": model.SubmitStateFailed,
				"error": err.Error(),
			})
		}

		// the snapshot is spent once the order exists
		if err := sessions.Clear(ctx, cl.UserID); err != nil {
			c.Logger().Warnf("session clear failed for user %d: %v", cl.UserID, err)
		}

		return c.JSON(http.StatusCreated, result)
	})
}
