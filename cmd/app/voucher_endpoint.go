package main

import (
	"strconv"
	"time"

	"PetStoreAPI/internal/middleware"
	"PetStoreAPI/internal/model"
	"PetStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type voucherRequest struct {
	Name      string    `json:"name"`
	Percents  int       `json:"percents"`
	Condition int64     `json:"condition"`
	Quantity  int       `json:"quantity"`
	StartDate time.Time `json:"startdate"`
	EndDate   time.Time `json:"enddate"`
}

func registerVoucherRoutes(g *echo.Group, vs *services.VoucherService) {

	// PUBLIC — list vouchers (the storefront shows the catalog;
	// eligibility filtering happens under /checkout/vouchers)
	g.GET("/vouchers", func(c echo.Context) error {
		list, err := vs.List(c.Request().Context())
		if err != nil {
			return c.JSON(500, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, list)
	})

	g.GET("/vouchers/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(400, map[string]string{"error": "invalid id"})
		}
		v, err := vs.Get(c.Request().Context(), id)
		if err != nil {
			return c.JSON(404, map[string]string{"error": "voucher not found"})
		}
		return c.JSON(200, v)
	})

	// PROTECTED — admin only write operations
	admin := g.Group("/vouchers")
	admin.Use(middleware.JWTMiddleware())
	admin.Use(middleware.AdminOnly)

	admin.POST("", func(c echo.Context) error {
		req := new(voucherRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(400, map[string]string{"error": "invalid request"})
		}
		id, err := vs.Create(c.Request().Context(), model.Voucher{
			Name:      req.Name,
			Percents:  req.Percents,
			Condition: req.Condition,
			Quantity:  req.Quantity,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		})
		if err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(201, map[string]interface{}{"voucherid": id})
	})

	admin.PUT("/:id", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		req := new(voucherRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(400, map[string]string{"error": "invalid request"})
		}
		err := vs.Update(c.Request().Context(), model.Voucher{
			VoucherID: id,
			Name:      req.Name,
			Percents:  req.Percents,
			Condition: req.Condition,
			Quantity:  req.Quantity,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		})
		if err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, map[string]string{"message": "updated"})
	})

	admin.DELETE("/:id", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		if err := vs.Delete(c.Request().Context(), id); err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, map[string]string{"message": "deleted"})
	})
}
