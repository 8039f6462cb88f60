package main

import (
	"net/http"
	"strconv"

	"PetStoreAPI/internal/middleware"
	"PetStoreAPI/internal/services"
	"PetStoreAPI/internal/session"

	"github.com/labstack/echo/v4"
)

type selectProvinceRequest struct {
	ProvinceID   int64  `json:"provinceid"`
	ProvinceName string `json:"provincename"`
}

type selectDistrictRequest struct {
	DistrictID   int64  `json:"districtid"`
	DistrictName string `json:"districtname"`
}

type selectWardRequest struct {
	WardCode string `json:"wardcode"`
	WardName string `json:"wardname"`
}

type recipientRequest struct {
	RecipientName string `json:"recipientname"`
	Phone         string `json:"phone"`
	StreetLine    string `json:"streetline"`
}

// registerLocationRoutes drives the cascading address selection. The
// in-progress selection lives in the checkout session snapshot, so the
// cascade invariant holds across requests.
func registerLocationRoutes(g *echo.Group, ls *services.LocationService, ss *services.ShippingService, sessions *session.Store) {

	l := g.Group("/location")
	l.Use(middleware.JWTMiddleware())

	l.GET("/provinces", func(c echo.Context) error {
		list, err := ls.Provinces(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	l.POST("/province", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		req := new(selectProvinceRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		ctx := c.Request().Context()
		snap, err := sessions.Load(ctx, cl.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		sel, districts := ls.SelectProvince(ctx, snap.Address, req.ProvinceID, req.ProvinceName)
		snap.Address = sel
		if err := sessions.Save(ctx, cl.UserID, snap); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		return c.JSON(http.StatusOK, echo.Map{
			"address":   sel,
			"districts": districts,
		})
	})

	l.POST("/district", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		req := new(selectDistrictRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		ctx := c.Request().Context()
		snap, err := sessions.Load(ctx, cl.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		sel, wards := ls.SelectDistrict(ctx, snap.Address, req.DistrictID, req.DistrictName)
		snap.Address = sel
		if err := sessions.Save(ctx, cl.UserID, snap); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		// fee recomputes reactively; failure shows 0, never blocks
		var fee int64
		if sel.DistrictID != 0 && sel.WardCode != "" {
			fee = ss.QuoteForDisplay(ctx, sel.DistrictID, sel.WardCode)
		}

		return c.JSON(http.StatusOK, echo.Map{
			"address":     sel,
			"wards":       wards,
			"shippingfee": fee,
		})
	})

	l.POST("/ward", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		req := new(selectWardRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		ctx := c.Request().Context()
		snap, err := sessions.Load(ctx, cl.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		sel := ls.SelectWard(snap.Address, req.WardCode, req.WardName)
		snap.Address = sel
		if err := sessions.Save(ctx, cl.UserID, snap); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		fee := ss.QuoteForDisplay(ctx, sel.DistrictID, sel.WardCode)

		return c.JSON(http.StatusOK, echo.Map{
			"address":     sel,
			"shippingfee": fee,
		})
	})

	// recipient name / phone / street get presence checks only at
	// submission; here they are stored as typed
	l.POST("/recipient", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		req := new(recipientRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		ctx := c.Request().Context()
		snap, err := sessions.Load(ctx, cl.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		snap.Address.RecipientName = req.RecipientName
		snap.Address.Phone = req.Phone
		snap.Address.StreetLine = req.StreetLine
		if err := sessions.Save(ctx, cl.UserID, snap); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		return c.JSON(http.StatusOK, echo.Map{"address": snap.Address})
	})

	l.GET("/fee", func(c echo.Context) error {
		districtID, _ := strconv.ParseInt(c.QueryParam("districtid"), 10, 64)
		wardCode := c.QueryParam("wardcode")
		if districtID == 0 || wardCode == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "districtid and wardcode are required"})
		}
		fee := ss.QuoteForDisplay(c.Request().Context(), districtID, wardCode)
		return c.JSON(http.StatusOK, echo.Map{"shippingfee": fee})
	})
}
