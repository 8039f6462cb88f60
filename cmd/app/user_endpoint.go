package main

import (
	"net/http"
	"strconv"

	"PetStoreAPI/internal/middleware"
	"PetStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type updateProfileRequest struct {
	FullName string `json:"fullname"`
	Phone    string `json:"phone"`
}

type setRoleRequest struct {
	Role string `json:"role"`
}

func registerUserRoutes(g *echo.Group, us *services.UserService) {

	p := g.Group("/profile")
	p.Use(middleware.JWTMiddleware())

	p.GET("", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		profile, err := us.GetProfile(c.Request().Context(), cl.UserID)
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "account not found"})
		}
		return c.JSON(http.StatusOK, profile)
	})

	p.PUT("", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		req := new(updateProfileRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if err := us.UpdateProfile(c.Request().Context(), cl.UserID, req.FullName, req.Phone); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "updated"})
	})

	// PROTECTED — admin only account management
	admin := g.Group("/admin/users")
	admin.Use(middleware.JWTMiddleware())
	admin.Use(middleware.AdminOnly)

	admin.GET("", func(c echo.Context) error {
		list, err := us.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	admin.GET("/roles", func(c echo.Context) error {
		list, err := us.ListRoles(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	admin.PUT("/:id/role", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		req := new(setRoleRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if err := us.SetRole(c.Request().Context(), cl.UserID, userID, req.Role); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "updated"})
	})

	admin.POST("/:id/ban", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		if err := us.Ban(c.Request().Context(), cl.UserID, userID); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "banned"})
	})

	admin.POST("/:id/unban", func(c echo.Context) error {
		userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		if err := us.Unban(c.Request().Context(), userID); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "unbanned"})
	})
}
