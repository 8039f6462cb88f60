package main

import (
	"context"
	"strconv"

	"PetStoreAPI/internal/middleware"
	"PetStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type nameRequest struct {
	Name string `json:"name"`
}

type weightRequest struct {
	Grams int `json:"grams"`
}

// registerCatalogRoutes wires the six lookup tables. Reads are public
// so the storefront filters can populate; writes are admin only.
func registerCatalogRoutes(g *echo.Group, cs *services.CatalogService) {

	registerLookup(g, "/categories", cs.ListCategories, cs.CreateCategory, cs.UpdateCategory, cs.DeleteCategory)
	registerLookup(g, "/brands", cs.ListBrands, cs.CreateBrand, cs.UpdateBrand, cs.DeleteBrand)
	registerLookup(g, "/sizes", cs.ListSizes, cs.CreateSize, cs.UpdateSize, cs.DeleteSize)
	registerLookup(g, "/colors", cs.ListColors, cs.CreateColor, cs.UpdateColor, cs.DeleteColor)
	registerLookup(g, "/inventorystatuses", cs.ListInventoryStatuses, cs.CreateInventoryStatus, cs.UpdateInventoryStatus, cs.DeleteInventoryStatus)

	// weights take grams instead of a name, so they get their own handlers
	g.GET("/weights", func(c echo.Context) error {
		list, err := cs.ListWeights(c.Request().Context())
		if err != nil {
			return c.JSON(500, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, list)
	})

	admin := g.Group("/weights")
	admin.Use(middleware.JWTMiddleware())
	admin.Use(middleware.AdminOnly)

	admin.POST("", func(c echo.Context) error {
		req := new(weightRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(400, map[string]string{"error": "invalid request"})
		}
		id, err := cs.CreateWeight(c.Request().Context(), req.Grams)
		if err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(201, map[string]interface{}{"id": id})
	})

	admin.PUT("/:id", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		req := new(weightRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(400, map[string]string{"error": "invalid request"})
		}
		if err := cs.UpdateWeight(c.Request().Context(), id, req.Grams); err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, map[string]string{"message": "updated"})
	})

	admin.DELETE("/:id", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		if err := cs.DeleteWeight(c.Request().Context(), id); err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, map[string]string{"message": "deleted"})
	})
}

// registerLookup stamps out the list/create/update/delete routes shared
// by the name-keyed lookup tables.
func registerLookup[T any](
	g *echo.Group,
	path string,
	list func(ctx context.Context) ([]T, error),
	create func(ctx context.Context, name string) (int64, error),
	update func(ctx context.Context, id int64, name string) error,
	remove func(ctx context.Context, id int64) error,
) {
	g.GET(path, func(c echo.Context) error {
		items, err := list(c.Request().Context())
		if err != nil {
			return c.JSON(500, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, items)
	})

	admin := g.Group(path)
	admin.Use(middleware.JWTMiddleware())
	admin.Use(middleware.AdminOnly)

	admin.POST("", func(c echo.Context) error {
		req := new(nameRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(400, map[string]string{"error": "invalid request"})
		}
		id, err := create(c.Request().Context(), req.Name)
		if err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(201, map[string]interface{}{"id": id})
	})

	admin.PUT("/:id", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		req := new(nameRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(400, map[string]string{"error": "invalid request"})
		}
		if err := update(c.Request().Context(), id, req.Name); err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, map[string]string{"message": "updated"})
	})

	admin.DELETE("/:id", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		if err := remove(c.Request().Context(), id); err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, map[string]string{"message": "deleted"})
	})
}
