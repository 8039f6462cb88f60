package main

import (
	"strconv"

	"PetStoreAPI/internal/middleware"
	"PetStoreAPI/internal/model"
	"PetStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type productRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  int64  `json:"categoryid"`
	BrandID     int64  `json:"brandid"`
	Image       string `json:"image"`
}

type productDetailRequest struct {
	ColorID  int64  `json:"colorid"`
	SizeID   int64  `json:"sizeid"`
	WeightID int64  `json:"weightid"`
	StatusID int64  `json:"statusid"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
	Image    string `json:"image"`
}

func registerProductRoutes(g *echo.Group, ps *services.ProductService) {

	// PUBLIC — storefront browse/filter
	g.GET("/products", func(c echo.Context) error {
		categoryID, _ := strconv.ParseInt(c.QueryParam("category"), 10, 64)
		brandID, _ := strconv.ParseInt(c.QueryParam("brand"), 10, 64)
		priceMin, _ := strconv.ParseInt(c.QueryParam("pricemin"), 10, 64)
		priceMax, _ := strconv.ParseInt(c.QueryParam("pricemax"), 10, 64)
		page, _ := strconv.Atoi(c.QueryParam("page"))
		pageSize, _ := strconv.Atoi(c.QueryParam("pagesize"))

		list, err := ps.List(c.Request().Context(), model.ProductFilter{
			CategoryID: categoryID,
			BrandID:    brandID,
			PriceMin:   priceMin,
			PriceMax:   priceMax,
			Search:     c.QueryParam("q"),
			Page:       page,
			PageSize:   pageSize,
		})
		if err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, list)
	})

	g.GET("/products/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(400, map[string]string{"error": "invalid id"})
		}
		p, err := ps.Get(c.Request().Context(), id)
		if err != nil {
			return c.JSON(404, map[string]string{"error": "product not found"})
		}
		return c.JSON(200, p)
	})

	g.GET("/products/:id/details", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(400, map[string]string{"error": "invalid id"})
		}
		list, err := ps.ListDetails(c.Request().Context(), id)
		if err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, list)
	})

	// PROTECTED — admin only write operations
	admin := g.Group("/products")
	admin.Use(middleware.JWTMiddleware())
	admin.Use(middleware.AdminOnly)

	admin.POST("", func(c echo.Context) error {
		req := new(productRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(400, map[string]string{"error": "invalid request"})
		}
		id, err := ps.Create(c.Request().Context(), model.Product{
			Name:        req.Name,
			Description: req.Description,
			CategoryID:  req.CategoryID,
			BrandID:     req.BrandID,
			Image:       req.Image,
		})
		if err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(201, map[string]interface{}{"productid": id})
	})

	admin.PUT("/:id", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		req := new(productRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(400, map[string]string{"error": "invalid request"})
		}
		err := ps.Update(c.Request().Context(), model.Product{
			ProductID:   id,
			Name:        req.Name,
			Description: req.Description,
			CategoryID:  req.CategoryID,
			BrandID:     req.BrandID,
			Image:       req.Image,
		})
		if err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, map[string]string{"message": "updated"})
	})

	admin.DELETE("/:id", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		if err := ps.Delete(c.Request().Context(), id); err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, map[string]string{"message": "deleted"})
	})

	admin.POST("/:id/details", func(c echo.Context) error {
		productID, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		req := new(productDetailRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(400, map[string]string{"error": "invalid request"})
		}
		id, err := ps.CreateDetail(c.Request().Context(), model.ProductDetail{
			ProductID: productID,
			ColorID:   req.ColorID,
			SizeID:    req.SizeID,
			WeightID:  req.WeightID,
			StatusID:  req.StatusID,
			Price:     req.Price,
			Stock:     req.Stock,
			Image:     req.Image,
		})
		if err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(201, map[string]interface{}{"productdetailid": id})
	})

	admin.PUT("/details/:detailid", func(c echo.Context) error {
		detailID, _ := strconv.ParseInt(c.Param("detailid"), 10, 64)
		req := new(productDetailRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(400, map[string]string{"error": "invalid request"})
		}
		err := ps.UpdateDetail(c.Request().Context(), model.ProductDetail{
			ProductDetailID: detailID,
			ColorID:         req.ColorID,
			SizeID:          req.SizeID,
			WeightID:        req.WeightID,
			StatusID:        req.StatusID,
			Price:           req.Price,
			Stock:           req.Stock,
			Image:           req.Image,
		})
		if err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, map[string]string{"message": "updated"})
	})

	admin.DELETE("/details/:detailid", func(c echo.Context) error {
		detailID, _ := strconv.ParseInt(c.Param("detailid"), 10, 64)
		if err := ps.DeleteDetail(c.Request().Context(), detailID); err != nil {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, map[string]string{"message": "deleted"})
	})
}
