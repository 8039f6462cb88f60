package model

import "time"

// Product represents a row in the products table
type Product struct {
	ProductID   int64      `json:"productid"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CategoryID  int64      `json:"categoryid"`
	BrandID     int64      `json:"brandid"`
	Image       string     `json:"image"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// ProductDetail is a purchasable variant row (color/size/weight combination)
type ProductDetail struct {
	ProductDetailID int64  `json:"productdetailid"`
	ProductID       int64  `json:"productid"`
	ColorID         int64  `json:"colorid"`
	SizeID          int64  `json:"sizeid"`
	WeightID        int64  `json:"weightid"`
	StatusID        int64  `json:"statusid"`
	Price           int64  `json:"price"`
	Stock           int    `json:"stock"`
	Image           string `json:"image"`
}

// ProductView is what the storefront listing exposes (joined with catalog names)
type ProductView struct {
	ProductID    int64  `json:"productid"`
	Name         string `json:"name"`
	CategoryName string `json:"categoryname"`
	BrandName    string `json:"brandname"`
	MinPrice     int64  `json:"minprice"`
	Image        string `json:"image"`
}

// ProductFilter narrows the storefront listing
type ProductFilter struct {
	CategoryID int64
	BrandID    int64
	PriceMin   int64
	PriceMax   int64
	Search     string
	Page       int
	PageSize   int
}
