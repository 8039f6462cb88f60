package model

// Category groups products (e.g. food, toys, grooming)
type Category struct {
	CategoryID   int64  `json:"categoryid"`
	CategoryName string `json:"categoryname"`
}

// Brand is a product manufacturer
type Brand struct {
	BrandID   int64  `json:"brandid"`
	BrandName string `json:"brandname"`
}

// Size is a variant attribute (S, M, L, ...)
type Size struct {
	SizeID   int64  `json:"sizeid"`
	SizeName string `json:"sizename"`
}

// Color is a variant attribute
type Color struct {
	ColorID   int64  `json:"colorid"`
	ColorName string `json:"colorname"`
}

// Weight is a variant attribute, stored in grams
type Weight struct {
	WeightID int64 `json:"weightid"`
	Grams    int   `json:"grams"`
}

// InventoryStatus labels stock state of a product detail (in stock, out of stock, discontinued)
type InventoryStatus struct {
	StatusID   int64  `json:"statusid"`
	StatusName string `json:"statusname"`
}
