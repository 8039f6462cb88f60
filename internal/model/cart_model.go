package model

// CartLineItem is what the API exposes for a cart row (joined with the
// product detail and its variant attributes). LineTotal is derived,
// never stored.
type CartLineItem struct {
	CartItemID      int64  `json:"cartitemid"`
	ProductDetailID int64  `json:"productdetailid"`
	ProductName     string `json:"productname"`
	UnitPrice       int64  `json:"unitprice"`
	Quantity        int    `json:"quantity"`
	Color           string `json:"color"`
	Size            string `json:"size"`
	WeightGrams     int    `json:"weightgrams"`
	Image           string `json:"image"`
	LineTotal       int64  `json:"linetotal"`
}

// CartResponse is returned when calling GET /cart
type CartResponse struct {
	Items    []CartLineItem `json:"items"`
	Subtotal int64          `json:"subtotal"`
}
