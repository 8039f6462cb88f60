package model

import "time"

// Order status codes. The backend owns transitions; clients only read
// them and request the two user-driven ones (cancel) or, for admins,
// set the next code directly.
const (
	OrderStatusPending    = 0
	OrderStatusConfirmed  = 1
	OrderStatusShipping   = 2
	OrderStatusDelivered  = 3
	OrderStatusCancelled  = 4
	OrderStatusPaymentDue = 5
)

// Order represents a row in the orders table
type Order struct {
	OrderID       int64      `json:"orderid"`
	UserID        int64      `json:"userid"`
	Status        int        `json:"status"`
	Address       string     `json:"address"`
	ShippingCost  int64      `json:"shippingcost"`
	VoucherID     *int64     `json:"voucherid,omitempty"`
	Total         int64      `json:"total"`
	PaymentMethod string     `json:"paymentmethod"`
	CancelReason  string     `json:"cancelreason,omitempty"`
	OrderDate     *time.Time `json:"orderdate,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

// OrderLine is a purchased product detail snapshot
type OrderLine struct {
	OrderLineID     int64  `json:"orderlineid"`
	OrderID         int64  `json:"orderid"`
	ProductDetailID int64  `json:"productdetailid"`
	ProductName     string `json:"productname"`
	Quantity        int    `json:"quantity"`
	Price           int64  `json:"price"`
}

// NewOrder is the submission-time shape, before the backend assigns an id
type NewOrder struct {
	UserID        int64
	Address       string
	ShippingCost  int64
	VoucherID     *int64
	Total         int64
	PaymentMethod string
	Lines         []OrderLine
}
