package model

import "time"

// Payment tracks a gateway payment attempt for an order. Status is
// Pending until the provider webhook settles or rejects it; COD orders
// never get a row here.
type Payment struct {
	PaymentID       int64      `json:"paymentid"`
	OrderID         int64      `json:"orderid"`
	Amount          int64      `json:"amount"`
	PaymentStatus   string     `json:"paymentstatus"`
	PaymentProvider *string    `json:"paymentprovider"`
	ProviderRef     *string    `json:"providerref"`
	ProviderPayload []byte     `json:"providerpayload,omitempty"`
	CreatedAt       time.Time  `json:"createdat"`
	PaidAt          *time.Time `json:"paidat,omitempty"`
}
