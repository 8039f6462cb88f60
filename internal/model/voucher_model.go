package model

import "time"

// Voucher represents a discount voucher row.
// Condition is the minimum cart subtotal (VND) required for the voucher
// to be offered. Quantity is the number of redemptions left.
type Voucher struct {
	VoucherID int64      `json:"voucherid"`
	Name      string     `json:"name"`
	Percents  int        `json:"percents"`
	Condition int64      `json:"condition"`
	Quantity  int        `json:"quantity"`
	StartDate time.Time  `json:"startdate"`
	EndDate   time.Time  `json:"enddate"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// EligibleVoucher is a voucher annotated for the checkout picker
type EligibleVoucher struct {
	Voucher
	RemainingDays int `json:"remainingdays"`
}
