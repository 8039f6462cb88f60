package model

// PricingSummary is the priced checkout. Invariant:
// FinalTotal = Subtotal + ShippingFee - DiscountAmount.
type PricingSummary struct {
	Subtotal       int64 `json:"subtotal"`
	ShippingFee    int64 `json:"shippingfee"`
	DiscountAmount int64 `json:"discountamount"`
	FinalTotal     int64 `json:"finaltotal"`
}

// SubmitState tracks a single submission attempt through the checkout
// pipeline. Terminal states are never retried automatically; the user
// re-triggers submission, which restarts from Validating.
type SubmitState string

const (
	SubmitStateIdle                SubmitState = "IDLE"
	SubmitStateValidating          SubmitState = "VALIDATING"
	SubmitStateEstimatingShipping  SubmitState = "ESTIMATING_SHIPPING"
	SubmitStateDecrementingVoucher SubmitState = "DECREMENTING_VOUCHER"
	SubmitStateSubmittingPayment   SubmitState = "SUBMITTING_PAYMENT"
	SubmitStateSucceeded           SubmitState = "SUCCEEDED"
	SubmitStateFailed              SubmitState = "FAILED"
)

func (s SubmitState) IsTerminal() bool {
	return s == SubmitStateSucceeded || s == SubmitStateFailed
}

func (s SubmitState) String() string {
	return string(s)
}

// SubmitRequest carries everything the order submitter needs for one attempt
type SubmitRequest struct {
	UserID        int64
	Address       AddressSelection
	PaymentMethod string
	VoucherID     *int64
	GatewayReturn string
}

// SubmitResult reports a finished attempt. RedirectURL is set only for
// gateway payments; the caller is expected to follow it after the order
// record exists.
type SubmitResult struct {
	State       SubmitState    `json:"state"`
	OrderID     int64          `json:"orderid"`
	Pricing     PricingSummary `json:"pricing"`
	RedirectURL string         `json:"redirecturl,omitempty"`
}

// Payment methods accepted by the order submitter
const (
	PaymentMethodCOD     = "COD"
	PaymentMethodGateway = "GATEWAY"
)
