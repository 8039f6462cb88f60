package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"PetStoreAPI/internal/model"

	"github.com/google/uuid"
)

// ErrValidation marks failures the user can fix by correcting input.
// Handlers surface these as blocking warnings; everything else is an
// integration failure.
var ErrValidation = errors.New("validation failed")

// Collaborators of the order submitter. The repositories and external
// clients satisfy these; tests swap in mocks.
type CartSource interface {
	GetItems(ctx context.Context, userID int64) ([]model.CartLineItem, int64, error)
	Clear(ctx context.Context, userID int64) error
}

type VoucherSource interface {
	GetByID(ctx context.Context, id int64) (*model.Voucher, error)
	Decrement(ctx context.Context, id int64) error
}

type OrderCreator interface {
	Create(ctx context.Context, o model.NewOrder) (int64, error)
}

type PaymentGateway interface {
	CreateRedirectSession(amount int64, externalRef, returnURL string) (string, error)
}

type PaymentRecorder interface {
	CreatePending(ctx context.Context, orderID, amount int64, provider, providerRef string, payload []byte) (int64, error)
}

// CheckoutService owns the checkout pricing and the order-submission
// pipeline. Steps are strictly sequenced with no rollback: a voucher
// decremented before a failed payment call stays consumed.
type CheckoutService struct {
	Cart     CartSource
	Vouchers VoucherSource
	Orders   OrderCreator
	Shipping *ShippingService
	Gateway  PaymentGateway
	Payments PaymentRecorder
}

func NewCheckoutService(
	cart CartSource,
	vouchers VoucherSource,
	orders OrderCreator,
	shipping *ShippingService,
	gateway PaymentGateway,
	payments PaymentRecorder,
) *CheckoutService {
	return &CheckoutService{
		Cart:     cart,
		Vouchers: vouchers,
		Orders:   orders,
		Shipping: shipping,
		Gateway:  gateway,
		Payments: payments,
	}
}

// NewPricingSummary derives the final total. This is the one place the
// pricing invariant lives.
func NewPricingSummary(subtotal, shippingFee, discount int64) model.PricingSummary {
	return model.PricingSummary{
		Subtotal:       subtotal,
		ShippingFee:    shippingFee,
		DiscountAmount: discount,
		FinalTotal:     subtotal + shippingFee - discount,
	}
}

// Quote prices the cart for display while the user is still filling in
// the address. The shipping fee uses the silent-degradation estimate:
// a provider failure shows fee 0 and never blocks the page.
func (s *CheckoutService) Quote(ctx context.Context, userID int64, sel model.AddressSelection, voucherID *int64) (model.PricingSummary, error) {
	_, subtotal, err := s.Cart.GetItems(ctx, userID)
	if err != nil {
		return model.PricingSummary{}, err
	}

	var fee int64
	if sel.DistrictID != 0 && sel.WardCode != "" {
		fee = s.Shipping.QuoteForDisplay(ctx, sel.DistrictID, sel.WardCode)
	}

	var discount int64
	if voucherID != nil {
		v, err := s.Vouchers.GetByID(ctx, *voucherID)
		if err == nil && VoucherSelectable(*v, subtotal, time.Now()) {
			discount = ComputeDiscount(*v, subtotal, fee)
		}
	}

	return NewPricingSummary(subtotal, fee, discount), nil
}

func validateSubmission(req model.SubmitRequest) error {
	switch {
	case req.Address.RecipientName == "":
		return fmt.Errorf("%w: recipient name is required", ErrValidation)
	case req.Address.Phone == "":
		return fmt.Errorf("%w: phone is required", ErrValidation)
	case req.Address.StreetLine == "":
		return fmt.Errorf("%w: street address is required", ErrValidation)
	case req.Address.ProvinceName == "":
		return fmt.Errorf("%w: province is required", ErrValidation)
	case req.Address.DistrictID == 0:
		return fmt.Errorf("%w: district is required", ErrValidation)
	case req.Address.WardCode == "":
		return fmt.Errorf("%w: ward is required", ErrValidation)
	case req.PaymentMethod != model.PaymentMethodCOD && req.PaymentMethod != model.PaymentMethodGateway:
		return fmt.Errorf("%w: payment method is required", ErrValidation)
	}
	return nil
}

// Submit runs one submission attempt through the pipeline:
// Validating -> EstimatingShipping -> DecrementingVoucher (when a
// voucher is applied) -> SubmittingPayment. Terminal failures are not
// retried; the user re-triggers and the attempt restarts from
// Validating.
func (s *CheckoutService) Submit(ctx context.Context, req model.SubmitRequest) (*model.SubmitResult, error) {
	state := model.SubmitStateValidating

	if err := validateSubmission(req); err != nil {
		return nil, s.fail(state, err)
	}

	items, subtotal, err := s.Cart.GetItems(ctx, req.UserID)
	if err != nil {
		return nil, s.fail(state, fmt.Errorf("load cart: %w", err))
	}
	if len(items) == 0 {
		return nil, s.fail(state, fmt.Errorf("%w: cart is empty", ErrValidation))
	}

	// Unlike the display estimate, a failed quote here is fatal.
	state = model.SubmitStateEstimatingShipping
	fee, err := s.Shipping.QuoteForSubmission(ctx, req.Address.DistrictID, req.Address.WardCode)
	if err != nil {
		return nil, s.fail(state, err)
	}

	var discount int64
	if req.VoucherID != nil {
		v, err := s.Vouchers.GetByID(ctx, *req.VoucherID)
		if err != nil {
			return nil, s.fail(state, fmt.Errorf("load voucher: %w", err))
		}
		if !VoucherSelectable(*v, subtotal, time.Now()) {
			return nil, s.fail(state, fmt.Errorf("%w: voucher is not applicable to this order", ErrValidation))
		}
		discount = ComputeDiscount(*v, subtotal, fee)

		// Consumption happens now, before any payment action. If a
		// later step fails the redemption is not restored.
		state = model.SubmitStateDecrementingVoucher
		if err := s.Vouchers.Decrement(ctx, *req.VoucherID); err != nil {
			return nil, s.fail(state, fmt.Errorf("consume voucher: %w", err))
		}
	}

	pricing := NewPricingSummary(subtotal, fee, discount)

	order := model.NewOrder{
		UserID:        req.UserID,
		Address:       req.Address.Formatted(),
		ShippingCost:  fee,
		VoucherID:     req.VoucherID,
		Total:         pricing.FinalTotal,
		PaymentMethod: req.PaymentMethod,
		Lines:         orderLines(items),
	}

	state = model.SubmitStateSubmittingPayment
	switch req.PaymentMethod {
	case model.PaymentMethodCOD:
		orderID, err := s.Orders.Create(ctx, order)
		if err != nil {
			return nil, s.fail(state, fmt.Errorf("create order: %w", err))
		}
		s.clearCart(ctx, req.UserID)
		return &model.SubmitResult{
			State:   model.SubmitStateSucceeded,
			OrderID: orderID,
			Pricing: pricing,
		}, nil

	default: // GATEWAY
		// Payment session first; the order record must never exist if
		// the gateway call failed.
		externalRef := fmt.Sprintf("ORDER-%s", uuid.NewString())
		redirectURL, err := s.Gateway.CreateRedirectSession(pricing.FinalTotal, externalRef, req.GatewayReturn)
		if err != nil {
			return nil, s.fail(state, fmt.Errorf("payment session: %w", err))
		}

		// The order is recorded before the user has actually paid at
		// the gateway; the webhook settles it later.
		orderID, err := s.Orders.Create(ctx, order)
		if err != nil {
			return nil, s.fail(state, fmt.Errorf("create order: %w", err))
		}

		if _, err := s.Payments.CreatePending(ctx, orderID, pricing.FinalTotal, "midtrans", externalRef, nil); err != nil {
			return nil, s.fail(state, fmt.Errorf("record pending payment: %w", err))
		}

		s.clearCart(ctx, req.UserID)
		return &model.SubmitResult{
			State:       model.SubmitStateSucceeded,
			OrderID:     orderID,
			Pricing:     pricing,
			RedirectURL: redirectURL,
		}, nil
	}
}

func (s *CheckoutService) fail(state model.SubmitState, err error) error {
	log.Printf("checkout submit failed at %s: %v", state, err)
	return err
}

// clearCart runs after the order exists; a failure here is logged but
// does not undo the submission.
func (s *CheckoutService) clearCart(ctx context.Context, userID int64) {
	if err := s.Cart.Clear(ctx, userID); err != nil {
		log.Printf("cart clear after checkout failed for user %d: %v", userID, err)
	}
}

func orderLines(items []model.CartLineItem) []model.OrderLine {
	lines := make([]model.OrderLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, model.OrderLine{
			ProductDetailID: it.ProductDetailID,
			ProductName:     it.ProductName,
			Quantity:        it.Quantity,
			Price:           it.UnitPrice,
		})
	}
	return lines
}
