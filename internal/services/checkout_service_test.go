package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"PetStoreAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCart struct {
	items      []model.CartLineItem
	subtotal   int64
	getErr     error
	getCalls   int
	clearCalls int
	clearErr   error
}

func (m *mockCart) GetItems(ctx context.Context, userID int64) ([]model.CartLineItem, int64, error) {
	m.getCalls++
	return m.items, m.subtotal, m.getErr
}

func (m *mockCart) Clear(ctx context.Context, userID int64) error {
	m.clearCalls++
	return m.clearErr
}

type mockVouchers struct {
	voucher        *model.Voucher
	getErr         error
	decrementErr   error
	decrementCalls int
}

func (m *mockVouchers) GetByID(ctx context.Context, id int64) (*model.Voucher, error) {
	return m.voucher, m.getErr
}

func (m *mockVouchers) Decrement(ctx context.Context, id int64) error {
	m.decrementCalls++
	return m.decrementErr
}

type mockOrders struct {
	orderID     int64
	err         error
	createCalls int
	lastOrder   model.NewOrder
}

func (m *mockOrders) Create(ctx context.Context, o model.NewOrder) (int64, error) {
	m.createCalls++
	m.lastOrder = o
	return m.orderID, m.err
}

type mockGateway struct {
	redirectURL string
	err         error
	calls       int
	lastAmount  int64
}

func (m *mockGateway) CreateRedirectSession(amount int64, externalRef, returnURL string) (string, error) {
	m.calls++
	m.lastAmount = amount
	return m.redirectURL, m.err
}

type mockPayments struct {
	err       error
	calls     int
	lastRef   string
	lastOrder int64
}

func (m *mockPayments) CreatePending(ctx context.Context, orderID, amount int64, provider, providerRef string, payload []byte) (int64, error) {
	m.calls++
	m.lastOrder = orderID
	m.lastRef = providerRef
	return 1, m.err
}

type checkoutFixture struct {
	cart     *mockCart
	vouchers *mockVouchers
	orders   *mockOrders
	gateway  *mockGateway
	payments *mockPayments
	quoter   *mockFeeQuoter
	svc      *CheckoutService
}

func newCheckoutFixture() *checkoutFixture {
	f := &checkoutFixture{
		cart: &mockCart{
			items: []model.CartLineItem{
				{ProductDetailID: 7, ProductName: "Royal Canin 2kg", UnitPrice: 250_000, Quantity: 2},
			},
			subtotal: 500_000,
		},
		vouchers: &mockVouchers{},
		orders:   &mockOrders{orderID: 42},
		gateway:  &mockGateway{redirectURL: "https://app.sandbox.midtrans.com/snap/v3/redirection/abc"},
		payments: &mockPayments{},
		quoter:   &mockFeeQuoter{fee: 30_000},
	}
	f.svc = NewCheckoutService(f.cart, f.vouchers, f.orders, NewShippingService(f.quoter), f.gateway, f.payments)
	return f
}

func validSubmitRequest() model.SubmitRequest {
	return model.SubmitRequest{
		UserID: 9,
		Address: model.AddressSelection{
			RecipientName: "Nguyen Van A",
			Phone:         "0901234567",
			StreetLine:    "12 Le Loi",
			ProvinceID:    202,
			ProvinceName:  "Ho Chi Minh",
			DistrictID:    11,
			DistrictName:  "Quan 3",
			WardCode:      "W-9",
			WardName:      "Phuong Ben Nghe",
		},
		PaymentMethod: model.PaymentMethodCOD,
	}
}

func activeVoucher() *model.Voucher {
	return &model.Voucher{
		VoucherID: 3,
		Name:      "summer sale",
		Percents:  10,
		Condition: 400_000,
		Quantity:  5,
		StartDate: time.Now().Add(-24 * time.Hour),
		EndDate:   time.Now().Add(30 * 24 * time.Hour),
	}
}

func TestSubmitRejectsIncompleteAddress(t *testing.T) {
	cases := map[string]func(*model.SubmitRequest){
		"missing recipient": func(r *model.SubmitRequest) { r.Address.RecipientName = "" },
		"missing phone":     func(r *model.SubmitRequest) { r.Address.Phone = "" },
		"missing street":    func(r *model.SubmitRequest) { r.Address.StreetLine = "" },
		"missing province":  func(r *model.SubmitRequest) { r.Address.ProvinceName = "" },
		"missing district":  func(r *model.SubmitRequest) { r.Address.DistrictID = 0 },
		"missing ward":      func(r *model.SubmitRequest) { r.Address.WardCode = "" },
		"no payment method": func(r *model.SubmitRequest) { r.PaymentMethod = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := newCheckoutFixture()
			req := validSubmitRequest()
			mutate(&req)

			_, err := f.svc.Submit(context.Background(), req)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)

			// validation fails before any collaborator is touched
			assert.Zero(t, f.cart.getCalls)
			assert.Zero(t, f.orders.createCalls)
			assert.Zero(t, f.gateway.calls)
			assert.Zero(t, f.vouchers.decrementCalls)
		})
	}
}

func TestSubmitRejectsEmptyCart(t *testing.T) {
	f := newCheckoutFixture()
	f.cart.items = nil
	f.cart.subtotal = 0

	_, err := f.svc.Submit(context.Background(), validSubmitRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 1, f.cart.getCalls)
	assert.Zero(t, f.orders.createCalls)
	assert.Zero(t, f.gateway.calls)
}

func TestSubmitCOD(t *testing.T) {
	f := newCheckoutFixture()

	result, err := f.svc.Submit(context.Background(), validSubmitRequest())

	require.NoError(t, err)
	assert.Equal(t, model.SubmitStateSucceeded, result.State)
	assert.Equal(t, int64(42), result.OrderID)
	assert.Equal(t, int64(530_000), result.Pricing.FinalTotal)

	// COD means exactly one order and no gateway involvement
	assert.Equal(t, 1, f.orders.createCalls)
	assert.Zero(t, f.gateway.calls)
	assert.Zero(t, f.payments.calls)
	assert.Equal(t, 1, f.cart.clearCalls)

	assert.Equal(t, model.PaymentMethodCOD, f.orders.lastOrder.PaymentMethod)
	assert.Equal(t, int64(30_000), f.orders.lastOrder.ShippingCost)
	assert.Len(t, f.orders.lastOrder.Lines, 1)
	assert.Equal(t, "12 Le Loi, Phuong Ben Nghe, Quan 3, Ho Chi Minh", f.orders.lastOrder.Address)
}

func TestSubmitCODWithVoucher(t *testing.T) {
	f := newCheckoutFixture()
	f.vouchers.voucher = activeVoucher()

	req := validSubmitRequest()
	voucherID := f.vouchers.voucher.VoucherID
	req.VoucherID = &voucherID

	result, err := f.svc.Submit(context.Background(), req)

	require.NoError(t, err)
	// 10% of (500,000 + 30,000) off
	assert.Equal(t, int64(53_000), result.Pricing.DiscountAmount)
	assert.Equal(t, int64(477_000), result.Pricing.FinalTotal)
	assert.Equal(t, 1, f.vouchers.decrementCalls)
	assert.Equal(t, int64(477_000), f.orders.lastOrder.Total)
}

func TestSubmitRejectsIneligibleVoucher(t *testing.T) {
	f := newCheckoutFixture()
	v := activeVoucher()
	v.Condition = 600_000
	f.vouchers.voucher = v

	req := validSubmitRequest()
	req.VoucherID = &v.VoucherID

	_, err := f.svc.Submit(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, f.vouchers.decrementCalls)
	assert.Zero(t, f.orders.createCalls)
}

func TestSubmitAbortsOnShippingFailure(t *testing.T) {
	f := newCheckoutFixture()
	f.quoter.err = errors.New("ghn down")
	f.vouchers.voucher = activeVoucher()

	req := validSubmitRequest()
	req.VoucherID = &f.vouchers.voucher.VoucherID

	_, err := f.svc.Submit(context.Background(), req)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)
	// the quote fails before the voucher is consumed
	assert.Zero(t, f.vouchers.decrementCalls)
	assert.Zero(t, f.orders.createCalls)
	assert.Zero(t, f.cart.clearCalls)
}

func TestSubmitAbortsOnVoucherDecrementFailure(t *testing.T) {
	f := newCheckoutFixture()
	f.vouchers.voucher = activeVoucher()
	f.vouchers.decrementErr = errors.New("voucher exhausted")

	req := validSubmitRequest()
	req.VoucherID = &f.vouchers.voucher.VoucherID

	_, err := f.svc.Submit(context.Background(), req)

	require.Error(t, err)
	assert.Zero(t, f.orders.createCalls)
	assert.Zero(t, f.gateway.calls)
}

func TestSubmitGateway(t *testing.T) {
	f := newCheckoutFixture()

	req := validSubmitRequest()
	req.PaymentMethod = model.PaymentMethodGateway
	req.GatewayReturn = "https://shop.example/checkout/done"

	result, err := f.svc.Submit(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, model.SubmitStateSucceeded, result.State)
	assert.Equal(t, f.gateway.redirectURL, result.RedirectURL)

	assert.Equal(t, 1, f.gateway.calls)
	assert.Equal(t, int64(530_000), f.gateway.lastAmount)
	assert.Equal(t, 1, f.orders.createCalls)
	assert.Equal(t, 1, f.payments.calls)
	assert.Equal(t, int64(42), f.payments.lastOrder)
	assert.Contains(t, f.payments.lastRef, "ORDER-")
	assert.Equal(t, 1, f.cart.clearCalls)
}

func TestSubmitGatewayFailureCreatesNoOrder(t *testing.T) {
	f := newCheckoutFixture()
	f.gateway.err = errors.New("snap unavailable")

	req := validSubmitRequest()
	req.PaymentMethod = model.PaymentMethodGateway

	_, err := f.svc.Submit(context.Background(), req)

	require.Error(t, err)
	assert.Zero(t, f.orders.createCalls)
	assert.Zero(t, f.payments.calls)
	assert.Zero(t, f.cart.clearCalls)
}

func TestSubmitGatewayFailureKeepsVoucherConsumed(t *testing.T) {
	f := newCheckoutFixture()
	f.vouchers.voucher = activeVoucher()
	f.gateway.err = errors.New("snap unavailable")

	req := validSubmitRequest()
	req.PaymentMethod = model.PaymentMethodGateway
	req.VoucherID = &f.vouchers.voucher.VoucherID

	_, err := f.svc.Submit(context.Background(), req)

	require.Error(t, err)
	// the redemption is not restored after a later failure
	assert.Equal(t, 1, f.vouchers.decrementCalls)
	assert.Zero(t, f.orders.createCalls)
}

func TestSubmitClearFailureDoesNotUndoOrder(t *testing.T) {
	f := newCheckoutFixture()
	f.cart.clearErr = errors.New("redis down")

	result, err := f.svc.Submit(context.Background(), validSubmitRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), result.OrderID)
	assert.Equal(t, 1, f.cart.clearCalls)
}

func TestQuoteDegradesShippingSilently(t *testing.T) {
	f := newCheckoutFixture()
	f.quoter.err = errors.New("ghn down")

	pricing, err := f.svc.Quote(context.Background(), 9, validSubmitRequest().Address, nil)

	require.NoError(t, err)
	assert.Zero(t, pricing.ShippingFee)
	assert.Equal(t, int64(500_000), pricing.FinalTotal)
}

func TestQuoteSkipsFeeWithoutFullAddress(t *testing.T) {
	f := newCheckoutFixture()

	pricing, err := f.svc.Quote(context.Background(), 9, model.AddressSelection{}, nil)

	require.NoError(t, err)
	assert.Zero(t, f.quoter.lastGrams)
	assert.Equal(t, int64(500_000), pricing.FinalTotal)
}

func TestQuoteVoucherRemovalRestoresTotal(t *testing.T) {
	f := newCheckoutFixture()
	f.vouchers.voucher = activeVoucher()
	addr := validSubmitRequest().Address

	withVoucher, err := f.svc.Quote(context.Background(), 9, addr, &f.vouchers.voucher.VoucherID)
	require.NoError(t, err)
	assert.Equal(t, int64(477_000), withVoucher.FinalTotal)

	removed, err := f.svc.Quote(context.Background(), 9, addr, nil)
	require.NoError(t, err)
	assert.Zero(t, removed.DiscountAmount)
	assert.Equal(t, int64(530_000), removed.FinalTotal)
}

func TestQuoteIgnoresIneligibleVoucher(t *testing.T) {
	f := newCheckoutFixture()
	v := activeVoucher()
	v.Quantity = 0
	f.vouchers.voucher = v

	pricing, err := f.svc.Quote(context.Background(), 9, validSubmitRequest().Address, &v.VoucherID)

	require.NoError(t, err)
	assert.Zero(t, pricing.DiscountAmount)
	assert.Equal(t, int64(530_000), pricing.FinalTotal)
}
