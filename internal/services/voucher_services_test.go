package services

import (
	"testing"
	"time"

	"PetStoreAPI/internal/model"

	"github.com/stretchr/testify/assert"
)

func voucherFixture() model.Voucher {
	return model.Voucher{
		VoucherID: 1,
		Name:      "summer sale",
		Percents:  10,
		Condition: 400_000,
		Quantity:  5,
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}
}

func TestVoucherSelectable(t *testing.T) {
	today := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("selectable when condition met inside window", func(t *testing.T) {
		v := voucherFixture()
		assert.True(t, VoucherSelectable(v, 500_000, today))
	})

	t.Run("condition equal to subtotal still qualifies", func(t *testing.T) {
		v := voucherFixture()
		assert.True(t, VoucherSelectable(v, 400_000, today))
	})

	t.Run("subtotal below condition", func(t *testing.T) {
		v := voucherFixture()
		assert.False(t, VoucherSelectable(v, 399_999, today))
	})

	t.Run("before start date", func(t *testing.T) {
		v := voucherFixture()
		early := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
		assert.False(t, VoucherSelectable(v, 500_000, early))
	})

	t.Run("no remaining days", func(t *testing.T) {
		v := voucherFixture()
		lastDay := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
		assert.False(t, VoucherSelectable(v, 500_000, lastDay))
	})

	t.Run("exhausted quantity", func(t *testing.T) {
		v := voucherFixture()
		v.Quantity = 0
		assert.False(t, VoucherSelectable(v, 500_000, today))
	})
}

func TestRemainingDays(t *testing.T) {
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 15, RemainingDays(end, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, RemainingDays(end, end))
	// partial days floor to the lower count
	assert.Equal(t, 14, RemainingDays(end, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, -1, RemainingDays(end, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)))
}

func TestComputeDiscount(t *testing.T) {
	v := voucherFixture()

	// 10% of (500,000 + 30,000) = 53,000
	assert.Equal(t, int64(53_000), ComputeDiscount(v, 500_000, 30_000))

	// the shipping fee is part of the discounted base
	assert.Equal(t, int64(50_000), ComputeDiscount(v, 500_000, 0))
}

func TestCheckoutPricingWithVoucher(t *testing.T) {
	v := voucherFixture()

	discount := ComputeDiscount(v, 500_000, 30_000)
	pricing := NewPricingSummary(500_000, 30_000, discount)

	assert.Equal(t, int64(53_000), pricing.DiscountAmount)
	assert.Equal(t, int64(477_000), pricing.FinalTotal)
	assert.Equal(t, pricing.Subtotal+pricing.ShippingFee-pricing.DiscountAmount, pricing.FinalTotal)
}

func TestVoucherValidate(t *testing.T) {
	svc := &VoucherService{}

	t.Run("valid voucher", func(t *testing.T) {
		assert.NoError(t, svc.validate(voucherFixture()))
	})

	t.Run("missing name", func(t *testing.T) {
		v := voucherFixture()
		v.Name = ""
		assert.Error(t, svc.validate(v))
	})

	t.Run("zero percents", func(t *testing.T) {
		v := voucherFixture()
		v.Percents = 0
		assert.Error(t, svc.validate(v))
	})

	t.Run("percents above cap", func(t *testing.T) {
		v := voucherFixture()
		v.Percents = MaxVoucherPercents + 1
		assert.Error(t, svc.validate(v))
	})

	t.Run("percents at cap", func(t *testing.T) {
		v := voucherFixture()
		v.Percents = MaxVoucherPercents
		assert.NoError(t, svc.validate(v))
	})

	t.Run("end date before start date", func(t *testing.T) {
		v := voucherFixture()
		v.EndDate = v.StartDate.Add(-time.Hour)
		assert.Error(t, svc.validate(v))
	})
}
