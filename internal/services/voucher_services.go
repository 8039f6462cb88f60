package services

import (
	"context"
	"errors"
	"time"

	"PetStoreAPI/internal/model"
	"PetStoreAPI/internal/repository"
)

// MaxVoucherPercents caps the discount an admin can configure
const MaxVoucherPercents = 70

type VoucherService struct {
	Repo *repository.VoucherRepository
}

func NewVoucherService(r *repository.VoucherRepository) *VoucherService {
	return &VoucherService{Repo: r}
}

// RemainingDays is floor((endDate - today) / 1 day). A voucher with
// zero remaining days is no longer selectable.
func RemainingDays(endDate, today time.Time) int {
	return int(endDate.Sub(today).Hours() / 24)
}

// VoucherSelectable reports whether a voucher can be offered for the
// given subtotal right now: minimum-purchase condition met, validity
// window open, redemptions left.
func VoucherSelectable(v model.Voucher, subtotal int64, today time.Time) bool {
	if v.Condition > subtotal {
		return false
	}
	if today.Before(v.StartDate) {
		return false
	}
	if RemainingDays(v.EndDate, today) <= 0 {
		return false
	}
	return v.Quantity > 0
}

// ComputeDiscount applies the voucher percentage to subtotal plus
// shipping fee (that is the base the platform discounts against).
func ComputeDiscount(v model.Voucher, subtotal, shippingFee int64) int64 {
	return (subtotal + shippingFee) * int64(v.Percents) / 100
}

// ListEligible filters the catalog down to vouchers selectable for the
// subtotal and annotates each with its remaining validity.
func (s *VoucherService) ListEligible(ctx context.Context, subtotal int64) ([]model.EligibleVoucher, error) {
	all, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := []model.EligibleVoucher{}
	for _, v := range all {
		if !VoucherSelectable(v, subtotal, now) {
			continue
		}
		out = append(out, model.EligibleVoucher{
			Voucher:       v,
			RemainingDays: RemainingDays(v.EndDate, now),
		})
	}
	return out, nil
}

// Decrement consumes one redemption at order-submission time. Nothing
// reserves the voucher between display and consumption.
func (s *VoucherService) Decrement(ctx context.Context, id int64) error {
	return s.Repo.Decrement(ctx, id)
}

// ---- admin CRUD ----

func (s *VoucherService) validate(v model.Voucher) error {
	if v.Name == "" {
		return errors.New("voucher name is required")
	}
	if v.Percents <= 0 || v.Percents > MaxVoucherPercents {
		return errors.New("percents must be between 1 and 70")
	}
	if v.Condition < 0 {
		return errors.New("condition must not be negative")
	}
	if v.Quantity < 0 {
		return errors.New("quantity must not be negative")
	}
	if v.EndDate.Before(v.StartDate) {
		return errors.New("end date must not precede start date")
	}
	return nil
}

func (s *VoucherService) List(ctx context.Context) ([]model.Voucher, error) {
	return s.Repo.List(ctx)
}

func (s *VoucherService) Get(ctx context.Context, id int64) (*model.Voucher, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *VoucherService) Create(ctx context.Context, v model.Voucher) (int64, error) {
	if err := s.validate(v); err != nil {
		return 0, err
	}
	return s.Repo.Create(ctx, v)
}

func (s *VoucherService) Update(ctx context.Context, v model.Voucher) error {
	if err := s.validate(v); err != nil {
		return err
	}
	return s.Repo.Update(ctx, v)
}

func (s *VoucherService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}
