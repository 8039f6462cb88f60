package services

import (
	"context"
	"fmt"
	"log"
)

// DefaultParcelWeightGrams is the assumed parcel weight for every fee
// quote. Cart item weights are never consulted.
const DefaultParcelWeightGrams = 500

// FeeQuoter is the logistics provider's fee API. Implemented by
// external/ghn.
type FeeQuoter interface {
	Fee(ctx context.Context, districtID int64, wardCode string, weightGrams int) (int64, error)
}

// ShippingService exposes the fee quote under two deliberately distinct
// contracts: the reactive estimate shown while the user picks an
// address degrades silently to zero, while the quote taken during
// order submission is fatal on failure. Do not merge them.
type ShippingService struct {
	Quoter FeeQuoter
}

func NewShippingService(q FeeQuoter) *ShippingService {
	return &ShippingService{Quoter: q}
}

// QuoteForDisplay recomputes the displayed fee whenever the district or
// ward changes. Provider failure must not block checkout entry: the fee
// resets to zero and the error is only logged.
func (s *ShippingService) QuoteForDisplay(ctx context.Context, districtID int64, wardCode string) int64 {
	fee, err := s.Quoter.Fee(ctx, districtID, wardCode, DefaultParcelWeightGrams)
	if err != nil {
		log.Printf("shipping fee estimate failed (district=%d ward=%s): %v", districtID, wardCode, err)
		return 0
	}
	return fee
}

// QuoteForSubmission is the submission-path quote; here a provider
// failure aborts the order instead of degrading.
func (s *ShippingService) QuoteForSubmission(ctx context.Context, districtID int64, wardCode string) (int64, error) {
	fee, err := s.Quoter.Fee(ctx, districtID, wardCode, DefaultParcelWeightGrams)
	if err != nil {
		return 0, fmt.Errorf("shipping fee quote: %w", err)
	}
	return fee, nil
}
