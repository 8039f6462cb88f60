package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockFeeQuoter struct {
	fee       int64
	err       error
	lastGrams int
}

func (m *mockFeeQuoter) Fee(ctx context.Context, districtID int64, wardCode string, weightGrams int) (int64, error) {
	m.lastGrams = weightGrams
	return m.fee, m.err
}

func TestQuoteForDisplay(t *testing.T) {
	t.Run("returns the provider fee", func(t *testing.T) {
		q := &mockFeeQuoter{fee: 30_000}
		svc := NewShippingService(q)

		fee := svc.QuoteForDisplay(context.Background(), 11, "W-9")

		assert.Equal(t, int64(30_000), fee)
		assert.Equal(t, DefaultParcelWeightGrams, q.lastGrams)
	})

	t.Run("degrades to zero on provider failure", func(t *testing.T) {
		q := &mockFeeQuoter{err: errors.New("ghn down")}
		svc := NewShippingService(q)

		fee := svc.QuoteForDisplay(context.Background(), 11, "W-9")

		assert.Zero(t, fee)
	})
}

func TestQuoteForSubmission(t *testing.T) {
	t.Run("returns the provider fee", func(t *testing.T) {
		svc := NewShippingService(&mockFeeQuoter{fee: 30_000})

		fee, err := svc.QuoteForSubmission(context.Background(), 11, "W-9")

		require.NoError(t, err)
		assert.Equal(t, int64(30_000), fee)
	})

	t.Run("propagates provider failure", func(t *testing.T) {
		svc := NewShippingService(&mockFeeQuoter{err: errors.New("ghn down")})

		_, err := svc.QuoteForSubmission(context.Background(), 11, "W-9")

		require.Error(t, err)
	})
}
