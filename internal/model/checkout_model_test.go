package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitStateIsTerminal(t *testing.T) {
	terminal := []SubmitState{SubmitStateSucceeded, SubmitStateFailed}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), s.String())
	}

	inFlight := []SubmitState{
		SubmitStateIdle,
		SubmitStateValidating,
		SubmitStateEstimatingShipping,
		SubmitStateDecrementingVoucher,
		SubmitStateSubmittingPayment,
	}
	for _, s := range inFlight {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestAddressFormatted(t *testing.T) {
	a := AddressSelection{
		StreetLine:   "12 Le Loi",
		WardName:     "Phuong Ben Nghe",
		DistrictName: "Quan 3",
		ProvinceName: "Ho Chi Minh",
	}
	assert.Equal(t, "12 Le Loi, Phuong Ben Nghe, Quan 3, Ho Chi Minh", a.Formatted())

	partial := AddressSelection{StreetLine: "12 Le Loi", ProvinceName: "Ho Chi Minh"}
	assert.Equal(t, "12 Le Loi, Ho Chi Minh", partial.Formatted())
}
