package services

import (
	"context"
	"errors"
	"testing"

	"PetStoreAPI/internal/model"

	"github.com/stretchr/testify/assert"
)

type mockLocationProvider struct {
	districts    []model.District
	wards        []model.Ward
	districtsErr error
	wardsErr     error
}

func (m *mockLocationProvider) Provinces(ctx context.Context) ([]model.Province, error) {
	return nil, nil
}

func (m *mockLocationProvider) Districts(ctx context.Context, provinceID int64) ([]model.District, error) {
	return m.districts, m.districtsErr
}

func (m *mockLocationProvider) Wards(ctx context.Context, districtID int64) ([]model.Ward, error) {
	return m.wards, m.wardsErr
}

func TestSelectProvinceClearsLowerLevels(t *testing.T) {
	provider := &mockLocationProvider{
		districts: []model.District{{DistrictID: 10, DistrictName: "Quan 1"}},
	}
	svc := NewLocationService(provider)

	sel := model.AddressSelection{
		ProvinceID:   201,
		ProvinceName: "Ha Noi",
		DistrictID:   55,
		DistrictName: "Ba Dinh",
		WardCode:     "W-1",
		WardName:     "Phuong Cong Vi",
	}

	sel, districts := svc.SelectProvince(context.Background(), sel, 202, "Ho Chi Minh")

	assert.Equal(t, int64(202), sel.ProvinceID)
	assert.Equal(t, "Ho Chi Minh", sel.ProvinceName)
	assert.Zero(t, sel.DistrictID)
	assert.Empty(t, sel.DistrictName)
	assert.Empty(t, sel.WardCode)
	assert.Empty(t, sel.WardName)
	assert.Len(t, districts, 1)
}

func TestSelectProvinceProviderFailure(t *testing.T) {
	provider := &mockLocationProvider{districtsErr: errors.New("ghn down")}
	svc := NewLocationService(provider)

	sel, districts := svc.SelectProvince(context.Background(), model.AddressSelection{}, 202, "Ho Chi Minh")

	// the selection is still recorded; only the list comes back empty
	assert.Equal(t, int64(202), sel.ProvinceID)
	assert.Empty(t, districts)
	assert.NotNil(t, districts)
}

func TestSelectDistrictClearsWard(t *testing.T) {
	provider := &mockLocationProvider{
		wards: []model.Ward{{WardCode: "W-9", WardName: "Phuong Ben Nghe"}},
	}
	svc := NewLocationService(provider)

	sel := model.AddressSelection{
		ProvinceID: 202,
		DistrictID: 10,
		WardCode:   "W-1",
		WardName:   "Phuong Cong Vi",
	}

	sel, wards := svc.SelectDistrict(context.Background(), sel, 11, "Quan 3")

	assert.Equal(t, int64(11), sel.DistrictID)
	assert.Equal(t, "Quan 3", sel.DistrictName)
	assert.Empty(t, sel.WardCode)
	assert.Empty(t, sel.WardName)
	assert.Len(t, wards, 1)

	// the province above is untouched
	assert.Equal(t, int64(202), sel.ProvinceID)
}

func TestSelectWard(t *testing.T) {
	svc := NewLocationService(&mockLocationProvider{})

	sel := model.AddressSelection{ProvinceID: 202, DistrictID: 11}
	sel = svc.SelectWard(sel, "W-9", "Phuong Ben Nghe")

	assert.Equal(t, "W-9", sel.WardCode)
	assert.Equal(t, "Phuong Ben Nghe", sel.WardName)
	assert.Equal(t, int64(11), sel.DistrictID)
}
