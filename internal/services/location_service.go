package services

import (
	"context"
	"log"

	"PetStoreAPI/internal/model"
)

// LocationProvider is the logistics provider's administrative-unit API.
// Implemented by external/ghn.
type LocationProvider interface {
	Provinces(ctx context.Context) ([]model.Province, error)
	Districts(ctx context.Context, provinceID int64) ([]model.District, error)
	Wards(ctx context.Context, districtID int64) ([]model.Ward, error)
}

// LocationService drives the cascading province -> district -> ward
// selection. Invariant: picking a level clears every level below it,
// in the same step, so the selection can never hold a district that
// belongs to a previously chosen province.
type LocationService struct {
	Provider LocationProvider
}

func NewLocationService(p LocationProvider) *LocationService {
	return &LocationService{Provider: p}
}

func (s *LocationService) Provinces(ctx context.Context) ([]model.Province, error) {
	return s.Provider.Provinces(ctx)
}

// SelectProvince records the province and clears district and ward,
// then fetches the new district list. A provider failure is logged and
// yields an empty list; the user is not retried automatically.
func (s *LocationService) SelectProvince(ctx context.Context, sel model.AddressSelection, provinceID int64, provinceName string) (model.AddressSelection, []model.District) {
	sel.ProvinceID = provinceID
	sel.ProvinceName = provinceName
	sel.DistrictID = 0
	sel.DistrictName = ""
	sel.WardCode = ""
	sel.WardName = ""

	districts, err := s.Provider.Districts(ctx, provinceID)
	if err != nil {
		log.Printf("district lookup failed for province %d: %v", provinceID, err)
		return sel, []model.District{}
	}
	return sel, districts
}

// SelectDistrict records the district and clears the ward, then
// fetches the new ward list.
func (s *LocationService) SelectDistrict(ctx context.Context, sel model.AddressSelection, districtID int64, districtName string) (model.AddressSelection, []model.Ward) {
	sel.DistrictID = districtID
	sel.DistrictName = districtName
	sel.WardCode = ""
	sel.WardName = ""

	wards, err := s.Provider.Wards(ctx, districtID)
	if err != nil {
		log.Printf("ward lookup failed for district %d: %v", districtID, err)
		return sel, []model.Ward{}
	}
	return sel, wards
}

// SelectWard records the final administrative level
func (s *LocationService) SelectWard(sel model.AddressSelection, wardCode, wardName string) model.AddressSelection {
	sel.WardCode = wardCode
	sel.WardName = wardName
	return sel
}
