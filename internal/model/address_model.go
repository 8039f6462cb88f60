package model

// Province, District and Ward mirror the logistics provider's
// administrative units. IDs/codes are opaque provider values.
type Province struct {
	ProvinceID   int64  `json:"provinceid"`
	ProvinceName string `json:"provincename"`
}

type District struct {
	DistrictID   int64  `json:"districtid"`
	DistrictName string `json:"districtname"`
}

type Ward struct {
	WardCode string `json:"wardcode"`
	WardName string `json:"wardname"`
}

// AddressSelection is the incrementally built shipping destination.
// A change to a higher administrative level invalidates everything
// below it; the location service owns that invariant.
type AddressSelection struct {
	RecipientName string `json:"recipientname"`
	Phone         string `json:"phone"`
	StreetLine    string `json:"streetline"`
	ProvinceID    int64  `json:"provinceid"`
	ProvinceName  string `json:"provincename"`
	DistrictID    int64  `json:"districtid"`
	DistrictName  string `json:"districtname"`
	WardCode      string `json:"wardcode"`
	WardName      string `json:"wardname"`
}

// Formatted renders the single-line address string stored on orders.
func (a AddressSelection) Formatted() string {
	s := a.StreetLine
	for _, part := range []string{a.WardName, a.DistrictName, a.ProvinceName} {
		if part != "" {
			s += ", " + part
		}
	}
	return s
}
