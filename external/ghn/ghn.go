package ghn

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"PetStoreAPI/internal/model"
)

// Client talks to the GHN logistics API: administrative units
// (province/district/ward) and shipping-fee quotes. All ids and ward
// codes are opaque provider values.
type Client struct {
	token   string
	shopID  string
	client  *http.Client
	baseURL string
}

func NewClient() (*Client, error) {
	token := os.Getenv("GHN_API_TOKEN")
	if token == "" {
		return nil, errors.New("GHN_API_TOKEN not set")
	}

	base := os.Getenv("GHN_BASE_URL")
	if base == "" {
		base = "https://online-gateway.ghn.vn/shiip/public-api"
	}

	return &Client{
		token:   token,
		shopID:  os.Getenv("GHN_SHOP_ID"),
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: base,
	}, nil
}

// envelope is GHN's standard response wrapper
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Token", c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("logistics provider error: %s", resp.Status)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return err
	}
	if env.Code != 200 {
		return fmt.Errorf("logistics provider error: %s", env.Message)
	}
	return json.Unmarshal(env.Data, out)
}

func (c *Client) Provinces(ctx context.Context) ([]model.Province, error) {
	var raw []struct {
		ProvinceID   int64  `json:"ProvinceID"`
		ProvinceName string `json:"ProvinceName"`
	}
	if err := c.get(ctx, "/master-data/province", nil, &raw); err != nil {
		return nil, err
	}

	out := make([]model.Province, 0, len(raw))
	for _, p := range raw {
		out = append(out, model.Province{ProvinceID: p.ProvinceID, ProvinceName: p.ProvinceName})
	}
	return out, nil
}

func (c *Client) Districts(ctx context.Context, provinceID int64) ([]model.District, error) {
	q := url.Values{}
	q.Set("province_id", fmt.Sprint(provinceID))

	var raw []struct {
		DistrictID   int64  `json:"DistrictID"`
		DistrictName string `json:"DistrictName"`
	}
	if err := c.get(ctx, "/master-data/district", q, &raw); err != nil {
		return nil, err
	}

	out := make([]model.District, 0, len(raw))
	for _, d := range raw {
		out = append(out, model.District{DistrictID: d.DistrictID, DistrictName: d.DistrictName})
	}
	return out, nil
}

func (c *Client) Wards(ctx context.Context, districtID int64) ([]model.Ward, error) {
	q := url.Values{}
	q.Set("district_id", fmt.Sprint(districtID))

	var raw []struct {
		WardCode string `json:"WardCode"`
		WardName string `json:"WardName"`
	}
	if err := c.get(ctx, "/master-data/ward", q, &raw); err != nil {
		return nil, err
	}

	out := make([]model.Ward, 0, len(raw))
	for _, w := range raw {
		out = append(out, model.Ward{WardCode: w.WardCode, WardName: w.WardName})
	}
	return out, nil
}

type feeRequest struct {
	ServiceTypeID int    `json:"service_type_id"`
	ToDistrictID  int64  `json:"to_district_id"`
	ToWardCode    string `json:"to_ward_code"`
	Weight        int    `json:"weight"`
}

// Fee quotes a delivery fee (VND) for the destination and parcel weight (grams).
func (c *Client) Fee(ctx context.Context, districtID int64, wardCode string, weightGrams int) (int64, error) {
	body, _ := json.Marshal(feeRequest{
		ServiceTypeID: 2, // standard delivery
		ToDistrictID:  districtID,
		ToWardCode:    wardCode,
		Weight:        weightGrams,
	})

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v2/shipping-order/fee",
		bytes.NewBuffer(body),
	)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Token", c.token)
	req.Header.Set("ShopId", c.shopID)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("shipping fee quote failed: %s", resp.Status)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return 0, err
	}
	if env.Code != 200 {
		return 0, fmt.Errorf("shipping fee quote failed: %s", env.Message)
	}

	var data struct {
		Total int64 `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return 0, err
	}
	return data.Total, nil
}
