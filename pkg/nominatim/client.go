// Package nominatim reverse-geocodes coordinates through the
// OpenStreetMap Nominatim API.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

type Client struct {
	BaseURL   string
	UserAgent string
	HTTP      *http.Client
}

// New builds a client. The user agent is mandatory under Nominatim's
// usage policy.
func New(userAgent string) *Client {
	return &Client{
		BaseURL:   defaultBaseURL,
		UserAgent: userAgent,
		HTTP:      &http.Client{Timeout: 10 * time.Second},
	}
}

type Address struct {
	Road     string `json:"road"`
	City     string `json:"city"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

type reverseResp struct {
	Address struct {
		Road        string `json:"road"`
		Suburb      string `json:"suburb"`
		Residential string `json:"residential"`
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		State       string `json:"state"`
		Postcode    string `json:"postcode"`
		Country     string `json:"country"`
	} `json:"address"`
}

func (c *Client) Reverse(ctx context.Context, lat, lon string) (*Address, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", lat)
	q.Set("lon", lon)
	q.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.BaseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim: unexpected status %d", res.StatusCode)
	}

	var body reverseResp
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	a := body.Address
	return &Address{
		Road:     firstNonEmpty(a.Road, a.Suburb, a.Residential),
		City:     firstNonEmpty(a.City, a.Town, a.Village),
		State:    a.State,
		Postcode: a.Postcode,
		Country:  a.Country,
	}, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
