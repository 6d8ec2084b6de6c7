// Package razorpay is a minimal client for the two Razorpay calls this
// system makes: creating an order before checkout and verifying the
// payment signature on the callback.
package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.razorpay.com/v1"

type Client struct {
	KeyID     string
	KeySecret string
	BaseURL   string
	HTTP      *http.Client
}

func NewClient(keyID, keySecret string) *Client {
	return &Client{
		KeyID:     keyID,
		KeySecret: keySecret,
		BaseURL:   defaultBaseURL,
		HTTP:      &http.Client{Timeout: 15 * time.Second},
	}
}

type createOrderReq struct {
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	PaymentCapture int    `json:"payment_capture"`
}

type orderResp struct {
	ID string `json:"id"`
}

type apiError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder opens a gateway order for the amount in minor units
// (paise) with automatic capture.
func (c *Client) CreateOrder(ctx context.Context, amountMinor int64, currency string) (string, error) {
	body, err := json.Marshal(createOrderReq{
		Amount:         amountMinor,
		Currency:       currency,
		PaymentCapture: 1,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.KeyID, c.KeySecret)

	res, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Description != "" {
			return "", fmt.Errorf("razorpay: %s (%s)", apiErr.Error.Description, apiErr.Error.Code)
		}
		return "", fmt.Errorf("razorpay: unexpected status %d", res.StatusCode)
	}

	var order orderResp
	if err := json.Unmarshal(data, &order); err != nil {
		return "", err
	}
	if order.ID == "" {
		return "", fmt.Errorf("razorpay: response missing order id")
	}
	return order.ID, nil
}

// VerifySignature checks the callback signature: HMAC-SHA256 over
// "<orderID>|<paymentID>" keyed with the secret, hex encoded.
func (c *Client) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.KeySecret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
