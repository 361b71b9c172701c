package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const defaultBaseURL = "https://api.razorpay.com"

// GatewayOrder is the remote payment order descriptor returned by the
// gateway. The customer pays against this id before the backend ever sees
// a confirmed order.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Client talks to the Razorpay orders API and verifies payment signatures.
type Client struct {
	http      *resty.Client
	keyID     string
	keySecret string
}

func NewClient(keyID, keySecret string) *Client {
	return &Client{
		http:      resty.New().SetBaseURL(defaultBaseURL).SetTimeout(30 * time.Second),
		keyID:     keyID,
		keySecret: keySecret,
	}
}

// CreateOrder creates a remote payment order for the given amount in INR.
// The gateway expects the amount in paise.
func (c *Client) CreateOrder(ctx context.Context, amount float64) (GatewayOrder, error) {
	body := map[string]any{
		"amount":   int64(math.Round(amount * 100)),
		"currency": "INR",
		"receipt":  "rcpt_" + uuid.NewString(),
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.keyID, c.keySecret).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/v1/orders")
	if err != nil {
		return GatewayOrder{}, fmt.Errorf("payment gateway request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return GatewayOrder{}, fmt.Errorf("payment gateway returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var order GatewayOrder
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		return GatewayOrder{}, fmt.Errorf("failed to parse gateway response: %w", err)
	}

	return order, nil
}

// VerifySignature recomputes the HMAC-SHA256 signature over
// "<orderID>|<paymentID>" with the key secret and compares it against the
// one supplied by the client. A mismatch means the confirmation did not
// come from the gateway.
func (c *Client) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
