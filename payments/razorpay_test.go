package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
)

func testClient(baseURL string) *Client {
	return &Client{
		http:      resty.New().SetBaseURL(baseURL),
		keyID:     "rzp_test_key",
		keySecret: "rzp_test_secret",
	}
}

func TestCreateOrderConvertsToMinorUnits(t *testing.T) {
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "rzp_test_key" || pass != "rzp_test_secret" {
			t.Errorf("basic auth = %q/%q, want key id and secret", user, pass)
		}
		if r.URL.Path != "/v1/orders" {
			t.Errorf("path = %q, want /v1/orders", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":       "order_42",
			"amount":   25050,
			"currency": "INR",
			"receipt":  gotBody["receipt"],
			"status":   "created",
		})
	}))
	defer server.Close()

	order, err := testClient(server.URL).CreateOrder(context.Background(), 250.50)
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}

	if gotBody["amount"] != float64(25050) {
		t.Errorf("amount sent = %v, want 25050 paise", gotBody["amount"])
	}
	if gotBody["currency"] != "INR" {
		t.Errorf("currency sent = %v, want INR", gotBody["currency"])
	}
	receipt, _ := gotBody["receipt"].(string)
	if !strings.HasPrefix(receipt, "rcpt_") {
		t.Errorf("receipt = %q, want rcpt_ prefix", receipt)
	}
	if order.ID != "order_42" || order.Amount != 25050 {
		t.Errorf("order = %+v", order)
	}
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"description":"bad key"}}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).CreateOrder(context.Background(), 100)
	if err == nil {
		t.Fatal("expected error for non-200 gateway response")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error = %v, want the gateway status in the message", err)
	}
}

func TestVerifySignature(t *testing.T) {
	client := testClient("http://unused")

	mac := hmac.New(sha256.New, []byte("rzp_test_secret"))
	mac.Write([]byte("order_1|pay_1"))
	valid := hex.EncodeToString(mac.Sum(nil))

	if !client.VerifySignature("order_1", "pay_1", valid) {
		t.Error("valid signature was rejected")
	}

	// Any single-character mutation must fail.
	for i := 0; i < len(valid); i += 7 {
		mutated := []byte(valid)
		if mutated[i] == 'x' {
			mutated[i] = 'y'
		} else {
			mutated[i] = 'x'
		}
		if client.VerifySignature("order_1", "pay_1", string(mutated)) {
			t.Errorf("mutated signature at index %d was accepted", i)
		}
	}

	if client.VerifySignature("order_2", "pay_1", valid) {
		t.Error("signature for different ids was accepted")
	}
	if client.VerifySignature("order_1", "pay_1", "") {
		t.Error("empty signature was accepted")
	}
}

func TestVerifySignatureWrongSecret(t *testing.T) {
	client := testClient("http://unused")

	mac := hmac.New(sha256.New, []byte("some_other_secret"))
	mac.Write([]byte("order_1|pay_1"))
	forged := hex.EncodeToString(mac.Sum(nil))

	if client.VerifySignature("order_1", "pay_1", forged) {
		t.Error("signature produced with the wrong secret was accepted")
	}
}
