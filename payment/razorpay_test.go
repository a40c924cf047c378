package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/config"
)

func testClient(apiURL string) *Client {
	return NewClient(config.RazorpayConfig{
		KeyID:          "rzp_test_key",
		KeySecret:      "rzp_test_secret",
		APIURL:         apiURL,
		MinAmountPaise: 100,
		Timeout:        5 * time.Second,
	})
}

func TestAmountInPaise(t *testing.T) {
	cl := testClient("")

	cases := []struct {
		total string
		want  int64
	}{
		{"450.00", 45000},
		{"123.456", 12346},
		{"1.00", 100},
		{"0.50", 100}, // below the gateway minimum, clamped up
		{"0", 100},
	}

	for _, tc := range cases {
		total := decimal.RequireFromString(tc.total)
		if got := cl.AmountInPaise(total); got != tc.want {
			t.Fatalf("AmountInPaise(%s) = %d, want %d", tc.total, got, tc.want)
		}
	}
}

func TestVerifySignature(t *testing.T) {
	cl := testClient("")

	orderID := "order_abc123"
	paymentID := "pay_xyz789"

	mac := hmac.New(sha256.New, []byte("rzp_test_secret"))
	mac.Write([]byte(orderID + "|" + paymentID))
	valid := hex.EncodeToString(mac.Sum(nil))

	if err := cl.VerifySignature(orderID, paymentID, valid); err != nil {
		t.Fatalf("valid signature rejected: %v", err)
	}

	err := cl.VerifySignature(orderID, paymentID, "deadbeef")
	if !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("fabricated signature: got %v, want ErrSignatureMismatch", err)
	}

	// A signature minted for a different payment must not verify.
	err = cl.VerifySignature(orderID, "pay_other", valid)
	if !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("replayed signature: got %v, want ErrSignatureMismatch", err)
	}
}

func TestCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/orders" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "rzp_test_key" || pass != "rzp_test_secret" {
			t.Errorf("missing or wrong basic auth")
		}

		var body struct {
			Amount         int64  `json:"amount"`
			Currency       string `json:"currency"`
			PaymentCapture int    `json:"payment_capture"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if body.Amount != 45000 || body.Currency != "INR" || body.PaymentCapture != 1 {
			t.Errorf("unexpected payload %+v", body)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "order_test_1",
			"amount": body.Amount,
			"status": "created",
		})
	}))
	defer srv.Close()

	cl := testClient(srv.URL)

	orderID, err := cl.CreateOrder(context.Background(), 45000, "INR", "receipt-1")
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}
	if orderID != "order_test_1" {
		t.Fatalf("order id = %q, want order_test_1", orderID)
	}
}

func TestCreateOrderGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount too small"}}`))
	}))
	defer srv.Close()

	cl := testClient(srv.URL)

	if _, err := cl.CreateOrder(context.Background(), 1, "INR", ""); err == nil {
		t.Fatalf("expected error from gateway rejection")
	}
}

func TestCreateOrderEmptyID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"created"}`))
	}))
	defer srv.Close()

	cl := testClient(srv.URL)

	if _, err := cl.CreateOrder(context.Background(), 45000, "INR", ""); err == nil {
		t.Fatalf("expected error for response without an order id")
	}
}
