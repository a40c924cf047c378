package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/config"
)

// ErrSignatureMismatch is returned when the payment proof submitted at
// checkout does not verify against the gateway secret.
var ErrSignatureMismatch = errors.New("razorpay signature verification failed")

// Client talks to the Razorpay Orders API. Create-order and
// verify-signature are the only operations this system consumes.
type Client struct {
	keyID      string
	keySecret  string
	apiURL     string
	minAmount  int64
	httpClient *http.Client
}

func NewClient(cfg config.RazorpayConfig) *Client {
	return &Client{
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		apiURL:    cfg.APIURL,
		minAmount: cfg.MinAmountPaise,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// KeyID is the public key the payment widget is initialised with.
func (cl *Client) KeyID() string {
	return cl.keyID
}

// AmountInPaise converts a rupee total to the gateway's minor currency
// unit, rounding to the nearest paisa and clamping to the gateway's
// minimum chargeable amount.
func (cl *Client) AmountInPaise(total decimal.Decimal) int64 {
	paise := total.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if paise < cl.minAmount {
		return cl.minAmount
	}
	return paise
}

type createOrderRequest struct {
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	Receipt        string `json:"receipt,omitempty"`
	PaymentCapture int    `json:"payment_capture"`
}

type createOrderResponse struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
	Status string `json:"status"`
	Error  *struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error,omitempty"`
}

// CreateOrder reserves amountPaise on the gateway and returns the gateway
// order id the customer pays against.
func (cl *Client) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (string, error) {
	payload := createOrderRequest{
		Amount:         amountPaise,
		Currency:       currency,
		Receipt:        receipt,
		PaymentCapture: 1,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode order payload: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cl.apiURL+"/v1/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(cl.keyID, cl.keySecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := cl.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach Razorpay: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("razorpay API error (%d): %s", resp.StatusCode, string(body))
	}

	var orderResp createOrderResponse
	if err := json.Unmarshal(body, &orderResp); err != nil {
		return "", fmt.Errorf("failed to parse Razorpay response: %v", err)
	}
	if orderResp.Error != nil {
		return "", fmt.Errorf("razorpay error: %s", orderResp.Error.Description)
	}
	if orderResp.ID == "" {
		return "", fmt.Errorf("razorpay returned empty order id")
	}

	return orderResp.ID, nil
}

// VerifySignature checks the payment proof the customer submits after the
// widget completes: signature must equal HMAC-SHA256(orderID|paymentID)
// under the key secret. Returns ErrSignatureMismatch on failure.
func (cl *Client) VerifySignature(orderID, paymentID, signature string) error {
	mac := hmac.New(sha256.New, []byte(cl.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrSignatureMismatch
	}
	return nil
}
