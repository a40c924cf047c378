package orderControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func trackRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/track/:order_id", TrackOrder(db))
	r.PUT("/admin/orders/:order_id/status", UpdateOrderStatus(db))
	r.PUT("/admin/orders/:order_id/payment-status", UpdatePaymentStatus(db))
	return r
}

func seedOrder(t *testing.T, db *gorm.DB) models.Order {
	t.Helper()

	order := models.Order{
		OrderRef:      "ref-123",
		UserID:        "user-1",
		FirstName:     "Asha",
		Email:         "asha@example.com",
		Phone:         "9876543210",
		Total:         decimal.RequireFromString("450.00"),
		Status:        models.OrderStatusPlaced,
		PaymentMethod: models.PaymentMethodCOD,
		PaymentStatus: models.PaymentStatusPending,
		Items: []models.OrderItem{
			{ProductName: "Thermometer", Quantity: 2, Price: decimal.RequireFromString("175.00")},
		},
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}
	return order
}

func postJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTrackOrderMatchesIDAndEmail(t *testing.T) {
	db := testDB(t)
	order := seedOrder(t, db)
	r := trackRouter(db)

	w := postJSON(r, http.MethodPost, "/track/1", TrackOrderRequest{Email: "asha@example.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		TrackedOrder *models.Order `json:"tracked_order"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.TrackedOrder == nil || resp.TrackedOrder.ID != order.ID {
		t.Fatalf("tracked order = %+v, want id %d", resp.TrackedOrder, order.ID)
	}
	if len(resp.TrackedOrder.Items) != 1 {
		t.Fatalf("tracked order should include its items")
	}
}

func TestTrackOrderWrongEmail(t *testing.T) {
	db := testDB(t)
	seedOrder(t, db)
	r := trackRouter(db)

	w := postJSON(r, http.MethodPost, "/track/1", TrackOrderRequest{Email: "someone@else.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		TrackedOrder *models.Order `json:"tracked_order"`
		Error        string        `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.TrackedOrder != nil {
		t.Fatalf("order must not be revealed to a mismatched email")
	}
	if resp.Error != "No order found for this email." {
		t.Fatalf("error = %q, want no-order message", resp.Error)
	}
}

func TestTrackOrderRequiresEmail(t *testing.T) {
	db := testDB(t)
	seedOrder(t, db)
	r := trackRouter(db)

	w := postJSON(r, http.MethodPost, "/track/1", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	db := testDB(t)
	order := seedOrder(t, db)
	r := trackRouter(db)

	w := postJSON(r, http.MethodPut, "/admin/orders/1/status", UpdateOrderStatusRequest{Status: "shipped"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var got models.Order
	if err := db.First(&got, order.ID).Error; err != nil {
		t.Fatalf("failed to reload order: %v", err)
	}
	if got.Status != models.OrderStatusShipped {
		t.Fatalf("order status = %s, want shipped", got.Status)
	}
}

func TestUpdateOrderStatusRejectsUnknown(t *testing.T) {
	db := testDB(t)
	seedOrder(t, db)
	r := trackRouter(db)

	w := postJSON(r, http.MethodPut, "/admin/orders/1/status", UpdateOrderStatusRequest{Status: "teleported"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUpdatePaymentStatus(t *testing.T) {
	db := testDB(t)
	order := seedOrder(t, db)
	r := trackRouter(db)

	w := postJSON(r, http.MethodPut, "/admin/orders/1/payment-status", UpdatePaymentStatusRequest{PaymentStatus: "paid"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var got models.Order
	if err := db.First(&got, order.ID).Error; err != nil {
		t.Fatalf("failed to reload order: %v", err)
	}
	if got.PaymentStatus != models.PaymentStatusPaid {
		t.Fatalf("payment status = %s, want Paid", got.PaymentStatus)
	}
}

func TestUpdatePaymentStatusMissingOrder(t *testing.T) {
	db := testDB(t)
	r := trackRouter(db)

	w := postJSON(r, http.MethodPut, "/admin/orders/99/payment-status", UpdatePaymentStatusRequest{PaymentStatus: "paid"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
