package checkoutControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	orderControllers "github.com/sindhu-coder-byte/Kani-medical-ecomm/controllers/order"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/models"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/payment"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// CheckoutRequest is the typed checkout submission. The razorpay fields
// are set only when the customer paid through the gateway widget; absent
// fields mean cash on delivery.
type CheckoutRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Address   string `json:"address"`

	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

func (r *CheckoutRequest) paidOnline() bool {
	return r.RazorpayPaymentID != ""
}

// PlaceOrder finalises checkout for a user's cart.
//
// For an online payment the gateway signature is verified first; a
// mismatch aborts before anything is written. The order insert, the
// order-item snapshots, the stock deduction and the cart clear all run in
// one transaction so a failure leaves both cart and catalog untouched.
// Resubmitting the same gateway payment id returns the order it already
// produced instead of creating a duplicate.
func PlaceOrder(db *gorm.DB, gateway *payment.Client, userID string, req CheckoutRequest) (*models.Order, error) {
	paymentStatus := models.PaymentStatusPending
	paymentMethod := models.PaymentMethodCOD

	if req.paidOnline() {
		if err := gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature); err != nil {
			return nil, err
		}
		paymentStatus = models.PaymentStatusPaid
		paymentMethod = models.PaymentMethodOnline

		var existing models.Order
		err := db.Preload("Items").
			Where("razorpay_payment_id = ?", req.RazorpayPaymentID).
			First(&existing).Error
		if err == nil {
			return &existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	var lines []models.Cart
	if err := db.Preload("Product").Where("user_id = ?", userID).Find(&lines).Error; err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	totals := models.ComputeCartTotals(lines)

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		orderItems := make([]models.OrderItem, 0, len(lines))

		for _, line := range lines {
			// Guarded decrement: fails the transaction instead of ever
			// taking stock below zero under concurrent checkouts.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", line.ProductID, line.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", line.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrInsufficientStock
			}

			orderItems = append(orderItems, models.OrderItem{
				ProductID:   line.Product.ID,
				ProductName: line.Product.Name,
				Quantity:    line.Quantity,
				Price:       line.Product.FinalPrice(),
			})
		}

		order = models.Order{
			OrderRef:          uuid.NewString(),
			UserID:            userID,
			FirstName:         req.FirstName,
			LastName:          req.LastName,
			Email:             req.Email,
			Phone:             req.Phone,
			Address:           req.Address,
			Total:             totals.Total,
			Status:            models.OrderStatusPlaced,
			PaymentMethod:     paymentMethod,
			PaymentStatus:     paymentStatus,
			RazorpayOrderID:   req.RazorpayOrderID,
			RazorpayPaymentID: req.RazorpayPaymentID,
			RazorpaySignature: req.RazorpaySignature,
			Items:             orderItems,
			CreatedAt:         time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", userID).Delete(&models.Cart{}).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// POST /checkout
func Checkout(db *gorm.DB, gateway *payment.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := PlaceOrder(db, gateway, userID, req)
		if err != nil {
			switch {
			case errors.Is(err, payment.ErrSignatureMismatch):
				// Back to the cart; no order was created and the cart is intact.
				c.JSON(http.StatusBadRequest, gin.H{
					"error":    "Payment verification failed. Try again!",
					"redirect": "/cart",
				})
			case errors.Is(err, ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			case errors.Is(err, ErrInsufficientStock):
				c.JSON(http.StatusConflict, gin.H{"error": "Not enough stock for an item in your cart"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		orderControllers.BroadcastOrder(*order)

		c.JSON(http.StatusOK, gin.H{
			"message":  "Order placed successfully!",
			"order_id": order.ID,
			"redirect": "/order-success/" + order.OrderRef,
		})
	}
}

// GET /order-success/:order_id
//
// Accepts either the numeric order id or the order ref. Only the order's
// owner can fetch it; guessing ids must not expose other shoppers'
// contact details.
func OrderSuccess(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		id := c.Param("order_id")

		query := db.Preload("Items").Where("user_id = ?", userIDVal.(string))
		if _, err := strconv.ParseUint(id, 10, 64); err == nil {
			query = query.Where("id = ?", id)
		} else {
			query = query.Where("order_ref = ?", id)
		}

		var order models.Order
		if err := query.First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}
