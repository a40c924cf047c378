package cartControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/models"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/payment"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/session"
	"gorm.io/gorm"
)

// POST /cart/add/:product_id
//
// Adding a product that is already in the cart increments its quantity
// instead of creating a second line.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		productID := c.Param("product_id")

		var product models.Product
		if err := db.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		var line models.Cart
		err := db.Where("user_id = ? AND product_id = ?", userID, product.ID).First(&line).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			line = models.Cart{
				UserID:    userID,
				ProductID: product.ID,
				Quantity:  1,
				CreatedAt: time.Now(),
			}
			if err := db.Create(&line).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		} else {
			line.Quantity++
			if err := db.Save(&line).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message": product.Name + " has been added to your cart!",
			"item":    line,
		})
	}
}

// GET /cart
//
// Recomputes the pricing aggregate from the current cart snapshot and
// opens a gateway order for the total, so the page can mount the payment
// widget. The gateway call must succeed before checkout can proceed.
func GetCart(db *gorm.DB, gateway *payment.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var lines []models.Cart
		if err := db.Preload("Product").Where("user_id = ?", userID).Find(&lines).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		totals := models.ComputeCartTotals(lines)

		resp := gin.H{
			"cart_items": lines,
			"subtotal":   totals.Subtotal,
			"discount":   totals.Discount,
			"total":      totals.Total,
		}

		if len(lines) > 0 {
			amount := gateway.AmountInPaise(totals.Total)
			orderID, err := gateway.CreateOrder(c.Request.Context(), amount, "INR", "")
			if err != nil {
				log.Printf("razorpay order creation failed for user %s: %v", userID, err)
				c.JSON(http.StatusBadGateway, gin.H{"error": "Payment gateway is unavailable. Please try again."})
				return
			}
			resp["razorpay_order_id"] = orderID
			resp["razorpay_key_id"] = gateway.KeyID()
		}

		c.JSON(http.StatusOK, resp)
	}
}

// DELETE /cart/:product_id
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		productID := c.Param("product_id")

		result := db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.Cart{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// GET /cart/count
//
// The header badge. Both guest and user carts report the quantity sum.
func CartCount(db *gorm.DB, guestCarts *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"cart_items_count": ItemsCount(c, db, guestCarts)})
	}
}

// ItemsCount resolves the header cart count for the current requester:
// quantity sum over durable cart rows for a logged-in user, quantity sum
// over the session cart for a guest.
func ItemsCount(c *gin.Context, db *gorm.DB, guestCarts *session.Store) int {
	if userIDVal, exists := c.Get("user_id"); exists {
		var lines []models.Cart
		if err := db.Where("user_id = ?", userIDVal.(string)).Find(&lines).Error; err != nil {
			return 0
		}
		return models.CountCartItems(lines)
	}

	guestID := guestIDFrom(c)
	if guestID == "" {
		return 0
	}
	cart, err := guestCarts.Get(c.Request.Context(), guestID)
	if err != nil {
		return 0
	}
	return cart.Count()
}

func guestIDFrom(c *gin.Context) string {
	if id := c.Query("guest_id"); id != "" {
		return id
	}
	return c.GetHeader("X-Guest-ID")
}
