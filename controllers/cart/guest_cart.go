package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/models"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/session"
	"gorm.io/gorm"
)

// POST /guest/cart/add/:product_id
func AddToGuestCart(db *gorm.DB, guestCarts *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := guestIDFrom(c)
		if guestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
			return
		}

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		cart, err := guestCarts.AddItem(c.Request.Context(), guestID, product.ID, 1)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guest cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":          product.Name + " has been added to your cart!",
			"cart":             cart,
			"cart_items_count": cart.Count(),
		})
	}
}

// GET /guest/cart
//
// Guest carts never reach checkout directly; the guest logs in first and
// the session cart is merged into the durable one.
func GetGuestCart(db *gorm.DB, guestCarts *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := guestIDFrom(c)
		if guestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
			return
		}

		cart, err := guestCarts.Get(c.Request.Context(), guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		// Resolve product details for display, pricing them the same way
		// the durable cart is priced.
		lines := make([]models.Cart, 0, len(cart))
		for productID, qty := range cart {
			var product models.Product
			if err := db.First(&product, "id = ?", productID).Error; err != nil {
				continue
			}
			lines = append(lines, models.Cart{ProductID: productID, Product: product, Quantity: qty})
		}
		totals := models.ComputeCartTotals(lines)

		c.JSON(http.StatusOK, gin.H{
			"cart_items":       lines,
			"subtotal":         totals.Subtotal,
			"discount":         totals.Discount,
			"total":            totals.Total,
			"cart_items_count": cart.Count(),
		})
	}
}
