package shopControllers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/config"
	cartControllers "github.com/sindhu-coder-byte/Kani-medical-ecomm/controllers/cart"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/models"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/session"
	"gorm.io/gorm"
)

type ContactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Message   string `json:"message" binding:"required"`
}

// GET /
func Home(db *gorm.DB, guestCarts *session.Store, media config.MediaConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var heroImage gin.H
		if _, err := os.Stat(filepath.Join(media.Root, "image1.png")); err == nil {
			heroImage = gin.H{"url": media.URL + "/image1.png"}
		}

		var featured []models.Product
		if err := db.Where("is_featured = ?", true).Limit(8).Find(&featured).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"hero_image":        heroImage,
			"featured_products": featured,
			"cart_items_count":  cartControllers.ItemsCount(c, db, guestCarts),
		})
	}
}

// GET /about
func About() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": "about"})
	}
}

// GET /contact
func ContactPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": "contact"})
	}
}

// POST /contact
func SubmitContact(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		msg := models.ContactMessage{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Message:   req.Message,
		}
		if err := db.Create(&msg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Your message has been sent successfully!"})
	}
}
