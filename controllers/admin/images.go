package adminController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/config"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/models"
	"gorm.io/gorm"
)

func findProduct(c *gin.Context, db *gorm.DB) (*models.Product, bool) {
	var product models.Product
	if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		}
		return nil, false
	}
	return &product, true
}

// POST /admin/products/:id/images
func AddProductImage(db *gorm.DB, media config.MediaConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := findProduct(c, db)
		if !ok {
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}
		imageURL, err := saveUpload(c, media, "products/images", file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}

		img := models.ProductImage{ProductID: product.ID, Image: imageURL}
		if err := db.Create(&img).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image record"})
			return
		}

		c.JSON(http.StatusCreated, img)
	}
}

// POST /admin/products/:id/thumbnails
func AddProductThumbnail(db *gorm.DB, media config.MediaConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := findProduct(c, db)
		if !ok {
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}
		imageURL, err := saveUpload(c, media, "products/thumbnails", file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save thumbnail"})
			return
		}

		thumb := models.ProductThumbnail{ProductID: product.ID, Image: imageURL}
		if err := db.Create(&thumb).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save thumbnail record"})
			return
		}

		c.JSON(http.StatusCreated, thumb)
	}
}

// DELETE /admin/thumbnails/:id
func DeleteProductThumbnail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.ProductThumbnail{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete thumbnail"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Thumbnail not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Thumbnail deleted"})
	}
}
