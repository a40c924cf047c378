package adminController

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/config"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/models"
	"gorm.io/gorm"
)

// saveUpload stores an uploaded file under the media root and returns its
// public URL.
func saveUpload(c *gin.Context, media config.MediaConfig, subdir string, file *multipart.FileHeader) (string, error) {
	saveDir := filepath.Join(media.Root, subdir)
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", media.URL, subdir, filename), nil
}

// POST /admin/products
func CreateProduct(db *gorm.DB, media config.MediaConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		categoryIDStr := c.PostForm("category_id")
		if name == "" || priceStr == "" || categoryIDStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price, and category_id are required"})
			return
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil || !price.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		discountPrice := decimal.Zero
		if dp := c.PostForm("discount_price"); dp != "" {
			discountPrice, err = decimal.NewFromString(dp)
			if err != nil || discountPrice.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount_price"})
				return
			}
			if discountPrice.GreaterThanOrEqual(price) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "discount_price must be lower than price"})
				return
			}
		}

		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
			return
		}
		var category models.Category
		if err := db.First(&category, "id = ?", categoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}

		stock := 0
		if s := c.PostForm("stock"); s != "" {
			if stock, err = strconv.Atoi(s); err != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}

		var imageURL string
		if file, err := c.FormFile("image"); err == nil {
			imageURL, err = saveUpload(c, media, "products", file)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", err)})
				return
			}
		}

		product := models.Product{
			CategoryID:       category.ID,
			Name:             name,
			ShortDescription: c.PostForm("short_description"),
			Description:      c.PostForm("description"),
			Price:            price,
			DiscountPrice:    discountPrice,
			Image:            imageURL,
			Stock:            stock,
			IsFeatured:       c.PostForm("is_featured") == "true",
			Badge:            c.PostForm("badge"),
		}

		// Key benefits arrive one per line, mirroring the admin form field.
		benefits := strings.Split(c.PostForm("key_benefits"), "\n")

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
			for _, b := range benefits {
				b = strings.TrimSpace(b)
				if b == "" {
					continue
				}
				if err := tx.Create(&models.ProductBenefit{ProductID: product.ID, Title: b}).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB, media config.MediaConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		updates := make(map[string]interface{})
		if v := c.PostForm("name"); v != "" {
			updates["name"] = v
		}
		if v := c.PostForm("short_description"); v != "" {
			updates["short_description"] = v
		}
		if v := c.PostForm("description"); v != "" {
			updates["description"] = v
		}
		if v := c.PostForm("price"); v != "" {
			price, err := decimal.NewFromString(v)
			if err != nil || !price.IsPositive() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			updates["price"] = price
		}
		if v := c.PostForm("discount_price"); v != "" {
			dp, err := decimal.NewFromString(v)
			if err != nil || dp.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount_price"})
				return
			}
			updates["discount_price"] = dp
		}
		if v := c.PostForm("stock"); v != "" {
			stock, err := strconv.Atoi(v)
			if err != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
			updates["stock"] = stock
		}
		if v := c.PostForm("category_id"); v != "" {
			cid, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			updates["category_id"] = uint(cid)
		}
		if v := c.PostForm("badge"); v != "" {
			updates["badge"] = v
		}
		if v := c.PostForm("is_featured"); v != "" {
			updates["is_featured"] = v == "true"
		}
		if file, err := c.FormFile("image"); err == nil {
			imageURL, err := saveUpload(c, media, "products", file)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			updates["image"] = imageURL
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
		}

		c.JSON(http.StatusOK, product)
	}
}

// DELETE /admin/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Product{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
