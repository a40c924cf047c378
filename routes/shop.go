package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/config"
	productcontroller "github.com/sindhu-coder-byte/Kani-medical-ecomm/controllers/product"
	shopControllers "github.com/sindhu-coder-byte/Kani-medical-ecomm/controllers/shop"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/middleware"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/session"
	"gorm.io/gorm"
)

func SetupShopRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, guestCarts *session.Store) {
	// The home page shows a cart count for guests and users alike.
	r.GET("/", middleware.OptionalToken(cfg.JWTSecret), shopControllers.Home(db, guestCarts, cfg.Media))
	r.GET("/about", shopControllers.About())
	r.GET("/contact", shopControllers.ContactPage())
	r.POST("/contact", shopControllers.SubmitContact(db))

	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:product_id", productcontroller.GetProductByID(db))
	r.POST("/products/:product_id/reviews",
		middleware.ValidateToken(cfg.JWTSecret), productcontroller.CreateReview(db))

	r.GET("/categories", productcontroller.GetAllCategoriesWithProducts(db))
	r.GET("/categories/:id", productcontroller.GetCategoryByID(db))
}
