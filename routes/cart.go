package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/config"
	cartControllers "github.com/sindhu-coder-byte/Kani-medical-ecomm/controllers/cart"
	checkoutControllers "github.com/sindhu-coder-byte/Kani-medical-ecomm/controllers/checkout"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/middleware"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/payment"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/session"
	"gorm.io/gorm"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, gateway *payment.Client, guestCarts *session.Store) {
	// Header badge works with or without a session.
	r.GET("/cart/count", middleware.OptionalToken(cfg.JWTSecret), cartControllers.CartCount(db, guestCarts))

	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		cartGroup.GET("", cartControllers.GetCart(db, gateway))
		cartGroup.POST("/add/:product_id", cartControllers.AddToCart(db))
		cartGroup.DELETE("/:product_id", cartControllers.RemoveFromCart(db))
	}

	r.POST("/checkout", middleware.ValidateToken(cfg.JWTSecret), checkoutControllers.Checkout(db, gateway))

	guestGroup := r.Group("/guest/cart")
	{
		guestGroup.GET("", cartControllers.GetGuestCart(db, guestCarts))
		guestGroup.POST("/add/:product_id", cartControllers.AddToGuestCart(db, guestCarts))
	}
}
