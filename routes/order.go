package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/config"
	checkoutControllers "github.com/sindhu-coder-byte/Kani-medical-ecomm/controllers/checkout"
	orderControllers "github.com/sindhu-coder-byte/Kani-medical-ecomm/controllers/order"
	userControllers "github.com/sindhu-coder-byte/Kani-medical-ecomm/controllers/user"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	r.GET("/order-success/:order_id", middleware.ValidateToken(cfg.JWTSecret), checkoutControllers.OrderSuccess(db))

	// Tracking is public: order id + email is the proof of ownership.
	r.POST("/track/:order_id", orderControllers.TrackOrder(db))

	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		userGroup.GET("", userControllers.GetUser(db))
		userGroup.PUT("", userControllers.UpdateUser(db))
		userGroup.GET("/orders", orderControllers.GetUserOrders(db))
	}

	// Live order feed for the admin panel.
	r.GET("/orders/ws", orderControllers.OrderWebSocket)
}
