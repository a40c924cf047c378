package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/config"
	adminController "github.com/sindhu-coder-byte/Kani-medical-ecomm/controllers/admin"
	orderControllers "github.com/sindhu-coder-byte/Kani-medical-ecomm/controllers/order"
	userControllers "github.com/sindhu-coder-byte/Kani-medical-ecomm/controllers/user"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/middleware"
	"gorm.io/gorm"
)

func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(cfg.AdminAPIKey))
	{
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", adminController.CreateProduct(db, cfg.Media))
			productAdmin.PUT("/:id", adminController.UpdateProduct(db, cfg.Media))
			productAdmin.DELETE("/:id", adminController.DeleteProduct(db))
			productAdmin.POST("/:id/images", adminController.AddProductImage(db, cfg.Media))
			productAdmin.POST("/:id/thumbnails", adminController.AddProductThumbnail(db, cfg.Media))
			productAdmin.GET("/export-excel", adminController.ExportProductsToExcel(db))
		}

		adminGroup.DELETE("/thumbnails/:id", adminController.DeleteProductThumbnail(db))

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", adminController.CreateCategory(db))
			categoryAdmin.PUT("/:id", adminController.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", adminController.DeleteCategory(db))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(db))
			orderAdmin.PUT("/:order_id/status", orderControllers.UpdateOrderStatus(db))
			orderAdmin.PUT("/:order_id/payment-status", orderControllers.UpdatePaymentStatus(db))
		}

		adminGroup.GET("/users", userControllers.GetAllUsers(db))
	}
}
