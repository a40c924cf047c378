package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/config"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/payment"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/session"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, gateway *payment.Client, guestCarts *session.Store) {
	// Public storefront pages + catalog browsing
	SetupShopRoutes(r, db, cfg, guestCarts)

	// Signup / login / logout / guest sessions
	SetupAuthRoutes(r, db, cfg, guestCarts)

	// Cart and checkout (JWT-protected, plus guest cart endpoints)
	SetupCartRoutes(r, db, cfg, gateway, guestCarts)

	// Order success / tracking / user order history
	SetupOrderRoutes(r, db, cfg)

	// Admin catalog management (API-key-protected)
	SetupAdminRoutes(r, db, cfg)
}
