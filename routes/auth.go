package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/config"
	authControllers "github.com/sindhu-coder-byte/Kani-medical-ecomm/controllers/auth"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/session"
	"gorm.io/gorm"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, guestCarts *session.Store) {
	r.POST("/signup", authControllers.Signup(db))
	r.POST("/login", authControllers.Login(db, guestCarts, cfg.JWTSecret))
	r.POST("/logout", authControllers.Logout())

	r.POST("/auth/guest", authControllers.CreateGuest(cfg.JWTSecret))
}
