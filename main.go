package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/config"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/models"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/payment"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/routes"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/session"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting storefront...")

	cfg := config.Load()
	if len(cfg.JWTSecret) == 0 {
		log.Fatal("JWT_SECRET is not set in environment")
	}

	db := initDatabase(cfg)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductThumbnail{},
		&models.ProductUserImage{},
		&models.ProductBenefit{},
		&models.Review{},
		&models.Cart{},
		&models.Order{},
		&models.OrderItem{},
		&models.ContactMessage{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	seedDefaultCategories(db)

	guestCarts := session.NewStore(cfg.Redis)
	gateway := payment.NewClient(cfg.Razorpay)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY", "X-Guest-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded product/category images
	r.Static(cfg.Media.URL, cfg.Media.Root)

	routes.SetupRoutes(r, db, cfg, gateway, guestCarts)

	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	return db
}

// seedDefaultCategories makes sure the storefront's standard categories
// exist after migration.
func seedDefaultCategories(db *gorm.DB) {
	defaults := []string{
		"All Products",
		"Baby Care",
		"Health Devices",
		"Personal Care",
		"Skin Care",
		"Ayurvedic",
	}
	for _, name := range defaults {
		var category models.Category
		if err := db.Where(models.Category{Name: name}).FirstOrCreate(&category).Error; err != nil {
			log.Printf("failed to seed category %q: %v", name, err)
		}
	}
}
