package productcontroller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductThumbnail{},
		&models.ProductBenefit{},
		&models.Review{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) (models.Category, models.Category) {
	t.Helper()

	devices := models.Category{Name: "Health Devices"}
	care := models.Category{Name: "Baby Care"}
	if err := db.Create(&devices).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	if err := db.Create(&care).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	products := []models.Product{
		{CategoryID: devices.ID, Name: "Thermometer", Price: decimal.RequireFromString("200.00"), Stock: 5, IsFeatured: true},
		{CategoryID: devices.ID, Name: "BP Monitor", Price: decimal.RequireFromString("1500.00"), Stock: 2},
		{CategoryID: devices.ID, Name: "Pulse Oximeter", Price: decimal.RequireFromString("900.00"), Stock: 0},
		{CategoryID: care.ID, Name: "Baby Lotion", Price: decimal.RequireFromString("120.00"), Stock: 8, IsFeatured: true},
	}
	if err := db.Create(&products).Error; err != nil {
		t.Fatalf("failed to seed products: %v", err)
	}
	return devices, care
}

func catalogRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", GetProducts(db))
	r.GET("/products/:product_id", GetProductByID(db))
	r.POST("/products/:product_id/reviews", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Next()
	}, CreateReview(db))
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func listProducts(t *testing.T, r *gin.Engine, path string) []models.Product {
	t.Helper()

	w := get(r, path)
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s: status = %d: %s", path, w.Code, w.Body.String())
	}
	var products []models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	return products
}

func TestGetProductsFilterByCategory(t *testing.T) {
	db := testDB(t)
	devices, _ := seedCatalog(t, db)
	r := catalogRouter(db)

	products := listProducts(t, r, "/products?category_id=1")
	if len(products) != 3 {
		t.Fatalf("product count = %d, want 3 in category %d", len(products), devices.ID)
	}
	for _, p := range products {
		if p.CategoryID != devices.ID {
			t.Fatalf("product %q leaked from category %d", p.Name, p.CategoryID)
		}
	}
}

func TestGetProductsFeaturedOnly(t *testing.T) {
	db := testDB(t)
	seedCatalog(t, db)
	r := catalogRouter(db)

	products := listProducts(t, r, "/products?featured=1")
	if len(products) != 2 {
		t.Fatalf("featured count = %d, want 2", len(products))
	}
	for _, p := range products {
		if !p.IsFeatured {
			t.Fatalf("product %q is not featured", p.Name)
		}
	}
}

func TestGetProductsPriceRangeAndSort(t *testing.T) {
	db := testDB(t)
	seedCatalog(t, db)
	r := catalogRouter(db)

	products := listProducts(t, r, "/products?min_price=150&max_price=1000&sort_by=price&order=asc")
	if len(products) != 2 {
		t.Fatalf("product count = %d, want 2 in range", len(products))
	}
	if products[0].Name != "Thermometer" || products[1].Name != "Pulse Oximeter" {
		t.Fatalf("wrong order: %s, %s", products[0].Name, products[1].Name)
	}
}

func TestGetProductsRejectsBadPrice(t *testing.T) {
	db := testDB(t)
	seedCatalog(t, db)
	r := catalogRouter(db)

	if w := get(r, "/products?min_price=cheap"); w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetProductByID(t *testing.T) {
	db := testDB(t)
	seedCatalog(t, db)
	if err := db.Create(&models.ProductBenefit{ProductID: 1, Title: "Fast readings"}).Error; err != nil {
		t.Fatalf("failed to seed benefit: %v", err)
	}
	if err := db.Create(&models.ProductImage{ProductID: 1, Image: "/media/products/thermo.png"}).Error; err != nil {
		t.Fatalf("failed to seed image: %v", err)
	}
	r := catalogRouter(db)

	w := get(r, "/products/1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Product         models.Product   `json:"product"`
		InStock         bool             `json:"in_stock"`
		FinalPrice      decimal.Decimal  `json:"final_price"`
		RelatedProducts []models.Product `json:"related_products"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Product.Name != "Thermometer" {
		t.Fatalf("product = %q, want Thermometer", resp.Product.Name)
	}
	if !resp.InStock {
		t.Fatalf("thermometer should be in stock")
	}
	if !resp.FinalPrice.Equal(decimal.RequireFromString("200.00")) {
		t.Fatalf("final price = %s, want 200.00", resp.FinalPrice)
	}
	if len(resp.Product.Benefits) != 1 || resp.Product.Benefits[0].Title != "Fast readings" {
		t.Fatalf("benefits = %+v, want the seeded benefit", resp.Product.Benefits)
	}
	if len(resp.Product.Images) != 1 {
		t.Fatalf("images = %+v, want the seeded image", resp.Product.Images)
	}

	// Related products come from the same category and exclude the product
	// itself.
	if len(resp.RelatedProducts) != 2 {
		t.Fatalf("related count = %d, want 2", len(resp.RelatedProducts))
	}
	for _, p := range resp.RelatedProducts {
		if p.ID == resp.Product.ID {
			t.Fatalf("product must not be related to itself")
		}
		if p.CategoryID != resp.Product.CategoryID {
			t.Fatalf("related product %q is from another category", p.Name)
		}
	}
}

func TestGetProductByIDMissing(t *testing.T) {
	db := testDB(t)
	r := catalogRouter(db)

	if w := get(r, "/products/99"); w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestCreateReviewUpdatesAggregate(t *testing.T) {
	db := testDB(t)
	seedCatalog(t, db)
	r := catalogRouter(db)

	post := func(rating int) *httptest.ResponseRecorder {
		body, _ := json.Marshal(ReviewRequest{Rating: rating, Comment: "works well"})
		req := httptest.NewRequest(http.MethodPost, "/products/1/reviews", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := post(4); w.Code != http.StatusCreated {
		t.Fatalf("first review: status = %d: %s", w.Code, w.Body.String())
	}
	if w := post(2); w.Code != http.StatusCreated {
		t.Fatalf("second review: status = %d: %s", w.Code, w.Body.String())
	}

	var product models.Product
	if err := db.First(&product, 1).Error; err != nil {
		t.Fatalf("failed to reload product: %v", err)
	}
	if product.RatingCount != 2 {
		t.Fatalf("rating count = %d, want 2", product.RatingCount)
	}
	if product.Rating != 3 {
		t.Fatalf("rating = %d, want 3 (average of 4 and 2)", product.Rating)
	}

	var reviews int64
	db.Model(&models.Review{}).Where("product_id = ?", 1).Count(&reviews)
	if reviews != 2 {
		t.Fatalf("review rows = %d, want 2", reviews)
	}
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	db := testDB(t)
	seedCatalog(t, db)
	r := catalogRouter(db)

	body, _ := json.Marshal(ReviewRequest{Rating: 6})
	req := httptest.NewRequest(http.MethodPost, "/products/1/reviews", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
