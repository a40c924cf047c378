package authControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/models"
	"github.com/sindhu-coder-byte/Kani-medical-ecomm/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SignupRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	// GuestID lets a guest carry their session cart into the account.
	GuestID string `json:"guest_id"`
}

// POST /signup
func Signup(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error(), "email": req.Email, "name": req.Name})
			return
		}

		if req.Password != req.ConfirmPassword {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match", "email": req.Email, "name": req.Name})
			return
		}

		var existing models.User
		if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered", "email": req.Email, "name": req.Name})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check account"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			Email:        req.Email,
			Name:         req.Name,
			Phone:        req.Phone,
			PasswordHash: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully! Please login."})
	}
}

// POST /login
func Login(db *gorm.DB, guestCarts *session.Store, jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error(), "email": req.Email})
			return
		}

		var user models.User
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password", "email": req.Email})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password", "email": req.Email})
			return
		}

		mergeStatus := "no-guest-cart"
		if req.GuestID != "" {
			if err := mergeGuestCart(c, db, guestCarts, req.GuestID, user.ID); err != nil {
				mergeStatus = "merge-failed"
			} else {
				mergeStatus = "merged"
			}
		}

		token, err := issueToken(user.ID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Welcome " + user.Name + "!",
			"token":        token,
			"user":         user,
			"merge_status": mergeStatus,
		})
	}
}

// POST /logout
//
// Sessions are stateless tokens, so logout is a client-side discard; the
// endpoint exists so the frontend has something to redirect through.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully."})
	}
}

// POST /auth/guest mints a guest id for an anonymous visitor's session cart.
func CreateGuest(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := "guest_" + uuid.NewString()

		token, err := issueGuestToken(guestID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"guest_id": guestID,
			"token":    token,
		})
	}
}

// mergeGuestCart folds each session cart entry into the user's durable
// cart with the same get-or-create increment used by add-to-cart, then
// drops the session cart.
func mergeGuestCart(c *gin.Context, db *gorm.DB, guestCarts *session.Store, guestID, userID string) error {
	ctx := c.Request.Context()

	cart, err := guestCarts.Get(ctx, guestID)
	if err != nil {
		return err
	}
	if len(cart) == 0 {
		return nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for productID, qty := range cart {
			var product models.Product
			if err := tx.First(&product, "id = ?", productID).Error; err != nil {
				// Product vanished since the guest added it; skip.
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}

			var line models.Cart
			err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&line).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				line = models.Cart{UserID: userID, ProductID: productID, Quantity: qty, CreatedAt: time.Now()}
				if err := tx.Create(&line).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}

			line.Quantity += qty
			if err := tx.Save(&line).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return guestCarts.Clear(ctx, guestID)
}

func issueToken(userID string, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    "user",
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func issueGuestToken(guestID string, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"user_id": guestID,
		"role":    "guest",
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
