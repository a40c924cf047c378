package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID               uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID       uint            `gorm:"index;not null" json:"category_id"`
	Category         Category        `json:"category,omitempty"`
	Name             string          `gorm:"not null" json:"name"`
	ShortDescription string          `json:"short_description"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	// DiscountPrice of zero means no discount.
	DiscountPrice decimal.Decimal `gorm:"type:numeric(10,2)" json:"discount_price"`
	Image         string          `json:"image"`
	Stock         int             `gorm:"default:0;check:stock >= 0" json:"stock"`
	Rating        uint            `gorm:"default:0" json:"rating"`
	RatingCount   uint            `gorm:"default:0" json:"rating_count"`
	IsFeatured    bool            `gorm:"default:false" json:"is_featured"`
	Badge         string          `json:"badge"`

	Images     []ProductImage     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Thumbnails []ProductThumbnail `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"thumbnails,omitempty"`
	UserImages []ProductUserImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"user_images,omitempty"`
	Benefits   []ProductBenefit   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"benefits,omitempty"`
	Reviews    []Review           `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// InStock reports whether the product can currently be purchased.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// HasDiscount reports whether the discount price is set and actually lower
// than the listed price. A zero or inflated discount price is ignored.
func (p *Product) HasDiscount() bool {
	return p.DiscountPrice.IsPositive() && p.DiscountPrice.LessThan(p.Price)
}

// FinalPrice is the price shown to the customer: the discount price when a
// valid discount exists, otherwise the listed price.
func (p *Product) FinalPrice() decimal.Decimal {
	if p.HasDiscount() {
		return p.DiscountPrice
	}
	return p.Price
}

// Offer returns the discount as a percentage string ("20%"), or "" when the
// product has no valid discount.
func (p *Product) Offer() string {
	if !p.HasDiscount() || !p.Price.IsPositive() {
		return ""
	}
	percent := p.Price.Sub(p.DiscountPrice).
		Div(p.Price).
		Mul(decimal.NewFromInt(100)).
		IntPart()
	return fmt.Sprintf("%d%%", percent)
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	Image     string `gorm:"not null" json:"image"`
}

type ProductThumbnail struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	Image     string `gorm:"not null" json:"image"`
}

// ProductUserImage is a customer-uploaded photo attached to a product.
type ProductUserImage struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID  uint      `gorm:"index;not null" json:"product_id"`
	UserID     string    `gorm:"index;not null" json:"user_id"`
	Image      string    `gorm:"not null" json:"image"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

type ProductBenefit struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	Title     string `gorm:"not null" json:"title"`
}
