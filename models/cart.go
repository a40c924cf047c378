package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is one line of an authenticated user's cart. One row per
// (user, product) pair, maintained by get-or-create logic in the cart
// controller rather than a declared uniqueness constraint.
type Cart struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"index:idx_cart_user_product;not null" json:"user_id"`
	ProductID uint      `gorm:"index:idx_cart_user_product;not null" json:"product_id"`
	Product   Product   `json:"product"`
	Quantity  int       `gorm:"default:1;not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// LineTotal is the amount charged for this line at the effective price.
func (l *Cart) LineTotal() decimal.Decimal {
	return l.Product.FinalPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartTotals is the pricing aggregate shown on the cart page and charged
// at checkout.
type CartTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeCartTotals aggregates cart lines:
//
//	subtotal = sum(listed price * qty)
//	discount = sum((listed price - effective price) * qty)
//	total    = subtotal - discount
//
// Lines must have Product preloaded.
func ComputeCartTotals(lines []Cart) CartTotals {
	subtotal := decimal.Zero
	discount := decimal.Zero

	for _, line := range lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		listed := line.Product.Price
		effective := line.Product.FinalPrice()

		subtotal = subtotal.Add(listed.Mul(qty))
		discount = discount.Add(listed.Sub(effective).Mul(qty))
	}

	return CartTotals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal.Sub(discount),
	}
}

// CountCartItems is the quantity sum shown in the page header. Guest and
// authenticated carts use the same aggregation.
func CountCartItems(lines []Cart) int {
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}
