package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"

	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"

	PaymentMethodCOD    = "Cash on Delivery"
	PaymentMethodOnline = "Paid Online"
)

type Order struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef string `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID   string `gorm:"index;not null" json:"user_id"`
	User     User   `json:"user,omitempty"`

	// Customer contact fields as submitted at checkout
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `gorm:"index" json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`

	Total         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total"`
	Status        OrderStatus     `gorm:"type:varchar(20);default:'placed'" json:"status"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(20);default:'Pending'" json:"payment_status"`

	// Gateway references, empty for cash on delivery
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `gorm:"index" json:"razorpay_payment_id"`
	RazorpaySignature string `json:"-"`

	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderItem is an immutable snapshot of one cart line taken when the order
// was placed. Price is frozen so later catalog changes never alter
// historical orders.
type OrderItem struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     uint            `gorm:"index;not null" json:"order_id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
}
