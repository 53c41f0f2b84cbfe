package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart holds a user's in-progress items plus the derived totals. The four
// derived columns (NumItemsInCart, CartTotal, Tax, OrderTotal) are recomputed
// from the full line-item set after every mutation and are never left stale.
type Cart struct {
	CartID         uint            `gorm:"primaryKey" json:"cart_id"`
	UserID         string          `gorm:"uniqueIndex;not null" json:"user_id"` // Enforces ONE cart per user
	NumItemsInCart int             `json:"num_items_in_cart"`
	CartTotal      decimal.Decimal `gorm:"type:numeric(12,2)" json:"cart_total"`
	Tax            decimal.Decimal `gorm:"type:numeric(12,2)" json:"tax"`
	TaxRate        decimal.Decimal `gorm:"type:numeric(5,4)" json:"tax_rate"`
	Shipping       decimal.Decimal `gorm:"type:numeric(12,2)" json:"shipping"`
	OrderTotal     decimal.Decimal `gorm:"type:numeric(12,2)" json:"order_total"`
	Items          []CartItem      `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"` // Cascade delete items if cart is deleted
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CartID    uint      `gorm:"index" json:"cart_id"` // Faster queries
	ProductID uint      `gorm:"not null" json:"product_id"`
	Amount    int       `gorm:"not null" json:"amount"`
	Product   Product   `json:"product"`
	CreatedAt time.Time `json:"created_at"` // Recompute iterates items oldest first
	UpdatedAt time.Time `json:"updated_at"`
}
