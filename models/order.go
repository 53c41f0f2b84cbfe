package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is an immutable snapshot of a cart's totals taken at checkout. Only
// the IsPaid flag changes afterwards, when the payment step confirms.
type Order struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	OrderRef   string          `gorm:"uniqueIndex" json:"order_ref"`
	UserID     string          `gorm:"index;not null" json:"user_id"`
	Products   int             `json:"products"` // item count at checkout time
	OrderTotal decimal.Decimal `gorm:"type:numeric(12,2)" json:"order_total"`
	Tax        decimal.Decimal `gorm:"type:numeric(12,2)" json:"tax"`
	Shipping   decimal.Decimal `gorm:"type:numeric(12,2)" json:"shipping"`
	Email      string          `gorm:"not null" json:"email"`
	IsPaid     bool            `gorm:"default:false;index" json:"is_paid"`
	CreatedAt  time.Time       `json:"created_at"`
}
