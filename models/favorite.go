package models

import "time"

// Favorite has join-table semantics: the row existing means the product is
// favorited by the user.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null;uniqueIndex:idx_favorite_user_product" json:"user_id"`
	ProductID uint      `gorm:"index;not null;uniqueIndex:idx_favorite_user_product" json:"product_id"`
	Product   Product   `json:"product"`
	CreatedAt time.Time `json:"created_at"`
}
