package models

import "time"

type Review struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index;not null;uniqueIndex:idx_review_user_product" json:"user_id"`
	ProductID   uint      `gorm:"index;not null;uniqueIndex:idx_review_user_product" json:"product_id"`
	Rating      int       `gorm:"not null" json:"rating"` // 1..5
	Comment     string    `gorm:"not null" json:"comment"`
	AuthorName  string    `json:"author_name"`  // snapshot of the reviewer's profile
	AuthorImage string    `json:"author_image"` // at submission time
	Product     Product   `json:"product"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
