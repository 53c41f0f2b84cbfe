package reviewControllers

import (
	"errors"

	"gorm.io/gorm"

	"github.com/irfannaqieb/nextjs-store/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrReviewNotFound  = errors.New("review not found")
	ErrAlreadyReviewed = errors.New("product already reviewed by this user")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

// Rating is the aggregate a product page shows next to the stars.
type Rating struct {
	Rating float64 `json:"rating"` // average, one decimal
	Count  int64   `json:"count"`
}

// Create stores a review. One review per user per product.
func Create(db *gorm.DB, userID, authorName, authorImage string, productID uint, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	var review models.Review
	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		existing, err := FindExisting(tx, userID, productID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrAlreadyReviewed
		}

		review = models.Review{
			UserID:      userID,
			ProductID:   productID,
			Rating:      rating,
			Comment:     comment,
			AuthorName:  authorName,
			AuthorImage: authorImage,
		}
		return tx.Create(&review).Error
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// FindExisting returns the user's review of the product, or nil.
func FindExisting(db *gorm.DB, userID string, productID uint) (*models.Review, error) {
	var review models.Review
	err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListForProduct returns the product's reviews, newest first.
func ListForProduct(db *gorm.DB, productID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// ListForUser returns the user's reviews with the reviewed product preloaded.
func ListForUser(db *gorm.DB, userID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// ProductRating aggregates the product's average rating and review count.
// Both are zero when the product has no reviews.
func ProductRating(db *gorm.DB, productID uint) (Rating, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(rating) AS count").
		Where("product_id = ?", productID).
		Scan(&result).Error
	if err != nil {
		return Rating{}, err
	}
	// Round to one decimal, the precision the product page displays.
	return Rating{
		Rating: float64(int(result.Avg*10+0.5)) / 10,
		Count:  result.Count,
	}, nil
}

// Delete removes the review, constrained to the caller's own reviews via the
// delete predicate. Zero rows affected means not found (or not the owner).
func Delete(db *gorm.DB, userID string, reviewID uint) error {
	res := db.Where("id = ? AND user_id = ?", reviewID, userID).Delete(&models.Review{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}
