package favoriteControllers

import (
	"errors"

	"gorm.io/gorm"

	"github.com/irfannaqieb/nextjs-store/models"
)

var ErrProductNotFound = errors.New("product not found")

// FavoriteID returns the id of the user's favorite for the product, or 0.
func FavoriteID(db *gorm.DB, userID string, productID uint) (uint, error) {
	var favorite models.Favorite
	err := db.Select("id").
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&favorite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return favorite.ID, nil
}

// Toggle flips the favorite's existence and reports the resulting membership.
func Toggle(db *gorm.DB, userID string, productID uint) (bool, error) {
	var favorited bool
	err := db.Transaction(func(tx *gorm.DB) error {
		id, err := FavoriteID(tx, userID, productID)
		if err != nil {
			return err
		}

		if id != 0 {
			favorited = false
			return tx.Delete(&models.Favorite{}, id).Error
		}

		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		favorited = true
		return tx.Create(&models.Favorite{UserID: userID, ProductID: productID}).Error
	})
	return favorited, err
}

// ListForUser returns the user's favorites with products preloaded.
func ListForUser(db *gorm.DB, userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}
