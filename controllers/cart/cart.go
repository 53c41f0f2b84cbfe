package cartControllers

import (
	"errors"
	"os"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/irfannaqieb/nextjs-store/models"
)

var (
	defaultTaxRate  = decimal.RequireFromString("0.1")
	defaultShipping = decimal.RequireFromString("5")
)

func envDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return fallback
}

// FetchOrCreateCart returns the user's cart, creating one with the configured
// tax rate and shipping fee when absent. With errorOnMissing set, a missing
// cart is ErrCartNotFound instead (checkout and item updates never create carts).
func FetchOrCreateCart(tx *gorm.DB, userID string, errorOnMissing bool) (*models.Cart, error) {
	var cart models.Cart
	err := tx.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if errorOnMissing {
			return nil, ErrCartNotFound
		}
		cart = models.Cart{
			UserID:   userID,
			TaxRate:  envDecimal("CART_TAX_RATE", defaultTaxRate),
			Shipping: envDecimal("CART_SHIPPING_FEE", defaultShipping),
		}
		if err := tx.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddToCart adds amount of the product to the user's cart, incrementing the
// existing line item when there is one. The whole mutate-then-recompute
// sequence runs in a single transaction.
func AddToCart(db *gorm.DB, userID string, productID uint, amount int) (*models.Cart, error) {
	if amount < 1 {
		return nil, ErrInvalidAmount
	}

	var cart *models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		var err error
		cart, err = FetchOrCreateCart(tx, userID, false)
		if err != nil {
			return err
		}

		var item models.CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = models.CartItem{CartID: cart.CartID, ProductID: productID, Amount: amount}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else {
			item.Amount += amount
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
		}

		_, err = Recalculate(tx, cart)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateItemAmount sets the line item's amount to an explicit value (not an
// increment). The ownership check is part of the update predicate.
func UpdateItemAmount(db *gorm.DB, userID string, cartItemID uint, amount int) (*models.Cart, error) {
	if amount < 1 {
		return nil, ErrInvalidAmount
	}

	var cart *models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		cart, err = FetchOrCreateCart(tx, userID, true)
		if err != nil {
			return err
		}

		res := tx.Model(&models.CartItem{}).
			Where("id = ? AND cart_id = ?", cartItemID, cart.CartID).
			Update("amount", amount)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCartItemNotFound
		}

		_, err = Recalculate(tx, cart)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem deletes the line item, constrained to the caller's own cart.
// Zero rows affected means the item does not exist or belongs to someone else.
func RemoveItem(db *gorm.DB, userID string, cartItemID uint) (*models.Cart, error) {
	var cart *models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		cart, err = FetchOrCreateCart(tx, userID, true)
		if err != nil {
			return err
		}

		res := tx.Where("id = ? AND cart_id = ?", cartItemID, cart.CartID).Delete(&models.CartItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCartItemNotFound
		}

		_, err = Recalculate(tx, cart)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// ItemCount returns the cart badge count; a user without a cart has zero items.
func ItemCount(db *gorm.DB, userID string) (int, error) {
	var cart models.Cart
	err := db.Select("num_items_in_cart").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return cart.NumItemsInCart, nil
}
