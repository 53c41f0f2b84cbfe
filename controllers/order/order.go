package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cartControllers "github.com/irfannaqieb/nextjs-store/controllers/cart"
	"github.com/irfannaqieb/nextjs-store/models"
)

var ErrOrderNotFound = errors.New("order not found")

// generateOrderRef returns a unique order reference, e.g. 20250908130500-<uuid4>.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	return uint(id), err
}

// -------- Core Logic --------

// PlaceOrder converts the user's cart into an order. The whole sequence runs
// in one transaction: purge the user's stale unpaid orders, snapshot the
// cart's totals into a new unpaid order, then delete the cart. Returns the
// new order and the id of the now-deleted cart for the payment step.
//
// Checkout requires the cart to already exist; it is never the cart-creation
// path.
func PlaceOrder(db *gorm.DB, userID, email string) (*models.Order, uint, error) {
	var order models.Order
	var cartID uint

	err := db.Transaction(func(tx *gorm.DB) error {
		cart, err := cartControllers.FetchOrCreateCart(tx, userID, true)
		if err != nil {
			return err
		}
		cartID = cart.CartID

		// At most one unpaid order per user: abandoned checkouts are
		// discarded, not accumulated.
		if err := tx.Where("user_id = ? AND is_paid = ?", userID, false).
			Delete(&models.Order{}).Error; err != nil {
			return err
		}

		order = models.Order{
			OrderRef:   generateOrderRef(),
			UserID:     userID,
			Products:   cart.NumItemsInCart,
			OrderTotal: cart.OrderTotal,
			Tax:        cart.Tax,
			Shipping:   cart.Shipping,
			Email:      email,
			IsPaid:     false,
			CreatedAt:  time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Retire the cart and its line items.
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Cart{}, "cart_id = ?", cart.CartID).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	broadcastNewOrder(order)
	return &order, cartID, nil
}

// ConfirmPayment flips the order's paid flag once the payment step succeeds.
func ConfirmPayment(db *gorm.DB, orderID uint, userID string) error {
	res := db.Model(&models.Order{}).
		Where("id = ? AND user_id = ?", orderID, userID).
		Update("is_paid", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// -------- Handlers --------

// POST /user/orders — checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		email := c.GetString("email")

		order, cartID, err := PlaceOrder(db, userID, email)
		if err != nil {
			if errors.Is(err, cartControllers.ErrCartNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"order":   order,
			"cart_id": cartID,
		})
	}
}

// POST /user/orders/:orderID/confirm-payment
func ConfirmPaymentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		orderID, err := parseID(c.Param("orderID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		if err := ConfirmPayment(db, orderID, userID); err != nil {
			if errors.Is(err, ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment confirmed"})
	}
}

// GET /user/orders — the caller's paid orders, newest first
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var orders []models.Order
		if err := db.
			Where("user_id = ? AND is_paid = ?", userID, true).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders — all paid orders, newest first
func GetAdminOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Where("is_paid = ?", true).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
