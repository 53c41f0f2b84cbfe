package cartControllers

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/irfannaqieb/nextjs-store/models"
)

// Recalculate derives the cart's totals from its full current line-item set
// and persists them onto the cart row. Always called inside the same
// transaction as the mutation that made the totals stale.
//
// num_items  = sum of amounts
// cart_total = sum of amount * product price
// tax        = cart_total * tax_rate, rounded to 2 decimals (half away from zero)
// shipping   = configured shipping when cart_total > 0, else 0
// order_total = cart_total + tax + shipping
func Recalculate(tx *gorm.DB, cart *models.Cart) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := tx.Preload("Product").
		Where("cart_id = ?", cart.CartID).
		Order("created_at asc, id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}

	numItems := 0
	cartTotal := decimal.Zero
	for _, item := range items {
		numItems += item.Amount
		cartTotal = cartTotal.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Amount))))
	}

	tax := cartTotal.Mul(cart.TaxRate).Round(2)
	shipping := decimal.Zero
	if cartTotal.IsPositive() {
		shipping = cart.Shipping
	}
	orderTotal := cartTotal.Add(tax).Add(shipping)

	updates := map[string]interface{}{
		"num_items_in_cart": numItems,
		"cart_total":        cartTotal,
		"tax":               tax,
		"order_total":       orderTotal,
	}
	if err := tx.Model(cart).Updates(updates).Error; err != nil {
		return nil, err
	}

	cart.NumItemsInCart = numItems
	cart.CartTotal = cartTotal
	cart.Tax = tax
	cart.OrderTotal = orderTotal
	cart.Items = items
	return items, nil
}
