package cartControllers

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/irfannaqieb/nextjs-store/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
	))
	return db
}

func createProduct(t *testing.T, db *gorm.DB, name, price string) models.Product {
	t.Helper()

	product := models.Product{
		Name:    name,
		Company: "Acme",
		Price:   decimal.RequireFromString(price),
		Image:   "/uploads/products/" + name + ".jpg",
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)),
		"want %s, got %s", want, got.String())
}

func TestAddToCartCreatesCartAndItem(t *testing.T) {
	db := setupTestDB(t)
	t.Setenv("CART_TAX_RATE", "0.1")
	t.Setenv("CART_SHIPPING_FEE", "5")

	product := createProduct(t, db, "chair", "10.00")

	cart, err := AddToCart(db, "user-1", product.ID, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, cart.NumItemsInCart)
	assertDecimal(t, "20.00", cart.CartTotal)
	assertDecimal(t, "2.00", cart.Tax)
	assertDecimal(t, "5.00", cart.Shipping)
	assertDecimal(t, "27.00", cart.OrderTotal)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, product.ID, cart.Items[0].ProductID)
}

func TestAddToCartIncrementsExistingItem(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "sofa", "100.00")

	_, err := AddToCart(db, "user-1", product.ID, 1)
	require.NoError(t, err)
	cart, err := AddToCart(db, "user-1", product.ID, 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Amount)
	assert.Equal(t, 4, cart.NumItemsInCart)
	assertDecimal(t, "400.00", cart.CartTotal)

	// Still one cart for the user
	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Where("user_id = ?", "user-1").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	db := setupTestDB(t)

	_, err := AddToCart(db, "user-1", 999, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)

	// Failed add must not leave a cart behind
	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestAddToCartRejectsNonPositiveAmount(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "lamp", "15.00")

	_, err := AddToCart(db, "user-1", product.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestUpdateItemAmountSetsExplicitValue(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "desk", "10.00")

	cart, err := AddToCart(db, "user-1", product.ID, 2)
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	// 5 is the new amount, not an increment
	cart, err = UpdateItemAmount(db, "user-1", itemID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.NumItemsInCart)
	assertDecimal(t, "50.00", cart.CartTotal)
}

func TestUpdateItemAmountWithoutCart(t *testing.T) {
	db := setupTestDB(t)

	_, err := UpdateItemAmount(db, "user-1", 1, 2)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestRemoveItemZeroesTotals(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "rug", "10.00")

	cart, err := AddToCart(db, "user-1", product.ID, 2)
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	cart, err = RemoveItem(db, "user-1", itemID)
	require.NoError(t, err)

	assert.Equal(t, 0, cart.NumItemsInCart)
	assertDecimal(t, "0", cart.CartTotal)
	assertDecimal(t, "0", cart.Tax)
	assertDecimal(t, "0", cart.OrderTotal)
	assert.Empty(t, cart.Items)
}

func TestRemoveItemOwnershipCheck(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "vase", "25.00")

	owner, err := AddToCart(db, "user-1", product.ID, 1)
	require.NoError(t, err)

	// The other user has a cart of their own but does not own the item.
	_, err = AddToCart(db, "user-2", product.ID, 1)
	require.NoError(t, err)

	_, err = RemoveItem(db, "user-2", owner.Items[0].ID)
	assert.ErrorIs(t, err, ErrCartItemNotFound)

	// The owner's item is untouched
	var item models.CartItem
	require.NoError(t, db.First(&item, owner.Items[0].ID).Error)
}

func TestItemCount(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "shelf", "30.00")

	count, err := ItemCount(db, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = AddToCart(db, "user-1", product.ID, 3)
	require.NoError(t, err)

	count, err = ItemCount(db, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
