package favoriteControllers

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

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Favorite{}))
	return db
}

func createProduct(t *testing.T, db *gorm.DB) models.Product {
	t.Helper()

	product := models.Product{
		Name:    "chair",
		Company: "Acme",
		Price:   decimal.RequireFromString("10.00"),
		Image:   "/uploads/products/chair.jpg",
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestToggleFavorite(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db)

	// First toggle adds
	favorited, err := Toggle(db, "user-1", product.ID)
	require.NoError(t, err)
	assert.True(t, favorited)

	id, err := FavoriteID(db, "user-1", product.ID)
	require.NoError(t, err)
	assert.NotZero(t, id)

	// Second toggle removes
	favorited, err = Toggle(db, "user-1", product.ID)
	require.NoError(t, err)
	assert.False(t, favorited)

	id, err = FavoriteID(db, "user-1", product.ID)
	require.NoError(t, err)
	assert.Zero(t, id)
}

func TestToggleUnknownProduct(t *testing.T) {
	db := setupTestDB(t)

	_, err := Toggle(db, "user-1", 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestFavoritesAreScopedPerUser(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db)

	_, err := Toggle(db, "user-1", product.ID)
	require.NoError(t, err)

	id, err := FavoriteID(db, "user-2", product.ID)
	require.NoError(t, err)
	assert.Zero(t, id, "favorites must not leak across users")
}

func TestListForUserPreloadsProducts(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db)

	_, err := Toggle(db, "user-1", product.ID)
	require.NoError(t, err)

	favorites, err := ListForUser(db, "user-1")
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, product.Name, favorites[0].Product.Name)
}
