package reviewControllers

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

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Review{}))
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

func TestCreateReview(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db)

	review, err := Create(db, "user-1", "Jane", "/jane.jpg", product.ID, 4, "solid chair")
	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "Jane", review.AuthorName)

	// One review per user per product
	_, err = Create(db, "user-1", "Jane", "/jane.jpg", product.ID, 5, "changed my mind")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)

	// Another user may still review it
	_, err = Create(db, "user-2", "Sam", "/sam.jpg", product.ID, 5, "love it")
	require.NoError(t, err)
}

func TestCreateReviewValidation(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db)

	_, err := Create(db, "user-1", "Jane", "", product.ID, 0, "bad rating")
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = Create(db, "user-1", "Jane", "", product.ID, 6, "bad rating")
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = Create(db, "user-1", "Jane", "", 999, 3, "no such product")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductRating(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db)

	// No reviews yet
	rating, err := ProductRating(db, product.ID)
	require.NoError(t, err)
	assert.Zero(t, rating.Rating)
	assert.Zero(t, rating.Count)

	_, err = Create(db, "user-1", "Jane", "", product.ID, 4, "good")
	require.NoError(t, err)
	_, err = Create(db, "user-2", "Sam", "", product.ID, 5, "great")
	require.NoError(t, err)

	rating, err = ProductRating(db, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, rating.Rating)
	assert.EqualValues(t, 2, rating.Count)
}

func TestDeleteReviewOwnership(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db)

	review, err := Create(db, "user-1", "Jane", "", product.ID, 3, "ok")
	require.NoError(t, err)

	err = Delete(db, "user-2", review.ID)
	assert.ErrorIs(t, err, ErrReviewNotFound)

	require.NoError(t, Delete(db, "user-1", review.ID))
	assert.ErrorIs(t, Delete(db, "user-1", review.ID), ErrReviewNotFound)
}

func TestListForProductNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db)

	_, err := Create(db, "user-1", "Jane", "", product.ID, 3, "first")
	require.NoError(t, err)
	_, err = Create(db, "user-2", "Sam", "", product.ID, 5, "second")
	require.NoError(t, err)

	reviews, err := ListForProduct(db, product.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
}

func TestFindExisting(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db)

	found, err := FindExisting(db, "user-1", product.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	_, err = Create(db, "user-1", "Jane", "", product.ID, 4, "good")
	require.NoError(t, err)

	found, err = FindExisting(db, "user-1", product.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "user-1", found.UserID)
}
