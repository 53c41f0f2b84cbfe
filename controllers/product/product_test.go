package productcontroller

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/irfannaqieb/nextjs-store/models"
)

// fakeStore records uploads and deletes without touching the filesystem.
type fakeStore struct {
	uploads int
	deleted []string
	failUp  bool
}

func (f *fakeStore) Upload(_ *multipart.FileHeader) (string, error) {
	if f.failUp {
		return "", assert.AnError
	}
	f.uploads++
	return "http://localhost:8080/uploads/products/img_" + strconv.Itoa(f.uploads) + ".jpg", nil
}

func (f *fakeStore) Delete(url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name, company string, featured bool) models.Product {
	t.Helper()

	product := models.Product{
		Name:     name,
		Company:  company,
		Price:    decimal.RequireFromString("19.99"),
		Image:    "http://localhost:8080/uploads/products/" + name + ".jpg",
		Featured: featured,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func performRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetProductsSearch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	seedProduct(t, db, "Wooden Chair", "Artifex", false)
	seedProduct(t, db, "Velvet Sofa", "Luxora", false)
	seedProduct(t, db, "Coffee Table", "Artifex", false)

	r := gin.New()
	r.GET("/products", GetProducts(db))

	// Match by company, case-insensitive
	w := performRequest(r, "GET", "/products?search=artifex")
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 2)

	// Match by name
	w = performRequest(r, "GET", "/products?search=sofa")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Velvet Sofa", products[0].Name)

	// No filter returns everything
	w = performRequest(r, "GET", "/products")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 3)
}

func TestGetFeaturedProducts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	seedProduct(t, db, "Wooden Chair", "Artifex", true)
	seedProduct(t, db, "Velvet Sofa", "Luxora", false)

	r := gin.New()
	r.GET("/products/featured", GetFeaturedProducts(db))

	w := performRequest(r, "GET", "/products/featured")
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Wooden Chair", products[0].Name)
}

func TestGetProductByIDNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)

	r := gin.New()
	r.GET("/products/:id", GetProductByID(db))

	w := performRequest(r, "GET", "/products/999")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(r, "GET", "/products/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteProductCleansUpImage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	product := seedProduct(t, db, "Wooden Chair", "Artifex", false)
	store := &fakeStore{}

	r := gin.New()
	r.DELETE("/admin/products/:id", DeleteProduct(db, store))

	w := performRequest(r, "DELETE", "/admin/products/"+strconv.Itoa(int(product.ID)))
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	require.Len(t, store.deleted, 1)
	assert.Equal(t, product.Image, store.deleted[0])
}
