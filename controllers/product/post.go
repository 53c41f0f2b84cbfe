package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/irfannaqieb/nextjs-store/models"
	"github.com/irfannaqieb/nextjs-store/storage"
)

// CreateProduct creates a new product from a multipart form with an image
// upload. The image goes to storage first; the database row is only written
// after a successful upload, and the uploaded file is removed again if the
// write fails.
// POST /admin/products
func CreateProduct(db *gorm.DB, store storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		company := c.PostForm("company")
		priceStr := c.PostForm("price")
		if name == "" || company == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, company, and price are required"})
			return
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil || price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		description := c.PostForm("description")
		featured := c.PostForm("featured") == "true"

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}

		imageURL, err := store.Upload(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
			return
		}

		newProduct := models.Product{
			Name:        name,
			Company:     company,
			Description: description,
			Price:       price.Round(2),
			Image:       imageURL,
			Featured:    featured,
		}

		if err := db.Create(&newProduct).Error; err != nil {
			// Don't leave an orphaned upload behind.
			_ = store.Delete(imageURL)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, newProduct)
	}
}
