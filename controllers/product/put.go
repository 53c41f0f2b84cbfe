package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/irfannaqieb/nextjs-store/models"
	"github.com/irfannaqieb/nextjs-store/storage"
)

// UpdateProduct updates an existing product's fields. All form fields are
// optional; absent fields keep their value.
// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("company"); v != "" {
			product.Company = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("price"); v != "" {
			price, err := decimal.NewFromString(v)
			if err != nil || price.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			product.Price = price.Round(2)
		}
		if v := c.PostForm("featured"); v != "" {
			product.Featured = v == "true"
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// UpdateProductImage replaces the product's image: upload the new file, then
// delete the old one, then persist the new URL.
// PUT /admin/products/:id/image
func UpdateProductImage(db *gorm.DB, store storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

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

		oldImage := product.Image
		if err := db.Model(&product).Update("image", imageURL).Error; err != nil {
			_ = store.Delete(imageURL)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product image"})
			return
		}

		// Best-effort cleanup of the replaced file.
		if oldImage != "" {
			_ = store.Delete(oldImage)
		}

		product.Image = imageURL
		c.JSON(http.StatusOK, product)
	}
}
