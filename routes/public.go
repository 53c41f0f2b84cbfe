package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/irfannaqieb/nextjs-store/controllers/product"
	reviewControllers "github.com/irfannaqieb/nextjs-store/controllers/review"
)

// SetupPublicRoutes registers the browsing endpoints that need no auth.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))                   // GET /products?search=
		products.GET("/featured", productcontroller.GetFeaturedProducts(db))  // GET /products/featured
		products.GET("/:id", productcontroller.GetProductByID(db))            // GET /products/:id
		products.GET("/:id/reviews", reviewControllers.GetProductReviewsHandler(db))
		products.GET("/:id/rating", reviewControllers.GetProductRatingHandler(db))
	}
}
