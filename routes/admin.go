package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/irfannaqieb/nextjs-store/controllers/order"
	productcontroller "github.com/irfannaqieb/nextjs-store/controllers/product"
	userControllers "github.com/irfannaqieb/nextjs-store/controllers/user"
	"github.com/irfannaqieb/nextjs-store/middleware"
	"github.com/irfannaqieb/nextjs-store/storage"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a valid JWT
// plus the admin role on the user record.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, store storage.ImageStore) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin(db))
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetAdminProducts(db))
			productAdmin.POST("", productcontroller.CreateProduct(db, store))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.PUT("/:id/image", productcontroller.UpdateProductImage(db, store))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db, store))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Orders ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAdminOrdersHandler(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler) // live order feed
		}
	}
}
