package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/irfannaqieb/nextjs-store/controllers/cart"
	favoriteControllers "github.com/irfannaqieb/nextjs-store/controllers/favorite"
	orderControllers "github.com/irfannaqieb/nextjs-store/controllers/order"
	reviewControllers "github.com/irfannaqieb/nextjs-store/controllers/review"
	userControllers "github.com/irfannaqieb/nextjs-store/controllers/user"
	"github.com/irfannaqieb/nextjs-store/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("", userControllers.GetUser(db)) // GET /user

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(db))                         // GET /user/cart
			cartGroup.GET("/count", cartControllers.CartItemCountHandler(db))          // GET /user/cart/count
			cartGroup.POST("", cartControllers.AddToCartHandler(db))                   // POST /user/cart
			cartGroup.PATCH("/items/:id", cartControllers.UpdateCartItemHandler(db))   // PATCH /user/cart/items/:id
			cartGroup.DELETE("/items/:id", cartControllers.RemoveCartItemHandler(db))  // DELETE /user/cart/items/:id
		}

		// ──────────────── Orders / Checkout ────────────────
		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.POST("", orderControllers.CheckoutHandler(db))                                   // POST /user/orders
			orderGroup.GET("", orderControllers.GetUserOrdersHandler(db))                               // GET /user/orders
			orderGroup.POST("/:orderID/confirm-payment", orderControllers.ConfirmPaymentHandler(db))    // POST /user/orders/:orderID/confirm-payment
		}

		// ──────────────── Favorites ────────────────
		favGroup := userGroup.Group("/favorites")
		{
			favGroup.GET("", favoriteControllers.GetUserFavoritesHandler(db))                 // GET /user/favorites
			favGroup.GET("/:productID", favoriteControllers.GetFavoriteIDHandler(db))         // GET /user/favorites/:productID
			favGroup.POST("/:productID/toggle", favoriteControllers.ToggleFavoriteHandler(db)) // POST /user/favorites/:productID/toggle
		}

		// ──────────────── Reviews ────────────────
		reviewGroup := userGroup.Group("/reviews")
		{
			reviewGroup.POST("", reviewControllers.CreateReviewHandler(db))        // POST /user/reviews
			reviewGroup.GET("", reviewControllers.GetUserReviewsHandler(db))       // GET /user/reviews
			reviewGroup.DELETE("/:id", reviewControllers.DeleteReviewHandler(db))  // DELETE /user/reviews/:id
		}
	}
}
