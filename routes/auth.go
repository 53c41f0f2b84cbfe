package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/irfannaqieb/nextjs-store/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		// Google login via the identity provider's ID token
		authGroup.POST("/google", func(c *gin.Context) {
			auth.GoogleLoginHandler(c.Writer, c.Request, db)
		})
	}
}
