package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/irfannaqieb/nextjs-store/storage"
)

// SetupRoutes is the single entry-point that wires up the public, auth, user,
// and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store storage.ImageStore) {
	// Public browsing routes (no middleware)
	SetupPublicRoutes(r, db)

	// Auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Admin routes (JWT + role check)
	SetupAdminRoutes(r, db, store)
}
