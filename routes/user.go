package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/hearhut/storefront-api/controllers/user"
	"github.com/hearhut/storefront-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps *Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("/", userControllers.GetUser(deps.Identity))
		userGroup.GET("/orders", userControllers.GetUserOrderHistory(deps.Archive))
	}
}
