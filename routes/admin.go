package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/hearhut/storefront-api/controllers/auth"
	orderControllers "github.com/hearhut/storefront-api/controllers/order"
	"github.com/hearhut/storefront-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the API key.
func SetupAdminRoutes(r *gin.Engine, deps *Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/auth-events", authControllers.GetAuthEvents(deps.Identity))
		adminGroup.GET("/orders/:email", orderControllers.GetUserOrders(deps.Archive))
		adminGroup.GET("/orders/:email/export", orderControllers.ExportOrdersToExcel(deps.Archive))
	}
}
