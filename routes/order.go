package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/hearhut/storefront-api/controllers/order"
)

func SetupOrderRoutes(r *gin.Engine, deps *Deps) {
	ordersGroup := r.Group("/orders")
	{
		// Orders for the active identity (or guest)
		ordersGroup.GET("/", orderControllers.GetMyOrders(deps.Archive, deps.Identity.Session))

		// websocket endpoint for real-time order updates
		ordersGroup.GET("/ws", orderControllers.OrderWebSocketHandler)
	}
}
