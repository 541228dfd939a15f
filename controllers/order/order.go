package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hearhut/storefront-api/models"
	"github.com/hearhut/storefront-api/orders"
)

// SessionFunc reports the active session, nil for guest.
type SessionFunc func() *models.Session

// GET /orders
func GetMyOrders(archive *orders.Archive, session SessionFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, archive.List(orders.KeyFor(session())))
	}
}

// GET /admin/orders/:email
func GetUserOrders(archive *orders.Archive) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}
		key := "orders_" + email
		if email == "guest" {
			key = orders.GuestKey
		}
		c.JSON(http.StatusOK, archive.List(key))
	}
}
