package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hearhut/storefront-api/auth"
	"github.com/hearhut/storefront-api/orders"
)

// GET /user
func GetUser(identity *auth.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		emailVal, exists := c.Get("email")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		email := emailVal.(string)

		ident, ok := identity.Find(email)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": ident.Email, "name": ident.Name})
	}
}

// GET /user/orders
func GetUserOrderHistory(archive *orders.Archive) gin.HandlerFunc {
	return func(c *gin.Context) {
		emailVal, exists := c.Get("email")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, archive.List("orders_"+emailVal.(string)))
	}
}
