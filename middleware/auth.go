package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hearhut/storefront-api/auth"
)

// ValidateToken checks the session token issued at sign-in and exposes the
// email claim to downstream handlers.
func ValidateToken(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	email, err := auth.ParseSessionToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set("email", email)
	c.Next()
}
