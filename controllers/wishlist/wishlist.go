package wishlistControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hearhut/storefront-api/catalog"
	"github.com/hearhut/storefront-api/wishlist"
)

type ToggleInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GET /wishlist
func GetWishlist(saved *wishlist.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, saved.List())
	}
}

// POST /wishlist/toggle
func ToggleWishlist(saved *wishlist.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ToggleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, ok := catalog.ByID(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"in_wishlist": saved.Toggle(product)})
	}
}
