package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hearhut/storefront-api/cart"
	"github.com/hearhut/storefront-api/catalog"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

type QuantityInput struct {
	Delta int `json:"delta" binding:"required"`
}

// GET /cart
func GetCart(items *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, items.Active())
	}
}

// POST /cart
func AddCartItem(items *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, ok := catalog.ByID(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}
		c.JSON(http.StatusCreated, items.Add(product))
	}
}

// DELETE /cart/:index
func RemoveCartItem(items *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart index"})
			return
		}
		// Out-of-range removal is a silent no-op.
		c.JSON(http.StatusOK, items.Remove(index))
	}
}

// POST /cart/:index/quantity
func UpdateCartQuantity(items *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart index"})
			return
		}

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, items.SetQuantity(index, input.Delta))
	}
}

// DELETE /cart
func ClearCart(items *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
