package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hearhut/storefront-api/catalog"
	"github.com/hearhut/storefront-api/models"
)

type productView struct {
	models.Product
	Stars string `json:"stars"`
}

func view(p models.Product) productView {
	return productView{Product: p, Stars: p.Stars()}
}

// GET /products
func GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		list := catalog.List()
		out := make([]productView, 0, len(list))
		for _, p := range list {
			out = append(out, view(p))
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /products/:id
func GetProductByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := catalog.ByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, view(p))
	}
}
