package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/hearhut/storefront-api/controllers/cart"
	productcontroller "github.com/hearhut/storefront-api/controllers/product"
	wishlistControllers "github.com/hearhut/storefront-api/controllers/wishlist"
)

// SetupStorefrontRoutes registers the browsing endpoints. Carts work for
// guests too, so none of these require a session token.
func SetupStorefrontRoutes(r *gin.Engine, deps *Deps) {
	// ──────────────── Browse Products ────────────────
	r.GET("/products", productcontroller.GetProducts())
	r.GET("/products/:id", productcontroller.GetProductByID())

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("/", cartControllers.GetCart(deps.Cart))
		cartGroup.POST("/", cartControllers.AddCartItem(deps.Cart))
		cartGroup.POST("/:index/quantity", cartControllers.UpdateCartQuantity(deps.Cart))
		cartGroup.DELETE("/:index", cartControllers.RemoveCartItem(deps.Cart))
		cartGroup.DELETE("/", cartControllers.ClearCart(deps.Cart))
	}

	// ──────────────── Wishlist ────────────────
	wishlistGroup := r.Group("/wishlist")
	{
		wishlistGroup.GET("/", wishlistControllers.GetWishlist(deps.Wishlist))
		wishlistGroup.POST("/toggle", wishlistControllers.ToggleWishlist(deps.Wishlist))
	}
}
