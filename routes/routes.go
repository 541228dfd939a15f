package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hearhut/storefront-api/auth"
	"github.com/hearhut/storefront-api/cart"
	"github.com/hearhut/storefront-api/checkout"
	"github.com/hearhut/storefront-api/orders"
	"github.com/hearhut/storefront-api/wishlist"
)

// Deps bundles the storefront components handed to the route groups. The
// stores are explicit objects wired once at startup; nothing hangs off
// package-level state.
type Deps struct {
	Identity *auth.Store
	Cart     *cart.Store
	Wishlist *wishlist.Store
	Archive  *orders.Archive
	Checkout *checkout.Service

	WebhookSecret string
	GatewayMode   string
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, deps *Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// Storefront routes: catalog, cart, wishlist (guest-accessible)
	SetupStorefrontRoutes(r, deps)

	// User routes (JWT-protected)
	SetupUserRoutes(r, deps)

	// Checkout and the payment webhook
	SetupCheckoutRoutes(r, deps)

	// Order routes
	SetupOrderRoutes(r, deps)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, deps)
}
