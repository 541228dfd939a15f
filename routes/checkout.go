package routes

import (
	"github.com/gin-gonic/gin"

	checkoutControllers "github.com/hearhut/storefront-api/controllers/checkout"
	"github.com/hearhut/storefront-api/middleware"
)

func SetupCheckoutRoutes(r *gin.Engine, deps *Deps) {
	co := r.Group("/checkout")
	{
		co.POST("/", checkoutControllers.BeginCheckout(deps.Checkout))
		co.GET("/:order_id", checkoutControllers.GetCheckout(deps.Checkout))
		co.DELETE("/:order_id", checkoutControllers.DismissCheckout(deps.Checkout))
	}

	payment := r.Group("/payment")
	{
		// Webhook endpoint: middleware handles sandbox/prod verification
		payment.POST("/webhook",
			middleware.PaymentWebhookAuth(deps.WebhookSecret, deps.GatewayMode),
			checkoutControllers.PaymentWebhook(deps.Checkout),
		)
	}
}
