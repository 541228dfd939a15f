package checkoutControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hearhut/storefront-api/checkout"
	"github.com/hearhut/storefront-api/models"
)

// POST /checkout
func BeginCheckout(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form models.ShippingForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		pending, err := svc.Begin(form)
		if err != nil {
			var fieldErrs checkout.FieldErrors
			switch {
			case errors.Is(err, checkout.ErrCartEmpty):
				// Guard, not an error: the page layer sends the shopper
				// back to the cart view.
				c.JSON(http.StatusConflict, gin.H{"redirect": "/cart"})
			case errors.As(err, &fieldErrs):
				c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
			case errors.Is(err, checkout.ErrGatewayUnavailable):
				c.JSON(http.StatusBadGateway, gin.H{"error": "Payment gateway failed to load. Please try again."})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start checkout"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order_id":    pending.OrderID,
			"payment_url": pending.PaymentURL,
			"gateway_ref": pending.GatewayRef,
			"amount":      pending.Totals.Payable(),
			"totals":      pending.Totals,
			"state":       pending.State.String(),
		})
	}
}

// GET /checkout/:order_id
func GetCheckout(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		pending, err := svc.Pending(c.Param("order_id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Checkout not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"order_id": pending.OrderID,
			"amount":   pending.Totals.Payable(),
			"state":    pending.State.String(),
		})
	}
}

// DELETE /checkout/:order_id
//
// The shopper closed the payment window. The cart stays as it was.
func DismissCheckout(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Dismiss(c.Param("order_id")); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Checkout not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Checkout dismissed"})
	}
}

// POST /payment/webhook
//
// The gateway posts the payment outcome as form fields. Anything other than
// a captured payment drops the pending checkout without creating an order.
func PaymentWebhook(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := c.Request.ParseForm(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse form"})
			return
		}

		orderID := c.PostForm("pay_orderid")
		status := c.PostForm("pay_status")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing pay_orderid"})
			return
		}

		if status != "captured" {
			_ = svc.Dismiss(orderID)
			c.JSON(http.StatusOK, gin.H{"message": "Payment not successful"})
			return
		}

		order, err := svc.Finalize(orderID)
		if err != nil {
			if errors.Is(err, checkout.ErrUnknownCheckout) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Checkout not found"})
				return
			}
			log.Println("❌ Failed to finalize order:", orderID, "error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully", "order_id": order.ID})
	}
}
