package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// PaymentWebhookAuth verifies the gateway webhook signature. Sandbox and
// dev modes skip verification.
func PaymentWebhookAuth(secret, mode string) gin.HandlerFunc {
	if secret == "" && mode != "sandbox" && mode != "dev" {
		panic("payment webhook secret is not set")
	}

	return func(c *gin.Context) {
		if mode == "sandbox" || mode == "dev" {
			log.Println("Sandbox/dev mode: skipping webhook signature verification")
			c.Next()
			return
		}

		if err := c.Request.ParseForm(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse form for signature verification"})
			c.Abort()
			return
		}

		provided := c.PostForm("pay_signature")
		if provided == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "missing pay_signature"})
			c.Abort()
			return
		}

		fieldList := []string{"pay_orderid", "pay_ref", "pay_amount", "pay_currency", "pay_status"}
		parts := make([]string, 0, len(fieldList))
		for _, f := range fieldList {
			parts = append(parts, strings.TrimSpace(c.PostForm(f)))
		}

		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write([]byte(strings.Join(parts, ":")))
		calculated := hex.EncodeToString(mac.Sum(nil))

		if !hmac.Equal([]byte(strings.ToLower(provided)), []byte(calculated)) {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid webhook signature"})
			c.Abort()
			return
		}

		c.Next()
	}
}
