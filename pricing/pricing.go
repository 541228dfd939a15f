// Package pricing derives monetary totals from a cart snapshot. Pure and
// deterministic: same cart and shipping method, same totals.
package pricing

import (
	"math"

	"github.com/hearhut/storefront-api/models"
)

const (
	taxRate          = 0.18 // GST, applied to subtotal only
	freeShippingOver = 5000 // strict >, not >=
	standardFee      = 99
	expressFee       = 299
)

// Totals are in rupees. Fractions are kept until Payable rounds once at the
// presentation edge.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Compute derives totals for the cart under the given shipping method.
func Compute(items []models.CartItem, method string) Totals {
	var subtotal float64
	for _, it := range items {
		q := it.Quantity
		if q < 1 {
			q = 1
		}
		subtotal += it.Price * float64(q)
	}

	var shipping float64
	switch {
	case method == models.ShippingExpress:
		shipping = expressFee
	case subtotal > freeShippingOver:
		shipping = 0
	case subtotal > 0:
		shipping = standardFee
	}

	tax := subtotal * taxRate
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// Payable is the charged amount in whole rupees, rounded to nearest.
func (t Totals) Payable() int64 {
	return int64(math.Round(t.Total))
}

// PayablePaise is Payable in minor currency units, as gateways want it.
func (t Totals) PayablePaise() int64 {
	return t.Payable() * 100
}
