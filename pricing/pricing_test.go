package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hearhut/storefront-api/models"
)

func item(price float64, qty int) models.CartItem {
	return models.CartItem{ProductID: "p", Name: "p", Price: price, Quantity: qty}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		items    []models.CartItem
		method   string
		subtotal float64
		shipping float64
	}{
		{
			name:     "empty cart has no charges",
			items:    nil,
			method:   models.ShippingStandard,
			subtotal: 0,
			shipping: 0,
		},
		{
			name:     "standard below threshold pays flat fee",
			items:    []models.CartItem{item(2599, 1)},
			method:   models.ShippingStandard,
			subtotal: 2599,
			shipping: 99,
		},
		{
			name:     "subtotal exactly 5000 still pays shipping",
			items:    []models.CartItem{item(2500, 2)},
			method:   models.ShippingStandard,
			subtotal: 5000,
			shipping: 99,
		},
		{
			name:     "subtotal just over 5000 ships free",
			items:    []models.CartItem{item(5001, 1)},
			method:   models.ShippingStandard,
			subtotal: 5001,
			shipping: 0,
		},
		{
			name:     "express charges regardless of subtotal",
			items:    []models.CartItem{item(11999, 1)},
			method:   models.ShippingExpress,
			subtotal: 11999,
			shipping: 299,
		},
		{
			name:     "quantities multiply into subtotal",
			items:    []models.CartItem{item(1999, 3), item(2599, 1)},
			method:   models.ShippingStandard,
			subtotal: 8596,
			shipping: 0,
		},
		{
			name:     "legacy zero quantity counts as one",
			items:    []models.CartItem{item(1999, 0)},
			method:   models.ShippingStandard,
			subtotal: 1999,
			shipping: 99,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.items, tt.method)
			require.InDelta(t, tt.subtotal, got.Subtotal, 1e-9)
			require.InDelta(t, tt.shipping, got.Shipping, 1e-9)
			require.InDelta(t, tt.subtotal*0.18, got.Tax, 1e-9)
			require.InDelta(t, got.Subtotal+got.Shipping+got.Tax, got.Total, 1e-9)
		})
	}
}

// The single-item HyperX scenario from the storefront: 6999 with standard
// shipping ships free, taxes to 1259.82, and rounds to 8259 at display.
func TestComputeHyperXScenario(t *testing.T) {
	got := Compute([]models.CartItem{{ProductID: "hyperx-cloud-iii", Price: 6999, OriginalPrice: 8999, Quantity: 1}}, models.ShippingStandard)

	require.InDelta(t, 6999.0, got.Subtotal, 1e-9)
	require.InDelta(t, 0.0, got.Shipping, 1e-9)
	require.InDelta(t, 1259.82, got.Tax, 1e-6)
	require.InDelta(t, 8258.82, got.Total, 1e-6)
	require.Equal(t, int64(8259), got.Payable())
	require.Equal(t, int64(825900), got.PayablePaise())
}

// Charges never go down when the subtotal goes up under a fixed method.
// Express has a flat fee, so its grand total is monotone outright; for
// standard the subtotal-plus-tax portion is monotone (the free-shipping
// cliff at 5000 is exercised separately above).
func TestComputeMonotoneInSubtotal(t *testing.T) {
	prices := []float64{0, 1, 99, 1999, 4999, 5000, 5001, 6999, 11999, 50000}

	prevExpress, prevGoods := -1.0, -1.0
	for _, price := range prices {
		var items []models.CartItem
		if price > 0 {
			items = []models.CartItem{item(price, 1)}
		}

		express := Compute(items, models.ShippingExpress)
		require.GreaterOrEqual(t, express.Total, prevExpress, "express price %v", price)
		prevExpress = express.Total

		standard := Compute(items, models.ShippingStandard)
		require.GreaterOrEqual(t, standard.Subtotal+standard.Tax, prevGoods, "standard price %v", price)
		prevGoods = standard.Subtotal + standard.Tax
	}
}

func TestComputeDeterministic(t *testing.T) {
	items := []models.CartItem{item(3692, 2), item(1999, 1)}
	require.Equal(t, Compute(items, models.ShippingStandard), Compute(items, models.ShippingStandard))
}
