package models

// CartItem is one line of a cart. Items are appended per add, so the same
// product can appear on several lines. Quantity is at least 1; items
// persisted by older clients without a quantity are normalized on load.
type CartItem struct {
	ProductID     string  `json:"id"`
	Brand         string  `json:"brand"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	Image         string  `json:"img"`
	Quantity      int     `json:"quantity"`
}

// LineFromProduct builds a single-quantity cart line from a catalog product.
func LineFromProduct(p Product) CartItem {
	return CartItem{
		ProductID:     p.ID,
		Brand:         p.Brand,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Quantity:      1,
	}
}
