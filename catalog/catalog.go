// Package catalog is the static product list. Read-only, in-memory.
package catalog

import "github.com/hearhut/storefront-api/models"

var products = []models.Product{
	{ID: "hyperx-cloud-iii", Brand: "HyperX", Name: "HyperX Cloud III", Price: 6999, OriginalPrice: 8999, Image: "/Images/imag1.png", Rating: 5, Reviews: 342},
	{ID: "oppo-enco-air3-pro", Brand: "OPPO", Name: "OPPO Enco Air3 Pro", Price: 5500, OriginalPrice: 6500, Image: "/Images/image2.png", Rating: 5, Reviews: 156},
	{ID: "oneplus-nord-buds-3-pro", Brand: "OnePlus", Name: "OnePlus Nord Buds 3 Pro", Price: 2599, OriginalPrice: 3999, Image: "/Images/image3.png", Rating: 5, Reviews: 89},
	{ID: "cmf-nothing-earbuds", Brand: "Nothing", Name: "CMF by Nothing Earbuds", Price: 3990, OriginalPrice: 4990, Image: "/Images/image4.png", Rating: 4, Reviews: 234},
	{ID: "soundcore-anker-q20i", Brand: "Soundcore", Name: "Soundcore by Anker Q20i", Price: 3692, OriginalPrice: 4999, Image: "/Images/image5.png", Rating: 4, Reviews: 567},
	{ID: "mivi-superpods-immersio", Brand: "Mivi", Name: "Mivi SuperPods Immersio", Price: 1999, OriginalPrice: 2999, Image: "/Images/image6.png", Rating: 4, Reviews: 123},
	{ID: "apple-airpods-4", Brand: "Apple", Name: "Apple AirPods 4", Price: 11499, OriginalPrice: 12999, Image: "/Images/image7.png", Rating: 5, Reviews: 892},
	{ID: "marshall-minor-iv", Brand: "Marshall", Name: "Marshall Minor IV", Price: 11999, OriginalPrice: 13999, Image: "/Images/image8.png", Rating: 5, Reviews: 445},
}

// List returns every product in display order.
func List() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// ByID looks a product up by its slug.
func ByID(id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
