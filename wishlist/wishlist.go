// Package wishlist is the saved-products set. Unlike carts and orders it is
// keyed globally, not per identity; every session sees the same list.
package wishlist

import (
	"github.com/hearhut/storefront-api/models"
	"github.com/hearhut/storefront-api/store"
)

const key = "wishlist"

type Store struct {
	kv store.KV
}

func NewStore(kv store.KV) *Store {
	return &Store{kv: kv}
}

// List returns the wishlist in insertion order.
func (s *Store) List() []models.Product {
	var items []models.Product
	if err := s.kv.Get(key, &items); err != nil {
		return []models.Product{}
	}
	return items
}

// Has reports whether the product is wishlisted.
func (s *Store) Has(productID string) bool {
	for _, p := range s.List() {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Toggle adds the product if absent, removes it if present. Returns true
// when the product ended up in the list.
func (s *Store) Toggle(p models.Product) bool {
	items := s.List()
	for i, existing := range items {
		if existing.ID == p.ID {
			items = append(items[:i], items[i+1:]...)
			_ = s.kv.Put(key, items)
			return false
		}
	}
	items = append(items, p)
	_ = s.kv.Put(key, items)
	return true
}
