// Package cart holds the per-identity shopping cart. Carts are keyed by the
// active session's email (or the shared guest key) and swap wholesale when
// the session changes: a guest cart is never merged into a user cart.
package cart

import (
	"github.com/hearhut/storefront-api/models"
	"github.com/hearhut/storefront-api/store"
)

// GuestKey is the cart slot used when nobody is signed in.
const GuestKey = "cart_guest"

// SessionFunc reports the active session, nil for guest.
type SessionFunc func() *models.Session

// Store reads and mutates the cart for whichever identity is active.
type Store struct {
	kv      store.KV
	session SessionFunc
}

func NewStore(kv store.KV, session SessionFunc) *Store {
	return &Store{kv: kv, session: session}
}

// Key is the storage slot for the active identity's cart.
func (s *Store) Key() string {
	if sess := s.session(); sess != nil && sess.Email != "" {
		return "cart_" + sess.Email
	}
	return GuestKey
}

// Active returns the current cart. A missing or unreadable slot degrades to
// an empty cart. Lines persisted without a quantity count as 1.
func (s *Store) Active() []models.CartItem {
	var items []models.CartItem
	if err := s.kv.Get(s.Key(), &items); err != nil {
		return []models.CartItem{}
	}
	for i := range items {
		if items[i].Quantity < 1 {
			items[i].Quantity = 1
		}
	}
	return items
}

// Add appends a quantity-1 line for the product. Adding the same product
// twice leaves two lines; lines are never merged.
func (s *Store) Add(p models.Product) []models.CartItem {
	items := append(s.Active(), models.LineFromProduct(p))
	s.save(items)
	return items
}

// Remove drops the line at index. Out-of-range indexes are a no-op.
func (s *Store) Remove(index int) []models.CartItem {
	items := s.Active()
	if index < 0 || index >= len(items) {
		return items
	}
	items = append(items[:index], items[index+1:]...)
	s.save(items)
	return items
}

// SetQuantity applies delta to the line's quantity, clamped at a floor of 1.
// There is no upper bound. Out-of-range indexes are a no-op.
func (s *Store) SetQuantity(index, delta int) []models.CartItem {
	items := s.Active()
	if index < 0 || index >= len(items) {
		return items
	}
	q := items[index].Quantity + delta
	if q < 1 {
		q = 1
	}
	items[index].Quantity = q
	s.save(items)
	return items
}

// Clear empties the active cart. Clearing an empty cart is fine.
func (s *Store) Clear() {
	s.save([]models.CartItem{})
}

// save writes the whole cart back to the active slot. Write failures are
// swallowed: the storefront degrades rather than crashes on storage errors.
func (s *Store) save(items []models.CartItem) {
	_ = s.kv.Put(s.Key(), items)
}
