// Package orders is the append-only archive of completed purchases, one
// list per identity.
package orders

import (
	"fmt"

	"github.com/hearhut/storefront-api/models"
	"github.com/hearhut/storefront-api/store"
)

// GuestKey is the archive slot for purchases made without signing in.
const GuestKey = "orders_guest"

// KeyFor derives the archive slot for a session.
func KeyFor(sess *models.Session) string {
	if sess != nil && sess.Email != "" {
		return "orders_" + sess.Email
	}
	return GuestKey
}

// Archive appends finalized orders. No size bound, no dedup; lookup is by
// identity key only.
type Archive struct {
	kv store.KV
}

func NewArchive(kv store.KV) *Archive {
	return &Archive{kv: kv}
}

// Append reads the list under key, adds the order, and writes it back.
func (a *Archive) Append(key string, o models.Order) error {
	var list []models.Order
	_ = a.kv.Get(key, &list)
	list = append(list, o)
	if err := a.kv.Put(key, list); err != nil {
		return fmt.Errorf("persist order %s: %w", o.ID, err)
	}
	return nil
}

// List returns the archive for key, oldest first. Missing or unreadable
// slots degrade to empty.
func (a *Archive) List(key string) []models.Order {
	var list []models.Order
	if err := a.kv.Get(key, &list); err != nil {
		return []models.Order{}
	}
	return list
}
