package cart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hearhut/storefront-api/models"
	"github.com/hearhut/storefront-api/store"
)

var (
	hyperx = models.Product{ID: "hyperx-cloud-iii", Brand: "HyperX", Name: "HyperX Cloud III", Price: 6999, OriginalPrice: 8999}
	mivi   = models.Product{ID: "mivi-superpods-immersio", Brand: "Mivi", Name: "Mivi SuperPods Immersio", Price: 1999, OriginalPrice: 2999}
)

// sessions holds a swappable active session for tests.
type sessions struct {
	current *models.Session
}

func (s *sessions) fn() *models.Session { return s.current }

func newTestCart() (*Store, *sessions, *store.Memory) {
	sess := &sessions{}
	kv := store.NewMemory()
	return NewStore(kv, sess.fn), sess, kv
}

func TestKeyFollowsSession(t *testing.T) {
	c, sess, _ := newTestCart()
	require.Equal(t, GuestKey, c.Key())

	sess.current = &models.Session{Email: "asha.rao@gmail.com"}
	require.Equal(t, "cart_asha.rao@gmail.com", c.Key())

	sess.current = nil
	require.Equal(t, GuestKey, c.Key())
}

func TestAddKeepsDuplicateLines(t *testing.T) {
	c, _, _ := newTestCart()

	c.Add(hyperx)
	items := c.Add(hyperx)

	require.Len(t, items, 2)
	require.Equal(t, 1, items[0].Quantity)
	require.Equal(t, 1, items[1].Quantity)
	require.Equal(t, hyperx.ID, items[0].ProductID)
	require.Equal(t, hyperx.ID, items[1].ProductID)
}

func TestRemoveOutOfRangeIsNoOp(t *testing.T) {
	c, _, _ := newTestCart()
	c.Add(hyperx)

	require.Len(t, c.Remove(5), 1)
	require.Len(t, c.Remove(-1), 1)
	require.Len(t, c.Remove(0), 0)
}

func TestSetQuantityClampsAtOne(t *testing.T) {
	c, _, _ := newTestCart()
	c.Add(hyperx)

	items := c.SetQuantity(0, 3)
	require.Equal(t, 4, items[0].Quantity)

	items = c.SetQuantity(0, -10)
	require.Equal(t, 1, items[0].Quantity)

	// Decrementing at the floor stays at the floor.
	items = c.SetQuantity(0, -1)
	require.Equal(t, 1, items[0].Quantity)

	// Out-of-range index changes nothing.
	items = c.SetQuantity(7, 2)
	require.Equal(t, 1, items[0].Quantity)
}

func TestClearIsIdempotent(t *testing.T) {
	c, _, _ := newTestCart()
	c.Add(hyperx)
	c.Add(mivi)

	c.Clear()
	require.Empty(t, c.Active())
	c.Clear()
	require.Empty(t, c.Active())
}

// Signing out of one identity and into another swaps the visible cart to
// the new identity's persisted lines. Nothing is merged.
func TestSessionSwitchSwapsCarts(t *testing.T) {
	c, sess, kv := newTestCart()

	sess.current = &models.Session{Email: "a@gmail.com"}
	c.Add(hyperx)

	sess.current = &models.Session{Email: "b@gmail.com"}
	require.NoError(t, kv.Put("cart_b@gmail.com", []models.CartItem{models.LineFromProduct(mivi)}))

	items := c.Active()
	require.Len(t, items, 1)
	require.Equal(t, mivi.ID, items[0].ProductID)

	// A's cart is untouched in its own slot.
	sess.current = &models.Session{Email: "a@gmail.com"}
	items = c.Active()
	require.Len(t, items, 1)
	require.Equal(t, hyperx.ID, items[0].ProductID)
}

func TestGuestCartIsolatedFromUserCart(t *testing.T) {
	c, sess, _ := newTestCart()

	c.Add(mivi) // as guest

	sess.current = &models.Session{Email: "a@gmail.com"}
	require.Empty(t, c.Active())

	sess.current = nil
	require.Len(t, c.Active(), 1)
}

func TestActiveNormalizesLegacyQuantity(t *testing.T) {
	c, _, kv := newTestCart()
	require.NoError(t, kv.Put(GuestKey, []models.CartItem{
		{ProductID: "legacy", Price: 100},
	}))

	items := c.Active()
	require.Len(t, items, 1)
	require.Equal(t, 1, items[0].Quantity)
}

func TestActiveDegradesToEmptyOnBadData(t *testing.T) {
	c, _, kv := newTestCart()
	require.NoError(t, kv.Put(GuestKey, "not a cart"))
	require.Empty(t, c.Active())
}
