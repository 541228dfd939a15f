package checkout

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hearhut/storefront-api/cart"
	"github.com/hearhut/storefront-api/models"
	"github.com/hearhut/storefront-api/orders"
	"github.com/hearhut/storefront-api/store"
)

type fakeGateway struct {
	lastReq SessionRequest
	err     error
}

func (g *fakeGateway) CreateSession(req SessionRequest) (*GatewaySession, error) {
	g.lastReq = req
	if g.err != nil {
		return nil, g.err
	}
	return &GatewaySession{URL: "https://pay.example/session/abc", Ref: "ref_abc"}, nil
}

type fakeNotifier struct {
	sent chan models.Order
}

func (n *fakeNotifier) SendOrderConfirmation(o models.Order) error {
	n.sent <- o
	return nil
}

type fixture struct {
	svc      *Service
	cart     *cart.Store
	archive  *orders.Archive
	gateway  *fakeGateway
	notifier *fakeNotifier
	kv       *store.Memory
	session  *models.Session
}

func newFixture() *fixture {
	f := &fixture{
		gateway:  &fakeGateway{},
		notifier: &fakeNotifier{sent: make(chan models.Order, 1)},
		kv:       store.NewMemory(),
	}
	sessionFn := func() *models.Session { return f.session }
	f.cart = cart.NewStore(f.kv, sessionFn)
	f.archive = orders.NewArchive(f.kv)
	f.svc = NewService(f.kv, f.cart, f.archive, f.gateway, f.notifier, sessionFn)
	return f
}

func validForm() models.ShippingForm {
	return models.ShippingForm{
		FirstName:      "Asha",
		LastName:       "Rao",
		Email:          "asha.rao@gmail.com",
		Phone:          "+91 98765 43210",
		Address:        "12 MG Road",
		City:           "Bengaluru",
		State:          "Karnataka",
		ZipCode:        "560001",
		Country:        "India",
		ShippingMethod: models.ShippingStandard,
	}
}

var orderIDRe = regexp.MustCompile(`^HH-[0-9A-Z]{8}$`)

func TestBeginGuardsEmptyCart(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Begin(validForm())
	require.ErrorIs(t, err, ErrCartEmpty)
}

func TestBeginReturnsFieldErrors(t *testing.T) {
	f := newFixture()
	f.cart.Add(models.Product{ID: "p", Price: 1000})

	form := validForm()
	form.FirstName = "  "
	form.Phone = "12345"
	form.ZipCode = "1234567"

	_, err := f.svc.Begin(form)
	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Contains(t, fieldErrs, "firstName")
	require.Contains(t, fieldErrs, "phone")
	require.Contains(t, fieldErrs, "zipCode")
	require.NotContains(t, fieldErrs, "email")

	// The flow went back to editing: nothing was persisted or charged.
	require.Empty(t, f.gateway.lastReq.OrderID)
	require.Len(t, f.cart.Active(), 1)
}

func TestBeginOpensGatewaySession(t *testing.T) {
	f := newFixture()
	f.cart.Add(models.Product{ID: "hyperx-cloud-iii", Price: 6999, OriginalPrice: 8999})

	pending, err := f.svc.Begin(validForm())
	require.NoError(t, err)

	require.Regexp(t, orderIDRe, pending.OrderID)
	require.Equal(t, StateAwaitingPayment, pending.State)
	require.Equal(t, "https://pay.example/session/abc", pending.PaymentURL)
	require.Equal(t, "ref_abc", pending.GatewayRef)

	// 6999 ships free, taxes to 8258.82, charges 8259 rupees in paise.
	require.Equal(t, int64(825900), f.gateway.lastReq.AmountPaise)
	require.Equal(t, "INR", f.gateway.lastReq.Currency)
	require.Equal(t, "Asha Rao", f.gateway.lastReq.Name)
	require.NotEmpty(t, f.gateway.lastReq.Receipt)

	// The cart is untouched while payment is pending.
	require.Len(t, f.cart.Active(), 1)

	got, err := f.svc.Pending(pending.OrderID)
	require.NoError(t, err)
	require.Equal(t, pending.OrderID, got.OrderID)
}

func TestBeginGatewayFailure(t *testing.T) {
	f := newFixture()
	f.cart.Add(models.Product{ID: "p", Price: 1000})
	f.gateway.err = ErrGatewayUnavailable

	_, err := f.svc.Begin(validForm())
	require.ErrorIs(t, err, ErrGatewayUnavailable)
	// Back to editing: no pending checkout was written.
	require.Len(t, f.cart.Active(), 1)
}

func TestFinalizePlacesOrder(t *testing.T) {
	f := newFixture()
	f.session = &models.Session{Email: "asha.rao@gmail.com", Name: "Asha"}
	f.cart.Add(models.Product{ID: "hyperx-cloud-iii", Name: "HyperX Cloud III", Price: 6999})

	var broadcast []models.Order
	f.svc.OnOrderPlaced = func(o models.Order) { broadcast = append(broadcast, o) }

	pending, err := f.svc.Begin(validForm())
	require.NoError(t, err)

	order, err := f.svc.Finalize(pending.OrderID)
	require.NoError(t, err)
	require.Equal(t, pending.OrderID, order.ID)
	require.Equal(t, float64(8259), order.Total)
	require.Len(t, order.Items, 1)

	// Cart consumed, order archived under the identity's key.
	require.Empty(t, f.cart.Active())
	archived := f.archive.List("orders_asha.rao@gmail.com")
	require.Len(t, archived, 1)
	require.Equal(t, order.ID, archived[0].ID)

	// Pending record is gone; the flow instance is terminal.
	_, err = f.svc.Pending(pending.OrderID)
	require.ErrorIs(t, err, ErrUnknownCheckout)

	require.Len(t, broadcast, 1)

	select {
	case sent := <-f.notifier.sent:
		require.Equal(t, order.ID, sent.ID)
	case <-time.After(time.Second):
		t.Fatal("confirmation email was never attempted")
	}
}

func TestFinalizeAsGuestArchivesUnderGuestKey(t *testing.T) {
	f := newFixture()
	f.cart.Add(models.Product{ID: "p", Price: 1000})

	pending, err := f.svc.Begin(validForm())
	require.NoError(t, err)

	_, err = f.svc.Finalize(pending.OrderID)
	require.NoError(t, err)
	require.Len(t, f.archive.List(orders.GuestKey), 1)
}

// Email delivery is best effort: a failing notifier must not block the order.
func TestFinalizeSurvivesNotifierFailure(t *testing.T) {
	f := newFixture()
	f.cart.Add(models.Product{ID: "p", Price: 1000})
	f.svc.notifier = failingNotifier{}

	pending, err := f.svc.Begin(validForm())
	require.NoError(t, err)

	order, err := f.svc.Finalize(pending.OrderID)
	require.NoError(t, err)
	require.Len(t, f.archive.List(orders.GuestKey), 1)
	require.NotEmpty(t, order.ID)
}

type failingNotifier struct{}

func (failingNotifier) SendOrderConfirmation(models.Order) error {
	return errors.New("smtp down")
}

func TestDismissDropsPendingWithoutOrder(t *testing.T) {
	f := newFixture()
	f.cart.Add(models.Product{ID: "p", Price: 1000})

	pending, err := f.svc.Begin(validForm())
	require.NoError(t, err)

	require.NoError(t, f.svc.Dismiss(pending.OrderID))

	// Cart kept, nothing archived, checkout forgotten.
	require.Len(t, f.cart.Active(), 1)
	require.Empty(t, f.archive.List(orders.GuestKey))
	_, err = f.svc.Pending(pending.OrderID)
	require.ErrorIs(t, err, ErrUnknownCheckout)

	// A late gateway callback for the dismissed checkout finds nothing.
	_, err = f.svc.Finalize(pending.OrderID)
	require.ErrorIs(t, err, ErrUnknownCheckout)
}

func TestFinalizeUnknownOrder(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Finalize("HH-NOPENOPE")
	require.ErrorIs(t, err, ErrUnknownCheckout)
}

func TestValidateShipping(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.ShippingForm)
		field  string
	}{
		{"first name blank", func(f *models.ShippingForm) { f.FirstName = " " }, "firstName"},
		{"last name blank", func(f *models.ShippingForm) { f.LastName = "" }, "lastName"},
		{"bad email", func(f *models.ShippingForm) { f.Email = "asha-at-gmail" }, "email"},
		{"short phone", func(f *models.ShippingForm) { f.Phone = "98765" }, "phone"},
		{"address blank", func(f *models.ShippingForm) { f.Address = "" }, "address"},
		{"city blank", func(f *models.ShippingForm) { f.City = "" }, "city"},
		{"state blank", func(f *models.ShippingForm) { f.State = "" }, "state"},
		{"zip too short", func(f *models.ShippingForm) { f.ZipCode = "1234" }, "zipCode"},
		{"zip too long", func(f *models.ShippingForm) { f.ZipCode = "1234567" }, "zipCode"},
		{"no country", func(f *models.ShippingForm) { f.Country = "" }, "country"},
		{"no shipping method", func(f *models.ShippingForm) { f.ShippingMethod = "" }, "shippingMethod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)
			errs := ValidateShipping(form)
			require.Contains(t, errs, tt.field)
			require.Len(t, errs, 1)
		})
	}

	t.Run("valid form passes", func(t *testing.T) {
		require.Empty(t, ValidateShipping(validForm()))
	})

	t.Run("phone and zip strip punctuation", func(t *testing.T) {
		form := validForm()
		form.Phone = "(987) 654-3210"
		form.ZipCode = "560 001"
		require.Empty(t, ValidateShipping(form))
	})
}

func TestNewOrderIDFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewOrderID()
		require.Regexp(t, orderIDRe, id)
		seen[id] = true
	}
	// Random enough to not collide across a hundred draws.
	require.Greater(t, len(seen), 90)
}
