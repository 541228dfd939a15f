// Package checkout drives the order flow: validate the shipping form, price
// the cart, hand off to the hosted payment gateway, and finalize the order
// when the gateway confirms payment.
package checkout

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hearhut/storefront-api/cart"
	"github.com/hearhut/storefront-api/models"
	"github.com/hearhut/storefront-api/orders"
	"github.com/hearhut/storefront-api/pricing"
	"github.com/hearhut/storefront-api/store"
)

// State of a checkout. A flow moves Editing → Validating → AwaitingPayment →
// Finalizing → Complete; validation or gateway failure drops it back to
// Editing.
type State int

const (
	StateEditing State = iota
	StateValidating
	StateAwaitingPayment
	StateFinalizing
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateValidating:
		return "validating"
	case StateAwaitingPayment:
		return "awaiting_payment"
	case StateFinalizing:
		return "finalizing"
	case StateComplete:
		return "complete"
	}
	return "unknown"
}

var (
	// ErrCartEmpty is the guard that sends the shopper back to the cart
	// view. Not a validation failure.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrUnknownCheckout means no pending checkout exists for the order id.
	ErrUnknownCheckout = errors.New("no pending checkout for order id")
)

// FieldErrors maps form field names to messages. Produced whole: a form
// either passes completely or is returned with every failing field set.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	return fmt.Sprintf("shipping form has %d invalid fields", len(e))
}

// Pending is a checkout suspended on the payment gateway, persisted so the
// webhook can pick it up.
type Pending struct {
	OrderID    string              `json:"order_id"`
	Items      []models.CartItem   `json:"cart"`
	Form       models.ShippingForm `json:"formData"`
	Totals     pricing.Totals      `json:"totals"`
	PaymentURL string              `json:"payment_url"`
	GatewayRef string              `json:"gateway_ref"`
	State      State               `json:"state"`
	CreatedAt  time.Time           `json:"created_at"`
}

// Service wires the checkout collaborators together.
type Service struct {
	kv       store.KV
	cart     *cart.Store
	archive  *orders.Archive
	gateway  Gateway
	notifier Notifier
	session  func() *models.Session

	// OnOrderPlaced, when set, is called after every finalized order.
	OnOrderPlaced func(models.Order)
}

func NewService(kv store.KV, c *cart.Store, a *orders.Archive, g Gateway, n Notifier, session func() *models.Session) *Service {
	return &Service{kv: kv, cart: c, archive: a, gateway: g, notifier: n, session: session}
}

func pendingKey(orderID string) string { return "checkout_" + orderID }

// Begin runs the flow up to the gateway handoff: guard, validate, price,
// open a gateway session, persist the pending checkout.
func (s *Service) Begin(form models.ShippingForm) (*Pending, error) {
	items := s.cart.Active()
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	if errs := ValidateShipping(form); len(errs) > 0 {
		return nil, errs
	}

	totals := pricing.Compute(items, form.ShippingMethod)
	orderID := NewOrderID()

	sess, err := s.gateway.CreateSession(SessionRequest{
		OrderID:     orderID,
		AmountPaise: totals.PayablePaise(),
		Currency:    "INR",
		Description: "Order " + orderID,
		Receipt:     uuid.NewString(),
		Name:        form.FirstName + " " + form.LastName,
		Email:       form.Email,
		Contact:     form.Phone,
		Notes:       map[string]string{"shipping_method": form.ShippingMethod},
	})
	if err != nil {
		return nil, err
	}

	pending := &Pending{
		OrderID:    orderID,
		Items:      items,
		Form:       form,
		Totals:     totals,
		PaymentURL: sess.URL,
		GatewayRef: sess.Ref,
		State:      StateAwaitingPayment,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.kv.Put(pendingKey(orderID), pending); err != nil {
		return nil, fmt.Errorf("persist pending checkout: %w", err)
	}
	return pending, nil
}

// Finalize completes a checkout after the gateway reports success: send the
// confirmation email (best effort), append the order to the archive, clear
// the cart.
func (s *Service) Finalize(orderID string) (*models.Order, error) {
	var pending Pending
	if err := s.kv.Get(pendingKey(orderID), &pending); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnknownCheckout
		}
		return nil, err
	}

	pending.State = StateFinalizing
	_ = s.kv.Put(pendingKey(orderID), &pending)

	order := models.Order{
		ID:    pending.OrderID,
		Items: pending.Items,
		Form:  pending.Form,
		Total: float64(pending.Totals.Payable()),
		Date:  time.Now().UTC(),
	}

	// Fire and forget: order completion never waits on email delivery.
	if s.notifier != nil {
		go func(o models.Order) {
			if err := s.notifier.SendOrderConfirmation(o); err != nil {
				log.Printf("❌ Order confirmation email failed for %s: %v", o.ID, err)
			}
		}(order)
	}

	if err := s.archive.Append(orders.KeyFor(s.session()), order); err != nil {
		return nil, err
	}
	s.cart.Clear()
	_ = s.kv.Delete(pendingKey(orderID))

	if s.OnOrderPlaced != nil {
		s.OnOrderPlaced(order)
	}
	return &order, nil
}

// Dismiss drops a pending checkout: the shopper closed or the gateway
// declined. The cart is untouched and no order is created.
func (s *Service) Dismiss(orderID string) error {
	var pending Pending
	if err := s.kv.Get(pendingKey(orderID), &pending); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUnknownCheckout
		}
		return err
	}
	return s.kv.Delete(pendingKey(orderID))
}

// Pending looks up a suspended checkout by order id.
func (s *Service) Pending(orderID string) (*Pending, error) {
	var pending Pending
	if err := s.kv.Get(pendingKey(orderID), &pending); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnknownCheckout
		}
		return nil, err
	}
	return &pending, nil
}

var (
	emailRe  = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	digitsRe = regexp.MustCompile(`\D`)
)

// ValidateShipping checks every form field and returns the full per-field
// error set. Empty result means the form may be submitted.
func ValidateShipping(f models.ShippingForm) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.FirstName) == "" {
		errs["firstName"] = "First name is required"
	}
	if strings.TrimSpace(f.LastName) == "" {
		errs["lastName"] = "Last name is required"
	}
	if !emailRe.MatchString(f.Email) {
		errs["email"] = "Enter a valid email"
	}
	if len(digitsRe.ReplaceAllString(f.Phone, "")) < 10 {
		errs["phone"] = "Enter a valid phone number"
	}
	if strings.TrimSpace(f.Address) == "" {
		errs["address"] = "Address is required"
	}
	if strings.TrimSpace(f.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(f.State) == "" {
		errs["state"] = "State is required"
	}
	if n := len(digitsRe.ReplaceAllString(f.ZipCode, "")); n < 5 || n > 6 {
		errs["zipCode"] = "Enter a valid ZIP/Postal code"
	}
	if f.Country == "" {
		errs["country"] = "Country is required"
	}
	if f.ShippingMethod == "" {
		errs["shippingMethod"] = "Select a shipping method"
	}
	return errs
}

const orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderID generates an order id of the form "HH-" plus eight random
// base36 characters. Uniqueness is probabilistic, not guaranteed.
func NewOrderID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "HH-FALLBACK"
	}
	for i, b := range buf {
		buf[i] = orderIDAlphabet[int(b)%len(orderIDAlphabet)]
	}
	return "HH-" + string(buf)
}
