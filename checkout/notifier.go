package checkout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hearhut/storefront-api/models"
)

// Notifier sends the order confirmation. Delivery is best effort; the
// checkout flow never depends on it.
type Notifier interface {
	SendOrderConfirmation(order models.Order) error
}

// EmailConfig identifies the transactional email service account.
type EmailConfig struct {
	ServiceID  string `yaml:"service_id"`
	TemplateID string `yaml:"template_id"`
	PublicKey  string `yaml:"public_key"`
	APIURL     string `yaml:"api_url"`
}

// EmailNotifier posts confirmation emails through the EmailJS-style REST
// API the storefront's contact form already uses.
type EmailNotifier struct {
	cfg    EmailConfig
	client *http.Client
}

func NewEmailNotifier(cfg EmailConfig) *EmailNotifier {
	if cfg.APIURL == "" {
		cfg.APIURL = "https://api.emailjs.com/api/v1.0/email/send"
	}
	return &EmailNotifier{cfg: cfg, client: &http.Client{Timeout: 15 * time.Second}}
}

func (n *EmailNotifier) SendOrderConfirmation(order models.Order) error {
	payload := map[string]interface{}{
		"service_id":  n.cfg.ServiceID,
		"template_id": n.cfg.TemplateID,
		"user_id":     n.cfg.PublicKey,
		"template_params": map[string]string{
			"from_name":  "HearHut",
			"from_email": "no-reply@hearhut.com",
			"to_email":   order.Form.Email,
			"subject":    fmt.Sprintf("Your HearHut Order %s is Confirmed", order.ID),
			"message":    confirmationBody(order),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, n.cfg.APIURL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("email API error (%d): %s", resp.StatusCode, string(raw))
	}
	return nil
}

func confirmationBody(order models.Order) string {
	var items []string
	for _, it := range order.Items {
		items = append(items, fmt.Sprintf("• %s x%d - ₹%.0f", it.Name, it.Quantity, it.Price*float64(it.Quantity)))
	}

	shippingLabel := "Standard (3-5 days)"
	if order.Form.ShippingMethod == models.ShippingExpress {
		shippingLabel = "Express (1-2 days)"
	}

	f := order.Form
	return fmt.Sprintf(
		"Hi %s,\n\n"+
			"Thank you for your purchase! Your order %s has been placed successfully.\n\n"+
			"Items:\n%s\n\n"+
			"Shipping: %s\n"+
			"Shipping Address:\n%s %s\n%s\n%s, %s %s\n%s\n\n"+
			"Order Total: ₹%.0f\n\n"+
			"We'll send another email when your items ship.\n\n"+
			"— HearHut Team",
		f.FirstName, order.ID, strings.Join(items, "\n"), shippingLabel,
		f.FirstName, f.LastName, f.Address, f.City, f.State, f.ZipCode, f.Country,
		order.Total,
	)
}
