package checkout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrGatewayUnavailable means the gateway could not be reached or its
// client failed to load. Retryable by the shopper.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// SessionRequest opens a hosted payment session. Amounts are in paise.
type SessionRequest struct {
	OrderID     string
	AmountPaise int64
	Currency    string
	Description string
	Receipt     string
	Name        string
	Email       string
	Contact     string
	Notes       map[string]string
}

// GatewaySession is the hosted page the shopper is sent to.
type GatewaySession struct {
	URL string
	Ref string
}

// Gateway opens payment sessions. The flow suspends after CreateSession
// until the gateway's webhook reports the outcome.
type Gateway interface {
	CreateSession(req SessionRequest) (*GatewaySession, error)
}

// GatewayConfig holds the hosted gateway credentials.
type GatewayConfig struct {
	KeyID     string `yaml:"key_id"`
	KeySecret string `yaml:"key_secret"`
	APIURL    string `yaml:"api_url"`
	Mode      string `yaml:"mode"` // "sandbox" or "live"
}

// HostedGateway talks to the payment provider's session API.
type HostedGateway struct {
	cfg    GatewayConfig
	client *http.Client
}

// NewHostedGateway validates the config and returns the client.
func NewHostedGateway(cfg GatewayConfig) (*HostedGateway, error) {
	if cfg.KeyID == "" || cfg.KeySecret == "" || cfg.APIURL == "" {
		return nil, fmt.Errorf("payment gateway configuration missing")
	}
	return &HostedGateway{cfg: cfg, client: &http.Client{Timeout: 15 * time.Second}}, nil
}

type gatewayResponse struct {
	Order struct {
		Ref string `json:"ref"`
		URL string `json:"url"`
	} `json:"order"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (g *HostedGateway) CreateSession(req SessionRequest) (*GatewaySession, error) {
	test := 0
	if g.cfg.Mode == "sandbox" || g.cfg.Mode == "dev" {
		test = 1
	}

	payload := map[string]interface{}{
		"method":  "create",
		"key":     g.cfg.KeyID,
		"authkey": g.cfg.KeySecret,
		"order": map[string]interface{}{
			"orderid":     req.OrderID,
			"test":        test,
			"amount":      req.AmountPaise,
			"currency":    req.Currency,
			"description": req.Description,
			"receipt":     req.Receipt,
		},
		"prefill": map[string]string{
			"name":    req.Name,
			"email":   req.Email,
			"contact": req.Contact,
		},
		"notes": req.Notes,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequest(http.MethodPost, g.cfg.APIURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: gateway API error (%d): %s", ErrGatewayUnavailable, resp.StatusCode, string(raw))
	}

	var gwResp gatewayResponse
	if err := json.Unmarshal(raw, &gwResp); err != nil {
		return nil, fmt.Errorf("parse gateway response: %w", err)
	}
	if gwResp.Error != nil {
		return nil, fmt.Errorf("gateway error: %s", gwResp.Error.Message)
	}
	if gwResp.Order.URL == "" {
		return nil, fmt.Errorf("gateway returned empty payment URL")
	}
	return &GatewaySession{URL: gwResp.Order.URL, Ref: gwResp.Order.Ref}, nil
}
