// Package whatsapp is the adapter for the outbound WhatsApp HTTP gateway
// (Fonnte-style JSON API). The gateway's own delivery guarantees are out of
// scope; this client only maps its response onto a local success/failure.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/andikasp/atk-intel/internal/application/alerting"
	"github.com/andikasp/atk-intel/internal/domain"
	"github.com/andikasp/atk-intel/pkg/config"
)

// Compile-time check that Client implements the messaging port.
var _ alerting.MessageGateway = (*Client)(nil)

// Client calls the WhatsApp gateway's send endpoint. All failures, including
// transport errors, come back as plain errors; nothing is ever propagated as
// a panic to callers.
type Client struct {
	baseURL     string
	apiKey      string
	countryCode string
	httpClient  *http.Client
}

// NewClient builds the adapter. An empty API key makes every send fail with a
// descriptive error instead of reaching the network.
func NewClient(cfg config.WhatsAppConfig) *Client {
	return &Client{
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		countryCode: cfg.CountryCode,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type sendRequest struct {
	Target      string `json:"target"`
	Message     string `json:"message"`
	CountryCode string `json:"countryCode,omitempty"`
}

type sendResponse struct {
	Status bool   `json:"status"`
	Detail string `json:"detail,omitempty"`
	ID     string `json:"id,omitempty"`
}

// SendMessage normalizes the phone number and posts the message. The gateway
// answers {status, detail, id}; status=false and any transport error map to
// an error wrapping domain.ErrGatewayUnavailable.
func (c *Client) SendMessage(ctx context.Context, phone, message string) error {
	if c.apiKey == "" {
		return fmt.Errorf("whatsapp: WA_API_KEY not configured: %w", domain.ErrGatewayUnavailable)
	}

	target := FormatPhoneNumber(phone, c.countryCode)
	if target == "" {
		return fmt.Errorf("whatsapp: phone %q has no digits: %w", phone, domain.ErrInvalidInput)
	}

	body, err := json.Marshal(sendRequest{
		Target:      target,
		Message:     message,
		CountryCode: c.countryCode,
	})
	if err != nil {
		return fmt.Errorf("whatsapp: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("whatsapp: build request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp: call gateway: %v: %w", err, domain.ErrGatewayUnavailable)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return fmt.Errorf("whatsapp: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("whatsapp: gateway HTTP %d: %s: %w", resp.StatusCode, string(rawBody), domain.ErrGatewayUnavailable)
	}

	var out sendResponse
	if err := json.Unmarshal(rawBody, &out); err != nil {
		return fmt.Errorf("whatsapp: decode response: %w", err)
	}
	if !out.Status {
		return fmt.Errorf("whatsapp: gateway rejected message: %s: %w", out.Detail, domain.ErrGatewayUnavailable)
	}
	return nil
}
