package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spec-kit/clinic-service/internal/config"
)

// Routes for the hosted notification functions, one per record kind.
const (
	RouteAppointment = "send-appointment-notification"
	RouteDonor       = "send-donor-notification"
	RouteContact     = "send-contact-notification"
)

// Invoker triggers a remote notification function.
type Invoker interface {
	Invoke(ctx context.Context, route string, payload any) error
}

// Client calls the hosted functions endpoint over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds a functions client from config. A client with an empty
// base URL is valid; every Invoke becomes a no-op.
func NewClient(cfg config.NotificationConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.FunctionsURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout()},
	}
}

// Invoke POSTs the payload to {baseURL}/{route}. The response body is
// discarded; callers only care whether the invocation was accepted.
func (c *Client) Invoke(ctx context.Context, route string, payload any) error {
	if c.baseURL == "" {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+route, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("invoke %s: %w", route, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("invoke %s: unexpected status %d", route, resp.StatusCode)
	}
	return nil
}
