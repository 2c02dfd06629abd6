// Package newsletter is a thin passthrough to the external subscription
// service. Calls are fire-and-forget: failures are reported but never
// retried here.
package newsletter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 5 * time.Second

type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// Subscription is the subscribe payload. Frequency and categories are
// optional preferences.
type Subscription struct {
	Email      string   `json:"email"`
	Frequency  string   `json:"frequency,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

func (c *Client) Subscribe(ctx context.Context, sub Subscription) error {
	return c.post(ctx, "/subscribe", sub)
}

func (c *Client) Unsubscribe(ctx context.Context, email string) error {
	return c.post(ctx, "/unsubscribe", map[string]string{"email": email})
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	if c.baseURL == "" {
		return fmt.Errorf("newsletter service not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("newsletter service returned status %d", resp.StatusCode)
	}

	return nil
}
