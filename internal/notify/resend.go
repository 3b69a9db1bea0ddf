package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultResendBaseURL = "https://api.resend.com"

// EmailMessage is one outbound transactional email.
type EmailMessage struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// EmailSender delivers notification emails. Delivery is fire-and-forget:
// callers log failures and never block the submitter on them.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// Nop discards every message. Used when no API key is configured.
type Nop struct{}

// Send implements EmailSender.
func (Nop) Send(context.Context, EmailMessage) error { return nil }

// ResendClient sends emails through the Resend HTTP API.
type ResendClient struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewResendClient builds a client with the given key. A nil http.Client gets
// a sane timeout default.
func NewResendClient(client *http.Client, apiKey string) *ResendClient {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &ResendClient{client: client, apiKey: apiKey, baseURL: defaultResendBaseURL}
}

// Send posts the message to the Resend emails endpoint.
func (c *ResendClient) Send(ctx context.Context, msg EmailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	url := strings.TrimRight(c.baseURL, "/") + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email provider returned %d: %s", resp.StatusCode, extractProviderError(resp.Body))
	}

	return nil
}

func extractProviderError(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return "provider returned an error"
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return string(data)
}
