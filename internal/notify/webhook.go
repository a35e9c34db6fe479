package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const webhookTimeout = 5 * time.Second

// sinkPayload is the JSON message shape shared by all sinks
type sinkPayload struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// WebhookSink delivers notifications by POSTing them to an external mail
// relay endpoint.
type WebhookSink struct {
	url    string
	client *http.Client
}

// NewWebhookSink creates a WebhookSink for the given relay URL
func NewWebhookSink(url string) *WebhookSink {
	return &WebhookSink{
		url: url,
		// short timeout so a slow relay cannot stall the settlement batch
		client: &http.Client{Timeout: webhookTimeout},
	}
}

// Send posts one message to the relay. Any non-2xx response is a failure.
func (s *WebhookSink) Send(ctx context.Context, email, subject, message string) error {
	body, err := json.Marshal(sinkPayload{
		Email:   email,
		Subject: subject,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("webhook sink: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook sink: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook sink: post to relay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook sink: relay returned status %d", resp.StatusCode)
	}
	return nil
}
