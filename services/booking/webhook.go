package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"riadsiena/models"
)

// WebhookClient posts the canonical record to the configured automation
// endpoint using the fixed external field-naming convention.
type WebhookClient struct {
	URL    string
	Client *http.Client
}

// NewWebhookClient builds a webhook sink with a bounded request timeout,
// so a hung endpoint can never block the booking response indefinitely.
func NewWebhookClient(url string) *WebhookClient {
	return &WebhookClient{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Send posts the booking. A non-2xx response counts as a failure.
func (w *WebhookClient) Send(ctx context.Context, b *models.Booking) error {
	payload := models.WebhookPayload{
		BookingID:           b.BookingID,
		Source:              "Website",
		Status:              "confirmed",
		FirstName:           b.FirstName,
		LastName:            b.LastName,
		Email:               b.Email,
		Phone:               b.Phone,
		Property:            b.Property,
		Room:                b.AccommodationName,
		CheckIn:             b.CheckIn,
		CheckOut:            b.CheckOut,
		Nights:              b.Nights,
		Guests:              b.Guests,
		TotalEUR:            b.Total,
		SpecialRequests:     b.Message,
		PaypalTransactionID: b.PaymentReference,
		CreatedAt:           b.CreatedAt.Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("webhook: failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.Client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook: endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
