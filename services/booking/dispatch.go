package booking

import (
	"context"
	"fmt"
	"strings"

	"riadsiena/models"
	"riadsiena/services/notification"

	"go.uber.org/zap"
)

// Store persists a booking record. It is the one mandatory sink: a stay
// that cannot be persisted is unrecoverable, and the guest already paid.
type Store interface {
	SaveBooking(ctx context.Context, b *models.Booking) error
}

// WebhookSender fires the outbound booking notification.
type WebhookSender interface {
	Send(ctx context.Context, b *models.Booking) error
}

// Dispatcher fans a canonical booking out to its sinks in a fixed order:
// persistence first, then webhook, then email. Persistence must complete
// before any notification so operators can find the row an email
// references. The notification sinks are advisory; their failures are
// logged and swallowed, never returned to the caller.
type Dispatcher struct {
	Store   Store
	Webhook WebhookSender // nil when no webhook destination is configured
	Mailer  notification.Mailer
	Logger  *zap.Logger
}

// Dispatch runs the sinks for one booking. The returned error is non-nil
// only when the mandatory persistence of a stay failed; the record is
// then considered lost and the guest must resubmit.
func (d *Dispatcher) Dispatch(ctx context.Context, b *models.Booking) error {
	// Contact inquiries carry no stay; they are not persisted.
	if b.IsStay() {
		if err := d.Store.SaveBooking(ctx, b); err != nil {
			d.Logger.Error("booking: persistence failed",
				zap.String("bookingId", b.BookingID), zap.Error(err))
			return fmt.Errorf("failed to persist booking %s: %w", b.BookingID, err)
		}
		d.Logger.Info("booking: persisted", zap.String("bookingId", b.BookingID))
	}

	// Pure content submissions (no check-in) never trigger the webhook.
	if d.Webhook != nil && b.CheckIn != "" {
		if err := d.Webhook.Send(ctx, b); err != nil {
			d.Logger.Warn("booking: webhook failed",
				zap.String("bookingId", b.BookingID), zap.Error(err))
		} else {
			d.Logger.Info("booking: webhook sent", zap.String("bookingId", b.BookingID))
		}
	}

	d.sendEmail(ctx, b)
	return nil
}

// sendEmail fires exactly one of the two mutually exclusive templates.
func (d *Dispatcher) sendEmail(ctx context.Context, b *models.Booking) {
	switch {
	case b.PaymentStatus == models.PaymentCompleted && b.Email != "":
		if err := d.Mailer.SendBookingConfirmation(ctx, b); err != nil {
			d.Logger.Warn("booking: confirmation email failed",
				zap.String("bookingId", b.BookingID), zap.Error(err))
		}
	case b.IsContactInquiry():
		name := strings.TrimSpace(b.FirstName + " " + b.LastName)
		if err := d.Mailer.SendContactInquiry(ctx, name, b.Email, b.Phone, b.Message); err != nil {
			d.Logger.Warn("booking: inquiry email failed",
				zap.String("bookingId", b.BookingID), zap.Error(err))
		}
	}
}
