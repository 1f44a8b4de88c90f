package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"riadsiena/models"

	"go.uber.org/zap"
)

// Mailer sends the two guest-facing email templates. Both are advisory
// from the dispatcher's perspective: errors are logged, not propagated.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, b *models.Booking) error
	SendContactInquiry(ctx context.Context, name, email, phone, message string) error
}

// SMTPMailer is the production Mailer on plain SMTP. When Host is empty
// the mailer is disabled and sends become logged no-ops.
type SMTPMailer struct {
	Host          string
	Port          string
	Username      string
	Password      string
	Sender        string
	OperatorEmail string
	Logger        *zap.Logger

	// sendMail is swappable in tests; defaults to smtp.SendMail.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(host, port, username, password, sender, operatorEmail string, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		Host:          host,
		Port:          port,
		Username:      username,
		Password:      password,
		Sender:        sender,
		OperatorEmail: operatorEmail,
		Logger:        logger,
		sendMail:      smtp.SendMail,
	}
}

// SendBookingConfirmation mails the guest their confirmation and copies
// the operator so the booking can be matched against the persisted row.
func (m *SMTPMailer) SendBookingConfirmation(ctx context.Context, b *models.Booking) error {
	if m.Host == "" {
		m.Logger.Warn("mailer disabled, skipping booking confirmation",
			zap.String("bookingId", b.BookingID))
		return nil
	}

	subject := fmt.Sprintf("Booking confirmed — %s (%s)", b.AccommodationName, b.BookingID)
	body := confirmationBody(b)

	recipients := []string{b.Email}
	if m.OperatorEmail != "" {
		recipients = append(recipients, m.OperatorEmail)
	}

	for _, to := range recipients {
		if err := m.send(to, subject, body, ""); err != nil {
			return err
		}
	}
	return nil
}

// SendContactInquiry mails the operator with Reply-To set to the guest.
func (m *SMTPMailer) SendContactInquiry(ctx context.Context, name, email, phone, message string) error {
	if m.Host == "" {
		m.Logger.Warn("mailer disabled, skipping contact inquiry", zap.String("from", email))
		return nil
	}
	if m.OperatorEmail == "" {
		m.Logger.Warn("no operator email configured, dropping contact inquiry", zap.String("from", email))
		return nil
	}

	subject := fmt.Sprintf("Website inquiry from %s", name)
	body := fmt.Sprintf(
		"New inquiry from the website contact form.\r\n\r\nName: %s\r\nEmail: %s\r\nPhone: %s\r\n\r\nMessage:\r\n%s\r\n",
		name, email, phone, message,
	)
	return m.send(m.OperatorEmail, subject, body, email)
}

func confirmationBody(b *models.Booking) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Thank you for your booking at %s.\r\n\r\n", b.Property)
	fmt.Fprintf(&sb, "Booking reference: %s\r\n", b.BookingID)
	fmt.Fprintf(&sb, "Accommodation: %s\r\n", b.AccommodationName)
	fmt.Fprintf(&sb, "Check-in: %s\r\n", b.CheckIn)
	fmt.Fprintf(&sb, "Check-out: %s\r\n", b.CheckOut)
	fmt.Fprintf(&sb, "Nights: %d\r\n", b.Nights)
	fmt.Fprintf(&sb, "Guests: %d\r\n", b.Guests)
	fmt.Fprintf(&sb, "Total: EUR %.2f\r\n", b.Total)
	if b.PaymentReference != "" {
		fmt.Fprintf(&sb, "Payment reference: %s\r\n", b.PaymentReference)
	}
	if b.Message != "" {
		fmt.Fprintf(&sb, "\r\nSpecial requests:\r\n%s\r\n", b.Message)
	}
	sb.WriteString("\r\nWe look forward to welcoming you.\r\n")
	return sb.String()
}

// send delivers one plain-text message over SMTP.
func (m *SMTPMailer) send(to, subject, body, replyTo string) error {
	sender := m.Sender
	if sender == "" {
		sender = fmt.Sprintf("no-reply@%s", m.Host)
	}

	var auth smtp.Auth
	if m.Username != "" && m.Password != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}

	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)

	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", sender, to, subject)
	if replyTo != "" {
		headers += fmt.Sprintf("Reply-To: %s\r\n", replyTo)
	}
	msg := []byte(headers +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n\r\n" +
		body)

	deliver := m.sendMail
	if deliver == nil {
		deliver = smtp.SendMail
	}
	if err := deliver(addr, auth, sender, []string{to}, msg); err != nil {
		return fmt.Errorf("mailer: send to %s failed: %w", to, err)
	}
	m.Logger.Info("mailer: email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
