package models

import "time"

// Payment status values for a booking record.
const (
	PaymentCompleted = "COMPLETED"
	PaymentPending   = "PENDING"
)

// Booking is the canonical record produced from any accepted submission
// shape. It is assembled once per request and never mutated after dispatch
// begins; durability lives entirely in the persistence sink.
type Booking struct {
	BookingID         string    `json:"bookingId"`         // Generated "RDS-<unix-ms>" identifier, shared by every sink
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Property          string    `json:"property"`          // Defaults to the configured property name
	AccommodationName string    `json:"accommodationName"` // Room, tent, experience or generic item label
	CheckIn           string    `json:"checkIn"`           // "YYYY-MM-DD", empty for contact inquiries
	CheckOut          string    `json:"checkOut"`          // Derived from CheckIn + Nights when absent
	Nights            int       `json:"nights"`
	Guests            int       `json:"guests"`
	Total             float64   `json:"total"`
	PaymentReference  string    `json:"paymentReference"` // PayPal transaction or order id
	PaymentStatus     string    `json:"paymentStatus"`    // COMPLETED or PENDING
	Message           string    `json:"message"`          // Special requests, or the contact-form body
	CreatedAt         time.Time `json:"createdAt"`
}

// IsStay reports whether the record books an actual stay (a check-in date
// was supplied). Only stays make the persistence sink mandatory.
func (b *Booking) IsStay() bool {
	return b.CheckIn != ""
}

// IsContactInquiry reports whether the record is a plain contact message:
// no stay attached, no payment marker, but a message and a reply address.
func (b *Booking) IsContactInquiry() bool {
	return b.CheckIn == "" && b.PaymentReference == "" && b.Message != "" && b.Email != ""
}

// BookingInput is the superset of fields the various client forms send.
// The legacy contact form, the PayPal room/tent/experience modals and the
// generic item modal all post overlapping subsets of these keys.
type BookingInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Name      string `json:"name"` // Legacy single-field name, split on whitespace
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`

	Property       string `json:"property"`
	Room           string `json:"room"`
	Tent           string `json:"tent"`
	Experience     string `json:"experience"`
	RoomPreference string `json:"roomPreference"` // Legacy contact-form field
	ItemName       string `json:"itemName"`       // Generic item modal

	CheckIn  string         `json:"checkIn"`
	CheckOut string         `json:"checkOut"`
	Nights   FlexibleNumber `json:"nights"`
	Guests   FlexibleNumber `json:"guests"`
	Units    FlexibleNumber `json:"units"`
	Total    FlexibleNumber `json:"total"`
	TotalEUR FlexibleNumber `json:"totalEUR"`

	PaypalTransactionID string `json:"paypalTransactionId"`
	PaypalOrderID       string `json:"paypalOrderId"`
	PaymentStatus       string `json:"paymentStatus"` // Explicit status, authoritative when present
}

// BookingResponse is returned to the submitting client.
type BookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// WebhookPayload is the fixed external naming convention of the outbound
// booking webhook. Field names must not change; the receiving automation
// maps on them verbatim.
type WebhookPayload struct {
	BookingID           string  `json:"booking_id"`
	Source              string  `json:"source"`
	Status              string  `json:"status"`
	FirstName           string  `json:"first_name"`
	LastName            string  `json:"last_name"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone"`
	Property            string  `json:"property"`
	Room                string  `json:"room"`
	CheckIn             string  `json:"check_in"`
	CheckOut            string  `json:"check_out"`
	Nights              int     `json:"nights"`
	Guests              int     `json:"guests"`
	TotalEUR            float64 `json:"total_eur"`
	SpecialRequests     string  `json:"special_requests"`
	PaypalTransactionID string  `json:"paypal_transaction_id"`
	CreatedAt           string  `json:"created_at"`
}
