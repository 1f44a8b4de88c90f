package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"riadsiena/models"
)

// NewBookingID generates a time-based booking identifier. IDs from the
// same instance are monotonically distinguishable; the system does not
// deduplicate beyond that.
func NewBookingID() string {
	return fmt.Sprintf("RDS-%d", time.Now().UnixMilli())
}

// Resolve normalizes one of the overlapping client payload shapes into a
// canonical booking record. Every per-field coercion is defensive: a bad
// field falls back to its default, it never aborts normalization.
func Resolve(input models.BookingInput, propertyName string) models.Booking {
	first, last := resolveName(input)

	b := models.Booking{
		BookingID:         NewBookingID(),
		FirstName:         first,
		LastName:          last,
		Email:             input.Email,
		Phone:             input.Phone,
		Property:          firstNonEmpty(input.Property, propertyName),
		AccommodationName: firstNonEmpty(input.Room, input.Tent, input.Experience, input.RoomPreference, input.ItemName),
		CheckIn:           input.CheckIn,
		CheckOut:          input.CheckOut,
		Nights:            parsePositiveInt(input.Nights.String(), 1),
		Guests:            parsePositiveInt(input.Guests.String(), 1),
		Total:             parseAmount(firstNonEmpty(input.Total.String(), input.TotalEUR.String())),
		PaymentReference:  firstNonEmpty(input.PaypalTransactionID, input.PaypalOrderID),
		Message:           input.Message,
		CreatedAt:         time.Now().UTC(),
	}

	if b.CheckOut == "" && b.CheckIn != "" && b.Nights > 0 {
		b.CheckOut = deriveCheckOut(b.CheckIn, b.Nights)
	}

	b.PaymentStatus = resolvePaymentStatus(input.PaymentStatus, b.PaymentReference)
	return b
}

// resolveName prefers explicit first/last fields; the legacy contact form
// sends a single name, split on whitespace with the first token as the
// first name and the remainder joined as the last name.
func resolveName(input models.BookingInput) (string, string) {
	if input.FirstName != "" || input.LastName != "" {
		return input.FirstName, input.LastName
	}
	parts := strings.Fields(input.Name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// deriveCheckOut computes checkIn + nights days in the stay's calendar.
// An unparseable check-in leaves the checkout empty.
func deriveCheckOut(checkIn string, nights int) string {
	t, err := parseDate(checkIn)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, nights).Format("2006-01-02")
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// resolvePaymentStatus: an explicit status string is authoritative; a
// payment reference alone implies COMPLETED; otherwise PENDING.
func resolvePaymentStatus(explicit, paymentRef string) string {
	if explicit != "" {
		return strings.ToUpper(strings.TrimSpace(explicit))
	}
	if paymentRef != "" {
		return models.PaymentCompleted
	}
	return models.PaymentPending
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// parsePositiveInt parses an integer, truncating decimals the way the
// client forms sometimes send them; failures and non-positive results
// fall back to def.
func parsePositiveInt(value string, def int) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		f, ferr := strconv.ParseFloat(value, 64)
		if ferr != nil {
			return def
		}
		n = int(f)
	}
	if n <= 0 {
		return def
	}
	return n
}

// parseAmount coerces a total field to a non-negative float; invalid is 0.
func parseAmount(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}
