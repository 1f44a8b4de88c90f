package booking

import (
	"context"
	"time"

	"riadsiena/models"
	"riadsiena/services/sheets"
)

// bookingColumns is the fixed column order of the bookings sheet. New
// columns go at the end; the sheet header must match.
var bookingColumns = []string{
	"Booking_ID", "Created_At", "First_Name", "Last_Name", "Email", "Phone",
	"Property", "Accommodation", "Check_In", "Check_Out", "Nights", "Guests",
	"Total_EUR", "Payment_Reference", "Payment_Status", "Message",
}

// SheetStore persists bookings by appending one row per record to the
// bookings sheet, keyed by Booking_ID.
type SheetStore struct {
	Sheets        sheets.Client
	SpreadsheetID string
	SheetName     string
}

// SaveBooking appends the booking as a single row in bookingColumns order.
func (s *SheetStore) SaveBooking(ctx context.Context, b *models.Booking) error {
	row := []any{
		b.BookingID,
		b.CreatedAt.Format(time.RFC3339),
		b.FirstName,
		b.LastName,
		b.Email,
		b.Phone,
		b.Property,
		b.AccommodationName,
		b.CheckIn,
		b.CheckOut,
		b.Nights,
		b.Guests,
		b.Total,
		b.PaymentReference,
		b.PaymentStatus,
		b.Message,
	}
	return s.Sheets.AppendRow(ctx, s.SpreadsheetID, s.SheetName, row)
}
