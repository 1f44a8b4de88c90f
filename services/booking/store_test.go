package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSheets struct {
	appended  [][]any
	appendErr error
}

func (f *fakeSheets) FetchRows(ctx context.Context, spreadsheetID, sheetName string) ([][]string, error) {
	return nil, nil
}

func (f *fakeSheets) AppendRow(ctx context.Context, spreadsheetID, sheetName string, values []any) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, values)
	return nil
}

func TestSheetStoreAppendsOneRowPerBooking(t *testing.T) {
	fs := &fakeSheets{}
	store := &SheetStore{Sheets: fs, SpreadsheetID: "sid", SheetName: "Bookings"}

	b := stayBooking()
	require.NoError(t, store.SaveBooking(context.Background(), b))

	require.Len(t, fs.appended, 1)
	row := fs.appended[0]
	require.Len(t, row, len(bookingColumns))
	assert.Equal(t, b.BookingID, row[0])
	assert.Equal(t, b.Email, row[4])
	assert.Equal(t, b.CheckIn, row[8])
	assert.Equal(t, b.PaymentStatus, row[14])
}

func TestSheetStorePropagatesAppendFailure(t *testing.T) {
	fs := &fakeSheets{appendErr: errors.New("unavailable")}
	store := &SheetStore{Sheets: fs, SpreadsheetID: "sid", SheetName: "Bookings"}
	assert.Error(t, store.SaveBooking(context.Background(), stayBooking()))
}
