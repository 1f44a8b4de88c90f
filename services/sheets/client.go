package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Client is the narrow surface of the tabular store the rest of the
// service depends on: read a sheet's rows, append one row. Handlers and
// services take this interface so tests can inject fakes.
type Client interface {
	FetchRows(ctx context.Context, spreadsheetID, sheetName string) ([][]string, error)
	AppendRow(ctx context.Context, spreadsheetID, sheetName string, values []any) error
}

// GoogleClient implements Client against the Google Sheets API.
type GoogleClient struct {
	svc *sheetsapi.Service
}

// NewGoogleClient builds a Sheets API client from a service-account
// credentials file.
func NewGoogleClient(ctx context.Context, credentialsFile string) (*GoogleClient, error) {
	svc, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("sheets: failed to create service: %w", err)
	}
	return &GoogleClient{svc: svc}, nil
}

// FetchRows reads all populated cells of the named sheet as strings.
func (c *GoogleClient) FetchRows(ctx context.Context, spreadsheetID, sheetName string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, sheetName).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: failed to read %q: %w", sheetName, err)
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// AppendRow appends one row of values to the named sheet.
func (c *GoogleClient) AppendRow(ctx context.Context, spreadsheetID, sheetName string, values []any) error {
	vr := &sheetsapi.ValueRange{Values: [][]any{values}}
	_, err := c.svc.Spreadsheets.Values.Append(spreadsheetID, sheetName, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: failed to append to %q: %w", sheetName, err)
	}
	return nil
}
