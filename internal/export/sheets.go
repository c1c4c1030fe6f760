package export

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// SheetsWriter implements SheetWriter using the Google Sheets API.
type SheetsWriter struct {
	spreadsheetID string
	svc           *sheets.Service
}

// NewSheetsWriter creates a SheetsWriter authenticated with a service account JSON.
func NewSheetsWriter(ctx context.Context, spreadsheetID, credentialsJSON string) (*SheetsWriter, error) {
	creds, err := google.CredentialsFromJSON(
		ctx,
		[]byte(credentialsJSON),
		sheets.SpreadsheetsScope,
	)
	if err != nil {
		return nil, fmt.Errorf("parsing google credentials: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}

	return &SheetsWriter{spreadsheetID: spreadsheetID, svc: svc}, nil
}

// Write ensures the export tabs exist, then clears and rewrites them.
func (w *SheetsWriter) Write(ctx context.Context, wb Workbook) error {
	if err := w.ensureSheets(ctx, TabFunds, TabManagers, TabLatest); err != nil {
		return err
	}

	_, err := w.svc.Spreadsheets.Values.BatchClear(
		w.spreadsheetID,
		&sheets.BatchClearValuesRequest{
			Ranges: []string{
				TabFunds + "!A:H",
				TabManagers + "!A:D",
				TabLatest + "!A:H",
			},
		},
	).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clearing sheets: %w", err)
	}

	_, err = w.svc.Spreadsheets.Values.BatchUpdate(
		w.spreadsheetID,
		&sheets.BatchUpdateValuesRequest{
			ValueInputOption: "USER_ENTERED",
			Data: []*sheets.ValueRange{
				{Range: TabFunds + "!A1", Values: wb.Funds},
				{Range: TabManagers + "!A1", Values: wb.Managers},
				{Range: TabLatest + "!A1", Values: wb.Latest},
			},
		},
	).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("writing sheets: %w", err)
	}

	return nil
}

// ensureSheets creates any of the named sheets that do not already exist.
func (w *SheetsWriter) ensureSheets(ctx context.Context, names ...string) error {
	spreadsheet, err := w.svc.Spreadsheets.Get(w.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("getting spreadsheet metadata: %w", err)
	}

	existing := make(map[string]bool, len(spreadsheet.Sheets))
	for _, s := range spreadsheet.Sheets {
		existing[s.Properties.Title] = true
	}

	var requests []*sheets.Request
	for _, name := range names {
		if !existing[name] {
			requests = append(requests, &sheets.Request{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{Title: name},
				},
			})
		}
	}

	if len(requests) == 0 {
		return nil
	}

	_, err = w.svc.Spreadsheets.BatchUpdate(
		w.spreadsheetID,
		&sheets.BatchUpdateSpreadsheetRequest{Requests: requests},
	).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("creating sheets: %w", err)
	}

	return nil
}
