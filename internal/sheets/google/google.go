// Package google binds the table store boundary to a Google Sheets
// spreadsheet: one sheet per table, first row is the header.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"registro/internal/cache"
	"registro/internal/sheets"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// Client talks to one spreadsheet. Reads go through a short-lived LRU
// so repeated loads within a session do not hammer the API; a replace
// invalidates the table's entry.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	readCache     *cache.LRU[[]sheets.Row]
}

var _ sheets.TableStore = (*Client)(nil)

const (
	cacheSize = 8
	cacheTTL  = 30 * time.Second
)

// NewFromEnv creates a Sheets client using environment variables.
// Required: GOOGLE_SPREADSHEET_ID. Credentials come from
// GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS.
func NewFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}
	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		readCache:     cache.NewLRU[[]sheets.Row](cacheSize, cacheTTL),
	}, nil
}

func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return svc, nil
}

// ReadTable reads the named sheet. The first row is treated as the
// header; remaining rows are mapped by header position. Rows shorter
// than the header are padded with empty cells.
func (c *Client) ReadTable(ctx context.Context, name string) ([]sheets.Row, error) {
	if c.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}
	if cached, ok := c.readCache.Get(name); ok {
		return cloneRows(cached), nil
	}

	rng := fmt.Sprintf("%s!A:Z", name)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}
	rows := parseValues(resp.Values, sheets.Headers(name))
	slog.InfoContext(ctx, "Read table from spreadsheet",
		"table", name, "row_count", len(rows))

	c.readCache.Set(name, cloneRows(rows))
	return rows, nil
}

// ReplaceTable clears the sheet and writes header + rows back in one
// update. The caller sees it as a full overwrite.
func (c *Client) ReplaceTable(ctx context.Context, name string, header []string, rows []sheets.Row) error {
	if c.svc == nil {
		return errors.New("sheets service not initialized")
	}

	rng := fmt.Sprintf("%s!A:Z", name)
	if _, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, rng, &gsheet.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear %s: %w", rng, err)
	}

	values := make([][]any, 0, len(rows)+1)
	headerCells := make([]any, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	values = append(values, headerCells)
	for _, r := range rows {
		cells := make([]any, len(header))
		for i, h := range header {
			cells[i] = r.Get(h)
		}
		values = append(values, cells)
	}

	writeRange := fmt.Sprintf("%s!A1", name)
	vr := &gsheet.ValueRange{Values: values}
	if _, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, writeRange, vr).
		ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return fmt.Errorf("update %s: %w", writeRange, err)
	}

	c.readCache.Delete(name)
	slog.InfoContext(ctx, "Replaced table in spreadsheet",
		"table", name, "row_count", len(rows))
	return nil
}

func cloneRows(in []sheets.Row) []sheets.Row {
	out := make([]sheets.Row, 0, len(in))
	for _, r := range in {
		out = append(out, r.Clone())
	}
	return out
}
