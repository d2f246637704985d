package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsSource reads the feed from a Google Sheets values range. Reads use an
// API key; appends need a credentialed service and are optional.
type SheetsSource struct {
	read          *sheets.Service
	write         *sheets.Service
	spreadsheetID string
	readRange     string
	timeout       time.Duration
}

func NewSheetsSource(ctx context.Context, cfg Config) (*SheetsSource, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("source %q: spreadsheet_id is required", cfg.ID)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("source %q: api_key is required", cfg.ID)
	}

	readSvc, err := sheets.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	var writeSvc *sheets.Service
	if cfg.CredentialsFile != "" {
		writeSvc, err = sheets.NewService(ctx,
			option.WithCredentialsFile(cfg.CredentialsFile),
			option.WithScopes(sheets.SpreadsheetsScope),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create credentialed sheets service: %w", err)
		}
	}

	timeout := time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	readRange := cfg.ReadRange
	if readRange == "" {
		readRange = "A1:J1000"
	}

	return &SheetsSource{
		read:          readSvc,
		write:         writeSvc,
		spreadsheetID: cfg.SpreadsheetID,
		readRange:     readRange,
		timeout:       timeout,
	}, nil
}

// Fetch pulls the configured range and flattens it to strings. Numeric and
// date cells arrive as interface values; everything is a string to us.
func (s *SheetsSource) Fetch(ctx context.Context) ([][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.read.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet values: %w", err)
	}

	table := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, strings.TrimSpace(fmt.Sprint(cell)))
		}
		table = append(table, row)
	}
	return table, nil
}

// Writable reports whether Append is available.
func (s *SheetsSource) Writable() bool {
	return s.write != nil
}

// Append writes a submission row to the end of the sheet so it survives the
// next full refresh.
func (s *SheetsSource) Append(ctx context.Context, row []string) error {
	if s.write == nil {
		return fmt.Errorf("source is read-only: no credentials configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	values := make([]interface{}, len(row))
	for i, cell := range row {
		values[i] = cell
	}

	_, err := s.write.Spreadsheets.Values.Append(s.spreadsheetID, s.readRange, &sheets.ValueRange{
		Values: [][]interface{}{values},
	}).ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}
	return nil
}
