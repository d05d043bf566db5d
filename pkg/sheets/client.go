package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/noumansaleem/partnership-ledger-backend/pkg/config"
	"github.com/noumansaleem/partnership-ledger-backend/pkg/logger"
)

const metadataCheckTimeout = 10 * time.Second

// Client wraps the Sheets API for a single configured spreadsheet.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	sheetName     string
}

var (
	errSpreadsheetIDRequired = errors.New("spreadsheet id is required")
	errClientNotInitialized  = errors.New("sheets client not initialized")
)

type Pinger interface {
	Ping(context.Context) error
}

// NewClient creates a Sheets client and verifies the configured spreadsheet
// is reachable.
func NewClient(ctx context.Context, cfg config.SheetsConfig, logg *logger.Logger) (*Client, error) {
	spreadsheetID := strings.TrimSpace(cfg.SpreadsheetID)
	if spreadsheetID == "" {
		return nil, errSpreadsheetIDRequired
	}

	svc, err := sheetsapi.NewService(ctx, clientOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}

	client := &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     cfg.SheetName,
	}

	if err := client.Ping(ctx); err != nil {
		return nil, err
	}

	if logg != nil {
		logg.Info(ctx, "sheets client initialized")
	}

	return client, nil
}

func clientOptions(cfg config.SheetsConfig) []option.ClientOption {
	opts := []option.ClientOption{option.WithScopes(sheetsapi.SpreadsheetsScope)}
	switch {
	case strings.TrimSpace(cfg.CredentialsJSON) != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case strings.TrimSpace(cfg.CredentialsFile) != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	return opts
}

// SheetName returns the tab holding the transaction rows.
func (c *Client) SheetName() string {
	if c == nil {
		return ""
	}
	return c.sheetName
}

// Ping verifies the spreadsheet exists and is readable.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.svc == nil {
		return errClientNotInitialized
	}

	ctx, cancel := context.WithTimeout(ctx, metadataCheckTimeout)
	defer cancel()

	if _, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do(); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("spreadsheet %q does not exist", c.spreadsheetID)
		}
		return fmt.Errorf("checking spreadsheet %q: %w", c.spreadsheetID, err)
	}
	return nil
}

// Values reads the given A1 range and returns the raw cell grid.
func (c *Client) Values(ctx context.Context, rng string) ([][]any, error) {
	if c == nil || c.svc == nil {
		return nil, errClientNotInitialized
	}
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading range %q: %w", rng, err)
	}
	return resp.Values, nil
}

// Update overwrites the given A1 range with the provided grid.
func (c *Client) Update(ctx context.Context, rng string, values [][]any) error {
	if c == nil || c.svc == nil {
		return errClientNotInitialized
	}
	body := &sheetsapi.ValueRange{Values: values}
	_, err := c.svc.Spreadsheets.Values.
		Update(c.spreadsheetID, rng, body).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("updating range %q: %w", rng, err)
	}
	return nil
}

// Clear empties every cell in the given A1 range.
func (c *Client) Clear(ctx context.Context, rng string) error {
	if c == nil || c.svc == nil {
		return errClientNotInitialized
	}
	_, err := c.svc.Spreadsheets.Values.
		Clear(c.spreadsheetID, rng, &sheetsapi.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("clearing range %q: %w", rng, err)
	}
	return nil
}

// Append adds rows after the last data row of the given A1 range.
func (c *Client) Append(ctx context.Context, rng string, values [][]any) error {
	if c == nil || c.svc == nil {
		return errClientNotInitialized
	}
	body := &sheetsapi.ValueRange{Values: values}
	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, rng, body).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("appending to range %q: %w", rng, err)
	}
	return nil
}

func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusNotFound
	}
	return false
}
