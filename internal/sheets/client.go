// Package sheets fetches live booking rows from a Google Sheets
// spreadsheet, one sheet (tab) per rental property.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"golang.org/x/oauth2/google"

	"github.com/kervadec/gites-ledger/internal/config"
	"github.com/kervadec/gites-ledger/internal/ledger"
)

const (
	defaultBaseURL = "https://sheets.googleapis.com/v4"
	readonlyScope  = "https://www.googleapis.com/auth/spreadsheets.readonly"
)

// Client reads cell ranges from one spreadsheet through the Sheets v4
// values API, authenticated with a service-account JWT.
type Client struct {
	baseURL       string
	spreadsheetID string
	rangeTemplate string
	httpClient    *http.Client
}

// NewClient builds a client from the service-account credentials file
// referenced in the configuration.
func NewClient(ctx context.Context, cfg config.SheetsConfig) (*Client, error) {
	data, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(data, readonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parsing credentials file: %w", err)
	}

	httpClient := jwtConfig.Client(ctx)
	httpClient.Timeout = cfg.Timeout()

	return &Client{
		baseURL:       defaultBaseURL,
		spreadsheetID: cfg.SpreadsheetID,
		rangeTemplate: cfg.RangeTemplate,
		httpClient:    httpClient,
	}, nil
}

// valuesResponse mirrors the subset of the values.get payload we consume.
// Decoding straight into ledger.Row keeps the first 9 columns and discards
// the rest.
type valuesResponse struct {
	Range  string       `json:"range"`
	Values []ledger.Row `json:"values"`
}

// Rows fetches the property's sheet, columns A–I. An empty sheet yields an
// empty slice, not an error.
func (c *Client) Rows(ctx context.Context, property string) ([]ledger.Row, error) {
	readRange := fmt.Sprintf(c.rangeTemplate, property)
	fullURL := fmt.Sprintf("%s/spreadsheets/%s/values/%s",
		c.baseURL,
		url.PathEscape(c.spreadsheetID),
		url.PathEscape(readRange))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var values valuesResponse
	if err := json.Unmarshal(body, &values); err != nil {
		return nil, fmt.Errorf("parsing values for range %s: %w", readRange, err)
	}

	return values.Values, nil
}
