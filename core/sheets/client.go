package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"order-reconciler/core/credentials"
	"order-reconciler/core/utils"
)

// Client defines the operations the reconciler needs from the spreadsheet
// ledger. Rows are ordered sequences of strings; column order is significant.
type Client interface {
	// Values fetches all rows of a named range.
	Values(ctx context.Context, rangeName string) ([][]string, error)
	// Append appends one row to a named range.
	Append(ctx context.Context, rangeName string, row []string) error
	// UpdateRow overwrites one row of a sheet. rowNumber is the stored
	// zero-based row index; the values API range is 1-based.
	UpdateRow(ctx context.Context, sheet string, rowNumber int, values [][]string) error
}

// NewClient creates a values-API client authenticated through the given
// credential cache.
func NewClient(cfg Config, account credentials.Config, cache *credentials.Cache) Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &httpClient{
		cfg:     cfg,
		account: account,
		cache:   cache,
		client:  &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

type httpClient struct {
	cfg     Config
	account credentials.Config
	cache   *credentials.Cache
	client  *http.Client
}

func (c *httpClient) Values(ctx context.Context, rangeName string) ([][]string, error) {
	endpoint := fmt.Sprintf("%s/%s/values/%s", c.cfg.BaseURL, c.cfg.SpreadsheetID, url.PathEscape(rangeName))

	body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	// Cells usually decode as strings, but numeric and boolean cells
	// arrive untyped, so decode loosely and coerce.
	var result struct {
		Values [][]any `json:"values"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode values response: %w", err)
	}

	rows := make([][]string, 0, len(result.Values))
	for _, raw := range result.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, utils.ToString(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *httpClient) Append(ctx context.Context, rangeName string, row []string) error {
	endpoint := fmt.Sprintf("%s/%s/values/%s:append?valueInputOption=USER_ENTERED",
		c.cfg.BaseURL, c.cfg.SpreadsheetID, url.PathEscape(rangeName))

	payload, err := json.Marshal(map[string]any{"values": [][]string{row}})
	if err != nil {
		return fmt.Errorf("encode append payload: %w", err)
	}

	if _, err := c.do(ctx, http.MethodPost, endpoint, payload); err != nil {
		return err
	}
	return nil
}

func (c *httpClient) UpdateRow(ctx context.Context, sheet string, rowNumber int, values [][]string) error {
	// The values API is 1-based.
	rangeName := fmt.Sprintf("%s!A%d:Z%d", sheet, rowNumber+1, rowNumber+1)
	endpoint := fmt.Sprintf("%s/%s/values/%s?valueInputOption=USER_ENTERED",
		c.cfg.BaseURL, c.cfg.SpreadsheetID, url.PathEscape(rangeName))

	payload, err := json.Marshal(map[string]any{"values": values})
	if err != nil {
		return fmt.Errorf("encode update payload: %w", err)
	}

	if _, err := c.do(ctx, http.MethodPut, endpoint, payload); err != nil {
		return err
	}
	return nil
}

// do performs one authenticated request and returns the response body.
// Non-success responses become errors carrying the response text; the client
// never retries on its own.
func (c *httpClient) do(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	token, err := c.cache.Token(ctx, c.account.ClientEmail, c.account.PrivateKey)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("sheets request failed: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}
