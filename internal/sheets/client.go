// Package sheets mirrors trips and expenses to an external spreadsheet:
// best-effort row appends outward, full-table pull with a last-write-wins
// merge inward. Local state is always the source of truth; every network
// failure here degrades to a logged outcome, never a thrown error in the
// caller's control flow.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	sheetsBaseURL  = "https://sheets.googleapis.com/v4/spreadsheets"
	requestTimeout = 15 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

// ErrNotConfigured indicates sheet id / API key are missing.
var ErrNotConfigured = errors.New("sheets: sheet id and API key not configured")

// Outcome reports what happened to a best-effort outbound write.
// Callers are allowed to ignore it.
type Outcome int

const (
	// OutcomeSkipped means sync is not configured; nothing was sent.
	OutcomeSkipped Outcome = iota
	// OutcomeSent means the structured API acknowledged the append.
	OutcomeSent
	// OutcomeUnknown means the script transport accepted the request;
	// its response is opaque so success cannot be observed.
	OutcomeUnknown
	// OutcomeFailed means the write was attempted and failed. Local
	// state is unaffected.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSent:
		return "sent"
	case OutcomeUnknown:
		return "sent (unconfirmed)"
	case OutcomeFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// Client talks to one spreadsheet via two transports: an append-only
// script endpoint (preferred when configured) and the structured values
// API (fallback, also the only read path).
type Client struct {
	sheetID   string
	apiKey    string
	scriptURL string
	baseURL   string
	http      *http.Client
}

// NewClient creates a client for the given credentials. Returns nil
// when sheet id or API key is missing, which means sync is off.
func NewClient(sheetID, apiKey, scriptURL string) *Client {
	if sheetID == "" || apiKey == "" {
		return nil
	}
	return &Client{
		sheetID:   sheetID,
		apiKey:    apiKey,
		scriptURL: scriptURL,
		baseURL:   sheetsBaseURL,
		http:      &http.Client{},
	}
}

// scriptPayload is the wire shape of one script-transport append.
type scriptPayload struct {
	SheetName string   `json:"sheetName"`
	Headers   []string `json:"headers"`
	Values    []any    `json:"values"`
}

// AppendRow appends one row to the named sheet. The script transport is
// tried first when configured; its response is opaque, so the best it
// can report is OutcomeUnknown. On script failure the structured API is
// the fallback.
func (c *Client) AppendRow(ctx context.Context, sheetName, valueRange string, headers []string, values []any) (Outcome, error) {
	if c.scriptURL != "" {
		scriptErr := c.postScript(ctx, scriptPayload{SheetName: sheetName, Headers: headers, Values: values})
		if scriptErr == nil {
			return OutcomeUnknown, nil
		}
		// Script transport unreachable; fall back to the structured API.
		if apiErr := c.appendValues(ctx, valueRange, values); apiErr != nil {
			return OutcomeFailed, errors.Join(scriptErr, apiErr)
		}
		return OutcomeSent, nil
	}

	if err := c.appendValues(ctx, valueRange, values); err != nil {
		return OutcomeFailed, err
	}
	return OutcomeSent, nil
}

func (c *Client) postScript(ctx context.Context, payload scriptPayload) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.scriptURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	// The script endpoint expects a plain-text body to avoid a
	// preflight; it never returns an interpretable response.
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
	_ = resp.Body.Close()
	return nil
}

func (c *Client) appendValues(ctx context.Context, valueRange string, values []any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	u := fmt.Sprintf("%s/%s/values/%s:append?valueInputOption=USER_ENTERED&key=%s",
		c.baseURL, c.sheetID, url.PathEscape(valueRange), url.QueryEscape(c.apiKey))

	body, err := json.Marshal(map[string][][]any{"values": {values}})
	if err != nil {
		return fmt.Errorf("encoding values: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("append failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("append: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// valuesResponse is the structured API's range-fetch shape.
type valuesResponse struct {
	Values [][]any `json:"values"`
}

// FetchRange reads all rows in the given range, coercing every cell to
// a string. Spreadsheet cells arrive as arbitrary JSON scalars.
func (c *Client) FetchRange(ctx context.Context, valueRange string) ([][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	u := fmt.Sprintf("%s/%s/values/%s?key=%s",
		c.baseURL, c.sheetID, url.PathEscape(valueRange), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var vr valuesResponse
	if err := json.Unmarshal(body, &vr); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	rows := make([][]string, len(vr.Values))
	for i, raw := range vr.Values {
		row := make([]string, len(raw))
		for j, cell := range raw {
			row[j] = cellString(cell)
		}
		rows[i] = row
	}
	return rows, nil
}

func cellString(cell any) string {
	switch v := cell.(type) {
	case string:
		return v
	case float64:
		// Avoid 1500 rendering as 1500.000000
		return trimFloat(v)
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case nil:
		return ""
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%f", v)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
