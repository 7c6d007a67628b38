// Package weather looks up current conditions for a trip destination
// via OpenWeatherMap. Callers render a placeholder on any failure;
// nothing here is fatal.
package weather

import (
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
	baseURL        = "https://api.openweathermap.org/data/2.5/weather"
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

// ErrNoKey indicates no weather API key is configured.
var ErrNoKey = errors.New("weather: no API key configured")

// Conditions is the current weather at a destination.
type Conditions struct {
	TempC       float64
	Description string
	Icon        string
}

// Client fetches current weather by place name.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a client. Returns nil when the key is empty.
func NewClient(apiKey string) *Client {
	if apiKey == "" {
		return nil
	}
	return &Client{apiKey: apiKey, baseURL: baseURL, http: &http.Client{}}
}

type weatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// Current returns the conditions at the named destination, metric units.
func (c *Client) Current(ctx context.Context, destination string) (Conditions, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	u := fmt.Sprintf("%s?q=%s&appid=%s&units=metric",
		c.baseURL, url.QueryEscape(destination), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Conditions{}, fmt.Errorf("weather: creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Conditions{}, fmt.Errorf("weather: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Conditions{}, fmt.Errorf("weather: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Conditions{}, fmt.Errorf("weather: reading response: %w", err)
	}

	var wr weatherResponse
	if err := json.Unmarshal(body, &wr); err != nil {
		return Conditions{}, fmt.Errorf("weather: parsing response: %w", err)
	}
	if len(wr.Weather) == 0 {
		return Conditions{}, errors.New("weather: empty response")
	}

	return Conditions{
		TempC:       wr.Main.Temp,
		Description: wr.Weather[0].Description,
		Icon:        wr.Weather[0].Icon,
	}, nil
}
