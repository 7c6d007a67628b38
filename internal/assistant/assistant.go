// Package assistant answers single-turn travel questions through the
// Gemini API, with the active trip folded into the prompt. With no key
// configured it short-circuits to a local instructional message instead
// of attempting the call.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"triptrack/internal/calculator"
	"triptrack/internal/model"
)

const (
	baseURL        = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"
	requestTimeout = 30 * time.Second
	maxBodySize    = 4 << 20 // 4 MB

	// NoKeyMessage is returned locally when no Gemini key is set.
	NoKeyMessage = "Add a Gemini API key (triptrack settings set-key gemini) to use AI features. You can get a free key from Google AI Studio."

	// fallbackMessage covers responses with no usable candidate text.
	fallbackMessage = "Sorry, I couldn't process that request. Please try again."
)

// Client asks single-turn questions.
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

// tripContext is the trip summary serialized into the prompt.
type tripContext struct {
	Trip *struct {
		Name        string   `json:"name"`
		Destination string   `json:"destination"`
		Budget      float64  `json:"budget"`
		StartDate   string   `json:"startDate"`
		EndDate     string   `json:"endDate"`
		Members     []string `json:"members"`
	} `json:"trip"`
	TotalSpent   float64  `json:"totalSpent"`
	ExpenseCount int      `json:"expenseCount"`
	Categories   []string `json:"categories"`
}

// BuildPrompt composes the assistant prompt from the active trip, its
// expenses, and the user's question.
func BuildPrompt(trip *model.Trip, expenses []model.Expense, question string) string {
	var ctx tripContext
	if trip != nil {
		ctx.Trip = &struct {
			Name        string   `json:"name"`
			Destination string   `json:"destination"`
			Budget      float64  `json:"budget"`
			StartDate   string   `json:"startDate"`
			EndDate     string   `json:"endDate"`
			Members     []string `json:"members"`
		}{
			Name:        trip.Name,
			Destination: trip.Destination,
			Budget:      trip.Budget,
			StartDate:   trip.StartDate,
			EndDate:     trip.EndDate,
			Members:     trip.MemberNames(),
		}
	}
	for _, e := range expenses {
		ctx.TotalSpent += e.Amount
	}
	ctx.ExpenseCount = len(expenses)
	for _, ct := range calculator.CategoryTotals(expenses) {
		ctx.Categories = append(ctx.Categories, string(ct.Category))
	}

	ctxJSON, _ := json.MarshalIndent(ctx, "", "  ")
	return fmt.Sprintf(`You are TripTrack AI, a helpful travel and expense management assistant.

Current trip context:
%s

User question: %s

Please provide a helpful, concise response. If asking about weather, provide realistic estimates. If asking about spending, analyze the data provided. Format your response nicely.`, ctxJSON, question)
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Ask sends one composed prompt and returns the reply text. Responses
// without candidate text degrade to a canned fallback, not an error.
func (c *Client) Ask(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("assistant: encoding request: %w", err)
	}

	u := fmt.Sprintf("%s?key=%s", c.baseURL, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("assistant: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("assistant: reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("assistant: unexpected status %d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return "", fmt.Errorf("assistant: parsing response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return fallbackMessage, nil
	}
	text := gr.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return fallbackMessage, nil
	}
	return text, nil
}
