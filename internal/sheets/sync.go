package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"triptrack/internal/config"
	"triptrack/internal/model"
	"triptrack/internal/state"
)

// Engine is the best-effort outbound mirror and pull-merge path between
// the local state container and the external spreadsheet.
type Engine struct {
	states *state.Container
}

// NewEngine creates a sync engine over the given state container.
func NewEngine(states *state.Container) *Engine {
	return &Engine{states: states}
}

// client builds a transport from the current settings, resolving the
// API key through env/keyring/state. Nil when sync is not configured.
func (e *Engine) client() *Client {
	set := e.states.Snapshot().Settings
	return NewClient(set.SheetID, config.SheetsKey(set), set.ScriptURL)
}

// Configured reports whether a pull/push could reach the spreadsheet.
func (e *Engine) Configured() bool {
	return e.client() != nil
}

// PushTrip mirrors one trip outward. Never blocks on or rolls back
// local state; failures are logged and folded into the Outcome.
func (e *Engine) PushTrip(ctx context.Context, t model.Trip) Outcome {
	c := e.client()
	if c == nil {
		return OutcomeSkipped
	}
	outcome, err := c.AppendRow(ctx, tripsSheet, tripsAppendRange, tripHeaders, tripRow(t, time.Now()))
	if err != nil {
		slog.Warn("trip sync failed", "trip", t.ID, "error", err)
	}
	return outcome
}

// PushExpense mirrors one expense outward.
func (e *Engine) PushExpense(ctx context.Context, ex model.Expense) Outcome {
	c := e.client()
	if c == nil {
		return OutcomeSkipped
	}
	outcome, err := c.AppendRow(ctx, expensesSheet, expensesAppendRange, expenseHeaders, expenseRow(ex))
	if err != nil {
		slog.Warn("expense sync failed", "expense", ex.ID, "error", err)
	}
	return outcome
}

// PushAll mirrors every local trip, then every local expense, one call
// per record with no batching. Intended for a manual full resync after
// offline editing. Returns how many records were attempted and how many
// outright failed.
func (e *Engine) PushAll(ctx context.Context) (attempted, failed int, err error) {
	c := e.client()
	if c == nil {
		return 0, 0, ErrNotConfigured
	}

	snap := e.states.Snapshot()
	for _, t := range snap.Trips {
		attempted++
		if e.PushTrip(ctx, t) == OutcomeFailed {
			failed++
		}
	}
	for _, ex := range snap.Expenses {
		attempted++
		if e.PushExpense(ctx, ex) == OutcomeFailed {
			failed++
		}
	}
	return attempted, failed, nil
}

// PullMerge fetches all remote trip and expense rows and merges them
// into local state: last write wins by id, member lists keep whichever
// side is non-empty, unknown ids append, deletions never propagate.
// Both tables are fetched before anything is applied, so a failed fetch
// leaves local state untouched.
func (e *Engine) PullMerge(ctx context.Context) error {
	c := e.client()
	if c == nil {
		return ErrNotConfigured
	}

	tripRows, err := c.FetchRange(ctx, tripsFetchRange)
	if err != nil {
		return fmt.Errorf("fetching trips: %w", err)
	}
	expenseRows, err := c.FetchRange(ctx, expensesFetchRange)
	if err != nil {
		return fmt.Errorf("fetching expenses: %w", err)
	}

	remoteTrips := make([]model.Trip, 0, len(tripRows))
	for _, row := range tripRows {
		remoteTrips = append(remoteTrips, parseTripRow(row))
	}
	remoteExpenses := make([]model.Expense, 0, len(expenseRows))
	for _, row := range expenseRows {
		remoteExpenses = append(remoteExpenses, parseExpenseRow(row))
	}

	return e.states.Apply(func(s *model.AppState) error {
		s.Trips = MergeTrips(s.Trips, remoteTrips)
		s.Expenses = MergeExpenses(s.Expenses, remoteExpenses)
		return nil
	})
}
