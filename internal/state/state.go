// Package state owns the application state: one AppState value behind a
// single serialized apply function. Every mutation, including merges
// applied by the sync engine, goes through Apply, which snapshots the
// whole state to the blob store afterwards. That single-writer
// discipline is what makes a background pull-merge safe against
// concurrent user edits.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"triptrack/internal/config"
	"triptrack/internal/model"
	"triptrack/internal/store"
)

// Container holds the live application state and its persistence.
type Container struct {
	mu    sync.Mutex
	state model.AppState
	store *store.Store
	seed  config.SheetsConfig
}

// Defaults returns the hard default application state: empty
// collections, blank settings.
func Defaults() model.AppState {
	return model.AppState{
		CurrentPage: "dashboard",
		Theme:       "light",
		AccentColor: "purple",
	}
}

// Open loads the persisted state blob over defaults and repairs known
// settings gaps from the config seed. A missing blob is a fresh start,
// not an error.
func Open(s *store.Store, seed config.SheetsConfig) (*Container, error) {
	c := &Container{store: s, seed: seed}
	c.state = Defaults()

	blob, err := s.Get(store.StateKey)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.repairSettings()
		return c, nil
	case err != nil:
		return nil, fmt.Errorf("loading state: %w", err)
	}

	if err := json.Unmarshal(blob, &c.state); err != nil {
		// A corrupt blob must not brick the app: start from defaults
		// and let the next save overwrite it.
		slog.Warn("state blob unreadable, starting fresh", "error", err)
		c.state = Defaults()
	}
	c.repairSettings()
	return c, nil
}

// repairSettings backfills blank credentials from the config seed and
// swaps retired script URLs for the current one, so stale persisted
// settings keep working after an upgrade.
func (c *Container) repairSettings() {
	s := &c.state.Settings
	if s.SheetID == "" {
		s.SheetID = c.seed.SheetID
	}
	if s.APIKey == "" {
		s.APIKey = c.seed.APIKey
	}
	if s.ScriptURL == "" {
		s.ScriptURL = c.seed.ScriptURL
	}
	for _, retired := range c.seed.RetiredScriptURLs {
		if s.ScriptURL == retired {
			s.ScriptURL = c.seed.ScriptURL
			break
		}
	}
}

// Apply runs fn against the state under the container lock, then
// persists the whole state as one blob. Returning an error from fn
// aborts the persist but any mutation fn already made is kept in
// memory; callers are expected to treat fn as all-or-nothing.
func (c *Container) Apply(fn func(*model.AppState) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := fn(&c.state); err != nil {
		return err
	}
	return c.persistLocked()
}

func (c *Container) persistLocked() error {
	blob, err := json.Marshal(&c.state)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := c.store.Put(store.StateKey, blob); err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	return nil
}

// Snapshot returns a deep copy of the current state for reads and
// rendering. Mutating the copy has no effect on the container.
func (c *Container) Snapshot() model.AppState {
	c.mu.Lock()
	defer c.mu.Unlock()

	cp := c.state
	cp.Trips = append([]model.Trip(nil), c.state.Trips...)
	for i := range cp.Trips {
		cp.Trips[i].Members = append([]model.Member(nil), cp.Trips[i].Members...)
	}
	cp.Expenses = append([]model.Expense(nil), c.state.Expenses...)
	cp.Itinerary = append([]model.ItineraryItem(nil), c.state.Itinerary...)
	return cp
}

// NewID returns a fresh opaque record id.
func NewID() string {
	return uuid.New().String()
}

// AddTrip stores a new trip, assigning id and creation time, and makes
// it the active trip.
func (c *Container) AddTrip(t model.Trip) (model.Trip, error) {
	if t.ID == "" {
		t.ID = NewID()
	}
	if t.CreatedAt == "" {
		t.CreatedAt = time.Now().Format(time.RFC3339)
	}
	err := c.Apply(func(s *model.AppState) error {
		s.Trips = append(s.Trips, t)
		s.ActiveTrip = t.ID
		return nil
	})
	return t, err
}

// UpdateTrip replaces the trip with the same id.
func (c *Container) UpdateTrip(t model.Trip) error {
	return c.Apply(func(s *model.AppState) error {
		for i := range s.Trips {
			if s.Trips[i].ID == t.ID {
				s.Trips[i] = t
				return nil
			}
		}
		return fmt.Errorf("trip %s not found", t.ID)
	})
}

// DeleteTrip removes a trip and cascades to its expenses and itinerary
// items. If the deleted trip was active, the active pointer is cleared.
func (c *Container) DeleteTrip(id string) error {
	return c.Apply(func(s *model.AppState) error {
		n := 0
		for _, t := range s.Trips {
			if t.ID != id {
				s.Trips[n] = t
				n++
			}
		}
		if n == len(s.Trips) {
			return fmt.Errorf("trip %s not found", id)
		}
		s.Trips = s.Trips[:n]

		n = 0
		for _, e := range s.Expenses {
			if e.TripID != id {
				s.Expenses[n] = e
				n++
			}
		}
		s.Expenses = s.Expenses[:n]

		n = 0
		for _, it := range s.Itinerary {
			if it.TripID != id {
				s.Itinerary[n] = it
				n++
			}
		}
		s.Itinerary = s.Itinerary[:n]

		if s.ActiveTrip == id {
			s.ActiveTrip = ""
		}
		return nil
	})
}

// SetActiveTrip points the dashboard at the given trip.
func (c *Container) SetActiveTrip(id string) error {
	return c.Apply(func(s *model.AppState) error {
		if _, ok := s.TripByID(id); !ok {
			return fmt.Errorf("trip %s not found", id)
		}
		s.ActiveTrip = id
		return nil
	})
}

// AddExpense stores a new expense, assigning id and creation time.
func (c *Container) AddExpense(e model.Expense) (model.Expense, error) {
	if e.ID == "" {
		e.ID = NewID()
	}
	if e.CreatedAt == "" {
		e.CreatedAt = time.Now().Format(time.RFC3339)
	}
	err := c.Apply(func(s *model.AppState) error {
		if _, ok := s.TripByID(e.TripID); !ok {
			return fmt.Errorf("trip %s not found", e.TripID)
		}
		s.Expenses = append(s.Expenses, e)
		return nil
	})
	return e, err
}

// DeleteExpense removes one expense by id.
func (c *Container) DeleteExpense(id string) error {
	return c.Apply(func(s *model.AppState) error {
		for i, e := range s.Expenses {
			if e.ID == id {
				s.Expenses = append(s.Expenses[:i], s.Expenses[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("expense %s not found", id)
	})
}

// AddItineraryItem stores a new itinerary item, assigning an id.
func (c *Container) AddItineraryItem(it model.ItineraryItem) (model.ItineraryItem, error) {
	if it.ID == "" {
		it.ID = NewID()
	}
	err := c.Apply(func(s *model.AppState) error {
		if _, ok := s.TripByID(it.TripID); !ok {
			return fmt.Errorf("trip %s not found", it.TripID)
		}
		s.Itinerary = append(s.Itinerary, it)
		return nil
	})
	return it, err
}

// UpdateItineraryItem replaces the item with the same id.
func (c *Container) UpdateItineraryItem(it model.ItineraryItem) error {
	return c.Apply(func(s *model.AppState) error {
		for i := range s.Itinerary {
			if s.Itinerary[i].ID == it.ID {
				s.Itinerary[i] = it
				return nil
			}
		}
		return fmt.Errorf("itinerary item %s not found", it.ID)
	})
}

// DeleteItineraryItem removes one itinerary item by id.
func (c *Container) DeleteItineraryItem(id string) error {
	return c.Apply(func(s *model.AppState) error {
		for i, it := range s.Itinerary {
			if it.ID == id {
				s.Itinerary = append(s.Itinerary[:i], s.Itinerary[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("itinerary item %s not found", id)
	})
}

// UpdateSettings replaces the service settings.
func (c *Container) UpdateSettings(set model.Settings) error {
	return c.Apply(func(s *model.AppState) error {
		s.Settings = set
		return nil
	})
}

// SetTheme updates the persisted theme and accent color.
func (c *Container) SetTheme(theme, accent string) error {
	return c.Apply(func(s *model.AppState) error {
		if theme != "" {
			s.Theme = theme
		}
		if accent != "" {
			s.AccentColor = accent
		}
		return nil
	})
}

// Export writes the full state as pretty-printed JSON to path.
func (c *Container) Export(path string) error {
	snap := c.Snapshot()
	blob, err := json.MarshalIndent(&snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	if err := os.WriteFile(path, blob, 0o600); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// Import replaces the in-memory state with the blob read from path,
// overlaid on defaults and repaired. A file that does not parse is
// rejected without touching the current state.
func (c *Container) Import(path string) error {
	blob, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading import: %w", err)
	}

	incoming := Defaults()
	if err := json.Unmarshal(blob, &incoming); err != nil {
		return fmt.Errorf("invalid backup file: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = incoming
	c.repairSettings()
	return c.persistLocked()
}

// Clear wipes the persisted blob and resets the in-memory state to hard
// defaults. Callers gate this behind explicit user confirmation.
func (c *Container) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Delete(store.StateKey); err != nil {
		return fmt.Errorf("clearing state: %w", err)
	}
	c.state = Defaults()
	return nil
}
