package state

import (
	"os"
	"path/filepath"
	"testing"

	"triptrack/internal/config"
	"triptrack/internal/model"
	"triptrack/internal/store"
)

// openContainer opens a fresh container over a temp sqlite store.
func openContainer(t *testing.T, seed config.SheetsConfig) *Container {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })

	c, err := Open(s, seed)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestAddTrip_AssignsIDAndActivates(t *testing.T) {
	c := openContainer(t, config.SheetsConfig{})

	trip, err := c.AddTrip(model.Trip{Name: "Goa", StartDate: "2026-03-12", EndDate: "2026-03-15"})
	if err != nil {
		t.Fatal(err)
	}
	if trip.ID == "" {
		t.Error("trip.ID is empty, want generated id")
	}
	if trip.CreatedAt == "" {
		t.Error("trip.CreatedAt is empty, want timestamp")
	}

	snap := c.Snapshot()
	if snap.ActiveTrip != trip.ID {
		t.Errorf("ActiveTrip = %q, want %q", snap.ActiveTrip, trip.ID)
	}
}

func TestDeleteTrip_CascadesAndClearsActive(t *testing.T) {
	c := openContainer(t, config.SheetsConfig{})

	trip, err := c.AddTrip(model.Trip{Name: "Goa"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.AddExpense(model.Expense{TripID: trip.ID, Amount: 10, Category: model.CategoryFood, Date: "2026-03-12T10:00"}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.AddItineraryItem(model.ItineraryItem{TripID: trip.ID, Title: "Beach", Date: "2026-03-12", Type: model.ActivityRelaxation}); err != nil {
		t.Fatal(err)
	}

	if err := c.DeleteTrip(trip.ID); err != nil {
		t.Fatal(err)
	}

	snap := c.Snapshot()
	if len(snap.Trips) != 0 || len(snap.Expenses) != 0 || len(snap.Itinerary) != 0 {
		t.Errorf("after delete: %d trips, %d expenses, %d items, want all 0",
			len(snap.Trips), len(snap.Expenses), len(snap.Itinerary))
	}
	if snap.ActiveTrip != "" {
		t.Errorf("ActiveTrip = %q, want cleared", snap.ActiveTrip)
	}
}

func TestUpdateTrip_ReplacesById(t *testing.T) {
	c := openContainer(t, config.SheetsConfig{})

	trip, err := c.AddTrip(model.Trip{Name: "Goa", Budget: 1000})
	if err != nil {
		t.Fatal(err)
	}

	trip.Name = "Goa 2026"
	trip.Budget = 2000
	if err := c.UpdateTrip(trip); err != nil {
		t.Fatal(err)
	}

	snap := c.Snapshot()
	got, ok := snap.TripByID(trip.ID)
	if !ok {
		t.Fatal("updated trip missing")
	}
	if got.Name != "Goa 2026" || got.Budget != 2000 {
		t.Errorf("trip = %+v, want updated fields", got)
	}

	if err := c.UpdateTrip(model.Trip{ID: "missing"}); err == nil {
		t.Error("UpdateTrip of unknown id succeeded, want error")
	}
}

func TestUpdateItineraryItem_ReplacesById(t *testing.T) {
	c := openContainer(t, config.SheetsConfig{})

	trip, err := c.AddTrip(model.Trip{Name: "Goa"})
	if err != nil {
		t.Fatal(err)
	}
	item, err := c.AddItineraryItem(model.ItineraryItem{TripID: trip.ID, Title: "Beach", Date: "2026-03-12", Type: model.ActivityRelaxation})
	if err != nil {
		t.Fatal(err)
	}

	item.Title = "Fort walk"
	item.Type = model.ActivitySightseeing
	if err := c.UpdateItineraryItem(item); err != nil {
		t.Fatal(err)
	}

	snap := c.Snapshot()
	items := snap.TripItinerary(trip.ID)
	if len(items) != 1 || items[0].Title != "Fort walk" {
		t.Errorf("items = %+v, want renamed activity", items)
	}
}

func TestAddExpense_UnknownTripRejected(t *testing.T) {
	c := openContainer(t, config.SheetsConfig{})

	if _, err := c.AddExpense(model.Expense{TripID: "nope", Amount: 10}); err == nil {
		t.Error("AddExpense with unknown trip succeeded, want error")
	}
	if got := len(c.Snapshot().Expenses); got != 0 {
		t.Errorf("expenses = %d, want 0 after rejected add", got)
	}
}

func TestOpen_ReloadsPersistedState(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.db")

	s, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	c, err := Open(s, config.SheetsConfig{})
	if err != nil {
		t.Fatal(err)
	}
	trip, err := c.AddTrip(model.Trip{Name: "Goa"})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = s2.Close() }()
	c2, err := Open(s2, config.SheetsConfig{})
	if err != nil {
		t.Fatal(err)
	}

	snap := c2.Snapshot()
	if len(snap.Trips) != 1 || snap.Trips[0].ID != trip.ID {
		t.Errorf("reloaded trips = %+v, want the one saved trip", snap.Trips)
	}
}

func TestOpen_RepairsSettingsFromSeed(t *testing.T) {
	seed := config.SheetsConfig{
		SheetID:   "sheet-123",
		APIKey:    "key-456",
		ScriptURL: "https://script.example/current",
	}
	c := openContainer(t, seed)

	set := c.Snapshot().Settings
	if set.SheetID != "sheet-123" || set.APIKey != "key-456" || set.ScriptURL != "https://script.example/current" {
		t.Errorf("settings = %+v, want seeded values", set)
	}
}

func TestOpen_ReplacesRetiredScriptURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.db")

	s, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	c, err := Open(s, config.SheetsConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if err := c.UpdateSettings(model.Settings{ScriptURL: "https://script.example/old"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	seed := config.SheetsConfig{
		ScriptURL:         "https://script.example/new",
		RetiredScriptURLs: []string{"https://script.example/old"},
	}
	s2, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = s2.Close() }()
	c2, err := Open(s2, seed)
	if err != nil {
		t.Fatal(err)
	}

	if got := c2.Snapshot().Settings.ScriptURL; got != "https://script.example/new" {
		t.Errorf("ScriptURL = %q, want retired URL replaced", got)
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	c := openContainer(t, config.SheetsConfig{})
	trip, err := c.AddTrip(model.Trip{Name: "Goa", Budget: 1000})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.AddExpense(model.Expense{TripID: trip.ID, Amount: 250, Category: model.CategoryFood, Date: "2026-03-12T10:00"}); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "backup.json")
	if err := c.Export(path); err != nil {
		t.Fatal(err)
	}

	c2 := openContainer(t, config.SheetsConfig{})
	if err := c2.Import(path); err != nil {
		t.Fatal(err)
	}

	snap := c2.Snapshot()
	if len(snap.Trips) != 1 || snap.Trips[0].Name != "Goa" {
		t.Errorf("imported trips = %+v, want Goa", snap.Trips)
	}
	if len(snap.Expenses) != 1 || snap.Expenses[0].Amount != 250 {
		t.Errorf("imported expenses = %+v, want one of 250", snap.Expenses)
	}
}

func TestImport_RejectsGarbageWithoutTouchingState(t *testing.T) {
	c := openContainer(t, config.SheetsConfig{})
	if _, err := c.AddTrip(model.Trip{Name: "Keep me"}); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := c.Import(path); err == nil {
		t.Fatal("Import of garbage succeeded, want error")
	}
	if len(c.Snapshot().Trips) != 1 {
		t.Error("existing state was modified by a failed import")
	}
}

func TestClear_ResetsToDefaults(t *testing.T) {
	c := openContainer(t, config.SheetsConfig{})
	if _, err := c.AddTrip(model.Trip{Name: "Goa"}); err != nil {
		t.Fatal(err)
	}

	if err := c.Clear(); err != nil {
		t.Fatal(err)
	}

	snap := c.Snapshot()
	if len(snap.Trips) != 0 || snap.ActiveTrip != "" {
		t.Errorf("after clear: %+v, want empty defaults", snap)
	}
	if snap.Theme != "light" || snap.CurrentPage != "dashboard" {
		t.Errorf("defaults = theme %q page %q, want light/dashboard", snap.Theme, snap.CurrentPage)
	}
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	c := openContainer(t, config.SheetsConfig{})
	if _, err := c.AddTrip(model.Trip{Name: "Goa", Members: []model.Member{{Name: "alice"}}}); err != nil {
		t.Fatal(err)
	}

	snap := c.Snapshot()
	snap.Trips[0].Name = "mutated"
	snap.Trips[0].Members[0].Name = "mutated"

	fresh := c.Snapshot()
	if fresh.Trips[0].Name != "Goa" || fresh.Trips[0].Members[0].Name != "alice" {
		t.Error("mutating a snapshot leaked into the container")
	}
}
