package model

// Settings holds credentials and endpoints for the external services.
// Process-wide: there is no per-trip scoping.
type Settings struct {
	SheetID       string `json:"sheetId"`
	APIKey        string `json:"apiKey"`
	ScriptURL     string `json:"scriptUrl"`
	GeminiAPIKey  string `json:"geminiApiKey"`
	WeatherAPIKey string `json:"weatherApiKey"`
}

// AppState is the root application state. It is serialized as a single
// JSON blob; the field tags are the on-disk format and must not change.
type AppState struct {
	CurrentPage string          `json:"currentPage"`
	Theme       string          `json:"theme"`
	AccentColor string          `json:"accentColor"`
	Trips       []Trip          `json:"trips"`
	ActiveTrip  string          `json:"activeTrip"` // trip id, "" = none
	Expenses    []Expense       `json:"expenses"`
	Itinerary   []ItineraryItem `json:"itinerary"`
	Settings    Settings        `json:"settings"`
}

// TripByID returns the trip with the given id, or false.
func (s *AppState) TripByID(id string) (Trip, bool) {
	for _, t := range s.Trips {
		if t.ID == id {
			return t, true
		}
	}
	return Trip{}, false
}

// Active returns the currently selected trip, or false when no trip is
// active or the pointer dangles.
func (s *AppState) Active() (Trip, bool) {
	if s.ActiveTrip == "" {
		return Trip{}, false
	}
	return s.TripByID(s.ActiveTrip)
}

// TripExpenses returns the expenses belonging to the given trip.
// Expenses whose TripID matches no trip never show up here.
func (s *AppState) TripExpenses(tripID string) []Expense {
	var out []Expense
	for _, e := range s.Expenses {
		if e.TripID == tripID {
			out = append(out, e)
		}
	}
	return out
}

// TripItinerary returns the itinerary items belonging to the given trip.
func (s *AppState) TripItinerary(tripID string) []ItineraryItem {
	var out []ItineraryItem
	for _, it := range s.Itinerary {
		if it.TripID == tripID {
			out = append(out, it)
		}
	}
	return out
}
