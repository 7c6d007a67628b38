// Package model defines the core domain types for TripTrack.
//
// All records are owned by the AppState singleton; Expense and
// ItineraryItem point back at their Trip via TripID only. A dangling
// TripID is filtered out by accessors, never treated as an error.
package model

import "time"

// DateLayout is the calendar-date format used everywhere: persisted
// blob, export files, and spreadsheet rows.
const DateLayout = "2006-01-02"

// Member is a named participant in a trip's expense sharing.
// The name is the unique key within a trip; there is no member id, so
// renaming a member orphans historical expense attribution.
type Member struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Trip is a planned journey with dates, a budget, and members.
type Trip struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"` // DateLayout
	EndDate     string   `json:"endDate"`   // DateLayout
	Budget      float64  `json:"budget"`
	Members     []Member `json:"members"`
	CreatedAt   string   `json:"createdAt"` // RFC3339
}

// Start parses the trip's start date at midnight local time.
func (t Trip) Start() (time.Time, error) {
	return time.ParseInLocation(DateLayout, t.StartDate, time.Local)
}

// End parses the trip's end date at 23:59:59 local time. The end date
// is inclusive: a trip is still ongoing for the whole of its last day.
func (t Trip) End() (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, t.EndDate, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(23*time.Hour + 59*time.Minute + 59*time.Second), nil
}

// HasMember reports whether a member with the given name exists.
func (t Trip) HasMember(name string) bool {
	for _, m := range t.Members {
		if m.Name == name {
			return true
		}
	}
	return false
}

// MemberNames returns the member names in declaration order.
func (t Trip) MemberNames() []string {
	names := make([]string, len(t.Members))
	for i, m := range t.Members {
		names[i] = m.Name
	}
	return names
}
