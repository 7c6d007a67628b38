package model

// ActivityType classifies an itinerary entry.
type ActivityType string

const (
	ActivitySightseeing   ActivityType = "sightseeing"
	ActivityFood          ActivityType = "food"
	ActivityAdventure     ActivityType = "adventure"
	ActivityShopping      ActivityType = "shopping"
	ActivityTravel        ActivityType = "travel"
	ActivityAccommodation ActivityType = "accommodation"
	ActivityRelaxation    ActivityType = "relaxation"
	ActivityOther         ActivityType = "other"
)

// ActivityTypes lists every valid activity type in display order.
var ActivityTypes = []ActivityType{
	ActivitySightseeing,
	ActivityFood,
	ActivityAdventure,
	ActivityShopping,
	ActivityTravel,
	ActivityAccommodation,
	ActivityRelaxation,
	ActivityOther,
}

// Valid reports whether a is one of the fixed activity types.
func (a ActivityType) Valid() bool {
	for _, known := range ActivityTypes {
		if a == known {
			return true
		}
	}
	return false
}

// ItineraryItem is one planned activity on a trip's day-by-day timeline.
type ItineraryItem struct {
	ID       string       `json:"id"`
	TripID   string       `json:"tripId"`
	Title    string       `json:"title"`
	Date     string       `json:"date"` // DateLayout
	Time     string       `json:"time"` // 15:04
	Location string       `json:"location,omitempty"`
	Type     ActivityType `json:"type"`
	Notes    string       `json:"notes,omitempty"`
}
