package model

import "time"

// ExpenseTimeLayout is the datetime format for expense timestamps.
const ExpenseTimeLayout = "2006-01-02T15:04"

// Category classifies an expense. The set is fixed; unknown remote
// values are preserved as-is but render under "other" styling.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryAccommodation Category = "accommodation"
	CategoryActivities    Category = "activities"
	CategoryShopping      Category = "shopping"
	CategoryTickets       Category = "tickets"
	CategoryFuel          Category = "fuel"
	CategoryMedical       Category = "medical"
	CategoryTips          Category = "tips"
	CategoryOther         Category = "other"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryAccommodation,
	CategoryActivities,
	CategoryShopping,
	CategoryTickets,
	CategoryFuel,
	CategoryMedical,
	CategoryTips,
	CategoryOther,
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense is a single shared cost recorded against a trip.
type Expense struct {
	ID          string   `json:"id"`
	TripID      string   `json:"tripId"`
	Amount      float64  `json:"amount"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Date        string   `json:"date"`   // ExpenseTimeLayout
	PaidBy      string   `json:"paidBy"` // member name
	CreatedAt   string   `json:"createdAt"`
}

// Time parses the expense timestamp. Falls back to the bare date layout
// for rows that came from a spreadsheet without a time component.
func (e Expense) Time() (time.Time, error) {
	if t, err := time.ParseInLocation(ExpenseTimeLayout, e.Date, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation(DateLayout, e.Date, time.Local)
}
