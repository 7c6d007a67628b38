package sheets

import (
	"encoding/json"
	"strconv"
	"time"

	"triptrack/internal/model"
)

// Sheet names and value ranges for the two logical tables.
const (
	tripsSheet    = "Trips"
	expensesSheet = "Expenses"

	tripsAppendRange    = "Trips!A:H"
	expensesAppendRange = "Expenses!A:G"
	tripsFetchRange     = "Trips!A2:H"
	expensesFetchRange  = "Expenses!A2:G"
)

var tripHeaders = []string{
	"ID", "Name", "Destination", "Start Date", "End Date", "Budget", "Created At", "Members",
}

var expenseHeaders = []string{
	"ID", "Trip ID", "Amount", "Category", "Description", "Date", "Paid By",
}

// tripRow encodes a trip as spreadsheet columns A-H. The seventh column
// is the sync timestamp, the eighth the member list as JSON text.
func tripRow(t model.Trip, syncedAt time.Time) []any {
	members := t.Members
	if members == nil {
		members = []model.Member{}
	}
	membersJSON, _ := json.Marshal(members)
	return []any{
		t.ID,
		t.Name,
		t.Destination,
		t.StartDate,
		t.EndDate,
		t.Budget,
		syncedAt.UTC().Format(time.RFC3339),
		string(membersJSON),
	}
}

// expenseRow encodes an expense as spreadsheet columns A-G.
func expenseRow(e model.Expense) []any {
	return []any{
		e.ID,
		e.TripID,
		e.Amount,
		string(e.Category),
		e.Description,
		e.Date,
		e.PaidBy,
	}
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// parseTripRow decodes one remote trip row. Short rows are padded with
// blanks; an unparsable members column means no members, never an error.
func parseTripRow(row []string) model.Trip {
	t := model.Trip{
		ID:          cell(row, 0),
		Name:        cell(row, 1),
		Destination: cell(row, 2),
		StartDate:   cell(row, 3),
		EndDate:     cell(row, 4),
		CreatedAt:   cell(row, 6),
	}
	t.Budget, _ = strconv.ParseFloat(cell(row, 5), 64)

	if raw := cell(row, 7); raw != "" {
		var members []model.Member
		if err := json.Unmarshal([]byte(raw), &members); err == nil {
			t.Members = members
		}
	}
	return t
}

// parseExpenseRow decodes one remote expense row.
func parseExpenseRow(row []string) model.Expense {
	e := model.Expense{
		ID:          cell(row, 0),
		TripID:      cell(row, 1),
		Category:    model.Category(cell(row, 3)),
		Description: cell(row, 4),
		Date:        cell(row, 5),
		PaidBy:      cell(row, 6),
	}
	e.Amount, _ = strconv.ParseFloat(cell(row, 2), 64)
	return e
}
