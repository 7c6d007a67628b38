package calculator

import "triptrack/internal/model"

// MemberBalance is one member's position against the equal split.
type MemberBalance struct {
	Name    string
	Share   float64 // budget / member count
	Paid    float64 // sum of expenses this member paid
	Balance float64 // Paid - Share; positive = is owed money
}

// Balances computes per-member balances for a trip. The split is an
// equal share of the budget regardless of actual consumption. Expenses
// paid by a name that is no longer in the member list attribute to
// nobody; they still count toward total spend elsewhere.
func Balances(trip model.Trip, expenses []model.Expense) []MemberBalance {
	if len(trip.Members) == 0 {
		return nil
	}

	share := trip.Budget / float64(len(trip.Members))

	paidBy := make(map[string]float64, len(trip.Members))
	for _, e := range expenses {
		paidBy[e.PaidBy] += e.Amount
	}

	balances := make([]MemberBalance, len(trip.Members))
	for i, m := range trip.Members {
		paid := paidBy[m.Name]
		balances[i] = MemberBalance{
			Name:    m.Name,
			Share:   share,
			Paid:    paid,
			Balance: paid - share,
		}
	}
	return balances
}
