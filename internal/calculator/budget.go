// Package calculator computes derived views over the domain model:
// budget status, per-member balances, settlement plans, and category
// aggregates. Everything here is a pure function of its inputs.
package calculator

import "triptrack/internal/model"

// BudgetStatus is the spend position of one trip against its budget.
type BudgetStatus struct {
	Budget          float64
	Spent           float64
	Remaining       float64 // negative when over budget
	ProgressPercent float64 // 0-100, capped at 100
}

// Budget computes the budget status for a trip. A zero budget yields a
// zero progress percent rather than a division error.
func Budget(trip model.Trip, expenses []model.Expense) BudgetStatus {
	var spent float64
	for _, e := range expenses {
		spent += e.Amount
	}

	status := BudgetStatus{
		Budget:    trip.Budget,
		Spent:     spent,
		Remaining: trip.Budget - spent,
	}
	if trip.Budget > 0 {
		pct := spent / trip.Budget * 100
		if pct > 100 {
			pct = 100
		}
		status.ProgressPercent = pct
	}
	return status
}
