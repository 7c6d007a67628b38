package calculator

import "sort"

// settleTolerance guards against floating point noise, in currency
// units. Residual balances below it count as settled and transfers
// below it are not worth recording.
const settleTolerance = 0.01

// Settlement is a suggested payment that cancels outstanding balances.
type Settlement struct {
	From   string
	To     string
	Amount float64
}

// SettlementPlan greedily matches the most-negative debtor with the
// most-positive creditor until one side is exhausted. The result is a
// valid cancelling sequence of at most min(#debtors, #creditors)
// transfers; it does not try to be flow-minimal across multiple parties.
//
// When total paid falls short of the budget, creditor surpluses are
// matched only up to what debtors actually owe.
func SettlementPlan(balances []MemberBalance) []Settlement {
	var debtors, creditors []MemberBalance
	for _, b := range balances {
		switch {
		case b.Balance < 0:
			debtors = append(debtors, b)
		case b.Balance > 0:
			creditors = append(creditors, b)
		}
	}

	// Most negative debtor first, most positive creditor first.
	sort.Slice(debtors, func(i, j int) bool {
		return debtors[i].Balance < debtors[j].Balance
	})
	sort.Slice(creditors, func(i, j int) bool {
		return creditors[i].Balance > creditors[j].Balance
	})

	var plan []Settlement
	i, j := 0, 0
	owed := make(map[string]float64, len(debtors))
	due := make(map[string]float64, len(creditors))
	for _, d := range debtors {
		owed[d.Name] = -d.Balance
	}
	for _, c := range creditors {
		due[c.Name] = c.Balance
	}

	for i < len(debtors) && j < len(creditors) {
		debtor := debtors[i].Name
		creditor := creditors[j].Name

		amount := owed[debtor]
		if due[creditor] < amount {
			amount = due[creditor]
		}

		if amount > settleTolerance {
			plan = append(plan, Settlement{From: debtor, To: creditor, Amount: amount})
		}

		owed[debtor] -= amount
		due[creditor] -= amount

		if owed[debtor] < settleTolerance {
			i++
		}
		if due[creditor] < settleTolerance {
			j++
		}
	}

	return plan
}
