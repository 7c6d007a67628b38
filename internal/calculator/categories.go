package calculator

import (
	"sort"

	"triptrack/internal/model"
)

// CategoryTotal is the aggregate spend for one category.
type CategoryTotal struct {
	Category model.Category
	Total    float64
	PctOfMax float64 // 0-100, relative to the largest category
}

// CategoryTotals groups expense amounts by category, sorted descending
// by total. PctOfMax scales each total against the largest bucket for
// bar rendering.
func CategoryTotals(expenses []model.Expense) []CategoryTotal {
	byCat := make(map[model.Category]float64)
	for _, e := range expenses {
		byCat[e.Category] += e.Amount
	}

	totals := make([]CategoryTotal, 0, len(byCat))
	for cat, total := range byCat {
		totals = append(totals, CategoryTotal{Category: cat, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].Category < totals[j].Category
	})

	if len(totals) > 0 && totals[0].Total > 0 {
		max := totals[0].Total
		for i := range totals {
			totals[i].PctOfMax = totals[i].Total / max * 100
		}
	}
	return totals
}

// TopCategories returns at most n of the largest category totals.
func TopCategories(expenses []model.Expense, n int) []CategoryTotal {
	totals := CategoryTotals(expenses)
	if len(totals) > n {
		totals = totals[:n]
	}
	return totals
}
