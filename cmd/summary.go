package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"triptrack/internal/calculator"
	"triptrack/internal/cli"
	"triptrack/internal/countdown"
)

// recentExpenseCount bounds the recent-expense list on the summary screen.
const recentExpenseCount = 5

func runSummary(_ *cobra.Command, _ []string) error {
	states, done, err := openState()
	if err != nil {
		return err
	}
	defer done()

	snap := states.Snapshot()
	trip, err := requireActiveTrip(snap)
	if err != nil {
		return err
	}

	expenses := snap.TripExpenses(trip.ID)
	status := calculator.Budget(trip, expenses)
	cd := countdown.Compute(time.Now(), trip)

	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s · %s", trip.Name, trip.Destination)))
	fmt.Printf("  %s – %s · %s", cli.FormatDate(trip.StartDate), cli.FormatDate(trip.EndDate), cd.Label)
	if !cd.Passed {
		fmt.Printf(" %s", cli.FormatCountdown(cd))
	}
	fmt.Println()
	fmt.Println()

	remaining := cli.FormatMoney(status.Remaining)
	if status.Remaining < 0 {
		remaining = cli.NegativeStyle.Render(remaining)
	} else {
		remaining = cli.PositiveStyle.Render(remaining)
	}
	fmt.Printf("  Budget %s · Spent %s · Remaining %s\n",
		cli.FormatMoney(status.Budget), cli.FormatMoney(status.Spent), remaining)
	fmt.Printf("  %s %s\n\n", cli.RenderProgressBar(status.ProgressPercent, 40), cli.FormatPercent(status.ProgressPercent))

	if top := calculator.TopCategories(expenses, 4); len(top) > 0 {
		fmt.Println("  Top categories")
		for _, ct := range top {
			fmt.Printf("  %-14s %s %s\n", ct.Category, cli.RenderHorizontalBar(ct.PctOfMax, 24), cli.FormatMoney(ct.Total))
		}
		fmt.Println()
	}

	if len(expenses) > 0 {
		recent := make([]int, len(expenses))
		for i := range expenses {
			recent[i] = i
		}
		sort.SliceStable(recent, func(a, b int) bool {
			ta, _ := expenses[recent[a]].Time()
			tb, _ := expenses[recent[b]].Time()
			return ta.After(tb)
		})
		if len(recent) > recentExpenseCount {
			recent = recent[:recentExpenseCount]
		}

		rows := make([][]string, 0, len(recent))
		for _, i := range recent {
			e := expenses[i]
			rows = append(rows, []string{e.Description, string(e.Category), e.PaidBy, cli.FormatDateTime(e), cli.FormatMoney(e.Amount)})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Recent expenses",
			Headers: []string{"Description", "Category", "Paid by", "When", "Amount"},
			Rows:    rows,
		}))
	} else {
		fmt.Println("  No expenses recorded yet.")
	}
	return nil
}
