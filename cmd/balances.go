package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"triptrack/internal/calculator"
	"triptrack/internal/cli"
)

var balancesCmd = &cobra.Command{
	Use:   "balances",
	Short: "Show who owes whom on the active trip",
	RunE:  runBalances,
}

func init() {
	rootCmd.AddCommand(balancesCmd)
}

func runBalances(_ *cobra.Command, _ []string) error {
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

	balances := calculator.Balances(trip, snap.TripExpenses(trip.ID))
	if len(balances) == 0 {
		fmt.Println("  Add members to the trip to split costs.")
		return nil
	}

	rows := make([][]string, 0, len(balances))
	for _, b := range balances {
		bal := cli.FormatMoney(b.Balance)
		switch {
		case b.Balance > 0:
			bal = cli.PositiveStyle.Render("+" + bal)
		case b.Balance < 0:
			bal = cli.NegativeStyle.Render(bal)
		}
		rows = append(rows, []string{b.Name, cli.FormatMoney(b.Share), cli.FormatMoney(b.Paid), bal})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Balances · %s", trip.Name),
		Headers: []string{"Member", "Share", "Paid", "Balance"},
		Rows:    rows,
	}))

	plan := calculator.SettlementPlan(balances)
	if len(plan) == 0 {
		fmt.Println("\n  All settled up.")
		return nil
	}

	fmt.Println("\n  To settle up:")
	for _, s := range plan {
		fmt.Printf("    %s pays %s %s\n", s.From, s.To, cli.FormatMoney(s.Amount))
	}
	return nil
}
