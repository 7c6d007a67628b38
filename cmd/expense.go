package cmd

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"triptrack/internal/cli"
	"triptrack/internal/model"
	"triptrack/internal/sheets"
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Record and review expenses on the active trip",
}

var (
	flagExpAmount      float64
	flagExpCategory    string
	flagExpDescription string
	flagExpDate        string
	flagExpPaidBy      string
)

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an expense against the active trip",
	RunE:  runExpenseAdd,
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the active trip's expenses, newest first",
	RunE:  runExpenseList,
}

var expenseDeleteCmd = &cobra.Command{
	Use:   "delete <expense-id>",
	Short: "Delete an expense by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseDelete,
}

func init() {
	expenseAddCmd.Flags().Float64Var(&flagExpAmount, "amount", 0, "Amount spent (required)")
	expenseAddCmd.Flags().StringVar(&flagExpCategory, "category", string(model.CategoryOther), "Category: "+categoryList())
	expenseAddCmd.Flags().StringVar(&flagExpDescription, "description", "", "What the money went on (required)")
	expenseAddCmd.Flags().StringVar(&flagExpDate, "date", "", "When, YYYY-MM-DDTHH:MM (default now)")
	expenseAddCmd.Flags().StringVar(&flagExpPaidBy, "paid-by", "", "Member who paid (required)")

	expenseCmd.AddCommand(expenseAddCmd, expenseListCmd, expenseDeleteCmd)
	rootCmd.AddCommand(expenseCmd)
}

func categoryList() string {
	names := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, "|")
}

func runExpenseAdd(_ *cobra.Command, _ []string) error {
	if flagExpAmount <= 0 {
		return errors.New("--amount must be positive")
	}
	if flagExpDescription == "" {
		return errors.New("--description is required")
	}
	if flagExpPaidBy == "" {
		return errors.New("--paid-by is required")
	}
	category := model.Category(strings.ToLower(flagExpCategory))
	if !category.Valid() {
		return fmt.Errorf("unknown category %q, want one of %s", flagExpCategory, categoryList())
	}

	date := flagExpDate
	if date == "" {
		date = time.Now().Format(model.ExpenseTimeLayout)
	} else if _, err := time.ParseInLocation(model.ExpenseTimeLayout, date, time.Local); err != nil {
		if _, err := time.ParseInLocation(model.DateLayout, date, time.Local); err != nil {
			return fmt.Errorf("invalid date %q: want YYYY-MM-DDTHH:MM", flagExpDate)
		}
	}

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
	if len(trip.Members) > 0 && !trip.HasMember(flagExpPaidBy) {
		return fmt.Errorf("%q is not a member of %q (members: %s)",
			flagExpPaidBy, trip.Name, strings.Join(trip.MemberNames(), ", "))
	}

	exp, err := states.AddExpense(model.Expense{
		TripID:      trip.ID,
		Amount:      flagExpAmount,
		Category:    category,
		Description: flagExpDescription,
		Date:        date,
		PaidBy:      flagExpPaidBy,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Recorded %s for %q, paid by %s.\n", cli.FormatMoney(exp.Amount), exp.Description, exp.PaidBy)

	outcome := sheets.NewEngine(states).PushExpense(context.Background(), exp)
	if !flagQuiet && outcome != sheets.OutcomeSkipped {
		fmt.Printf("  Sheet sync: %s\n", outcome)
	}
	return nil
}

func runExpenseList(_ *cobra.Command, _ []string) error {
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
	if len(expenses) == 0 {
		fmt.Println("  No expenses recorded yet.")
		return nil
	}

	sort.SliceStable(expenses, func(a, b int) bool {
		ta, _ := expenses[a].Time()
		tb, _ := expenses[b].Time()
		return ta.After(tb)
	})

	total := 0.0
	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		total += e.Amount
		rows = append(rows, []string{e.Description, string(e.Category), e.PaidBy, cli.FormatDateTime(e), cli.FormatMoney(e.Amount), e.ID})
	}
	rows = append(rows, []string{"Total", "", "", "", cli.FormatMoney(total), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Expenses · %s", trip.Name),
		Headers: []string{"Description", "Category", "Paid by", "When", "Amount", "ID"},
		Rows:    rows,
	}))
	return nil
}

func runExpenseDelete(_ *cobra.Command, args []string) error {
	states, done, err := openState()
	if err != nil {
		return err
	}
	defer done()

	if err := states.DeleteExpense(args[0]); err != nil {
		return err
	}
	fmt.Println("  Expense deleted.")
	return nil
}
