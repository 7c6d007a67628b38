package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"triptrack/internal/cli"
	"triptrack/internal/countdown"
	"triptrack/internal/model"
	"triptrack/internal/sheets"
)

var tripCmd = &cobra.Command{
	Use:   "trip",
	Short: "Manage trips",
}

var (
	flagTripName        string
	flagTripDestination string
	flagTripStart       string
	flagTripEnd         string
	flagTripBudget      float64
	flagTripMembers     []string
)

var tripAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a trip and make it active",
	RunE:  runTripAdd,
}

var tripListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all trips",
	RunE:  runTripList,
}

var tripEditCmd = &cobra.Command{
	Use:   "edit <trip>",
	Short: "Change a trip's details",
	Args:  cobra.ExactArgs(1),
	RunE:  runTripEdit,
}

var tripActivateCmd = &cobra.Command{
	Use:   "activate <trip>",
	Short: "Select the active trip by id or name",
	Args:  cobra.ExactArgs(1),
	RunE:  runTripActivate,
}

var tripDeleteCmd = &cobra.Command{
	Use:   "delete <trip>",
	Short: "Delete a trip and all its expenses and itinerary items",
	Args:  cobra.ExactArgs(1),
	RunE:  runTripDelete,
}

func init() {
	tripAddCmd.Flags().StringVar(&flagTripName, "name", "", "Trip name (required)")
	tripAddCmd.Flags().StringVar(&flagTripDestination, "destination", "", "Destination (required)")
	tripAddCmd.Flags().StringVar(&flagTripStart, "start", "", "Start date, YYYY-MM-DD (required)")
	tripAddCmd.Flags().StringVar(&flagTripEnd, "end", "", "End date, YYYY-MM-DD (required)")
	tripAddCmd.Flags().Float64Var(&flagTripBudget, "budget", 0, "Planned budget")
	tripAddCmd.Flags().StringArrayVar(&flagTripMembers, "member", nil, "Member as name[:email[:phone]] (repeatable)")

	tripEditCmd.Flags().StringVar(&flagTripName, "name", "", "New trip name")
	tripEditCmd.Flags().StringVar(&flagTripDestination, "destination", "", "New destination")
	tripEditCmd.Flags().StringVar(&flagTripStart, "start", "", "New start date, YYYY-MM-DD")
	tripEditCmd.Flags().StringVar(&flagTripEnd, "end", "", "New end date, YYYY-MM-DD")
	tripEditCmd.Flags().Float64Var(&flagTripBudget, "budget", 0, "New budget")
	tripEditCmd.Flags().StringArrayVar(&flagTripMembers, "member", nil, "Replace members with name[:email[:phone]] (repeatable)")

	tripCmd.AddCommand(tripAddCmd, tripListCmd, tripEditCmd, tripActivateCmd, tripDeleteCmd)
	rootCmd.AddCommand(tripCmd)
}

// parseMember splits a name[:email[:phone]] flag value.
func parseMember(raw string) (model.Member, error) {
	parts := strings.SplitN(raw, ":", 3)
	m := model.Member{Name: strings.TrimSpace(parts[0])}
	if m.Name == "" {
		return m, fmt.Errorf("member %q has no name", raw)
	}
	if len(parts) > 1 {
		m.Email = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		m.Phone = strings.TrimSpace(parts[2])
	}
	return m, nil
}

func runTripAdd(_ *cobra.Command, _ []string) error {
	if flagTripName == "" || flagTripDestination == "" || flagTripStart == "" || flagTripEnd == "" {
		return errors.New("--name, --destination, --start and --end are required")
	}

	start, err := time.ParseInLocation(model.DateLayout, flagTripStart, time.Local)
	if err != nil {
		return fmt.Errorf("invalid start date %q: want YYYY-MM-DD", flagTripStart)
	}
	end, err := time.ParseInLocation(model.DateLayout, flagTripEnd, time.Local)
	if err != nil {
		return fmt.Errorf("invalid end date %q: want YYYY-MM-DD", flagTripEnd)
	}
	if end.Before(start) {
		return errors.New("end date is before start date")
	}
	if flagTripBudget < 0 {
		return errors.New("budget cannot be negative")
	}

	var members []model.Member
	for _, raw := range flagTripMembers {
		m, err := parseMember(raw)
		if err != nil {
			return err
		}
		members = append(members, m)
	}

	states, done, err := openState()
	if err != nil {
		return err
	}
	defer done()

	trip, err := states.AddTrip(model.Trip{
		Name:        flagTripName,
		Destination: flagTripDestination,
		StartDate:   flagTripStart,
		EndDate:     flagTripEnd,
		Budget:      flagTripBudget,
		Members:     members,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Created trip %q (%s), now active.\n", trip.Name, trip.ID)

	outcome := sheets.NewEngine(states).PushTrip(context.Background(), trip)
	if !flagQuiet && outcome != sheets.OutcomeSkipped {
		fmt.Printf("  Sheet sync: %s\n", outcome)
	}
	return nil
}

func runTripList(_ *cobra.Command, _ []string) error {
	states, done, err := openState()
	if err != nil {
		return err
	}
	defer done()

	snap := states.Snapshot()
	if len(snap.Trips) == 0 {
		fmt.Println("  No trips yet. Start planning with `triptrack trip add`.")
		return nil
	}

	now := time.Now()
	rows := make([][]string, 0, len(snap.Trips))
	for _, t := range snap.Trips {
		marker := " "
		if t.ID == snap.ActiveTrip {
			marker = "*"
		}
		spent := 0.0
		for _, e := range snap.TripExpenses(t.ID) {
			spent += e.Amount
		}
		rows = append(rows, []string{
			fmt.Sprintf("%s %s", marker, t.Name),
			t.Destination,
			fmt.Sprintf("%s – %s", cli.FormatDate(t.StartDate), cli.FormatDate(t.EndDate)),
			cli.StatusLabel(countdown.StatusAt(now, t)),
			cli.FormatMoney(t.Budget),
			cli.FormatMoney(spent),
			t.ID,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Trips",
		Headers: []string{"Name", "Destination", "Dates", "Status", "Budget", "Spent", "ID"},
		Rows:    rows,
	}))
	return nil
}

func runTripEdit(cmd *cobra.Command, args []string) error {
	states, done, err := openState()
	if err != nil {
		return err
	}
	defer done()

	trip, err := resolveTrip(states.Snapshot(), args[0])
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		trip.Name = flagTripName
	}
	if flags.Changed("destination") {
		trip.Destination = flagTripDestination
	}
	if flags.Changed("start") {
		if _, err := time.ParseInLocation(model.DateLayout, flagTripStart, time.Local); err != nil {
			return fmt.Errorf("invalid start date %q: want YYYY-MM-DD", flagTripStart)
		}
		trip.StartDate = flagTripStart
	}
	if flags.Changed("end") {
		if _, err := time.ParseInLocation(model.DateLayout, flagTripEnd, time.Local); err != nil {
			return fmt.Errorf("invalid end date %q: want YYYY-MM-DD", flagTripEnd)
		}
		trip.EndDate = flagTripEnd
	}
	if flags.Changed("budget") {
		if flagTripBudget < 0 {
			return errors.New("budget cannot be negative")
		}
		trip.Budget = flagTripBudget
	}
	if flags.Changed("member") {
		var members []model.Member
		for _, raw := range flagTripMembers {
			m, err := parseMember(raw)
			if err != nil {
				return err
			}
			members = append(members, m)
		}
		trip.Members = members
	}

	start, err := time.ParseInLocation(model.DateLayout, trip.StartDate, time.Local)
	if err == nil {
		if end, err2 := time.ParseInLocation(model.DateLayout, trip.EndDate, time.Local); err2 == nil && end.Before(start) {
			return errors.New("end date is before start date")
		}
	}

	if err := states.UpdateTrip(trip); err != nil {
		return err
	}
	fmt.Printf("  Updated trip %q.\n", trip.Name)

	outcome := sheets.NewEngine(states).PushTrip(context.Background(), trip)
	if !flagQuiet && outcome != sheets.OutcomeSkipped {
		fmt.Printf("  Sheet sync: %s\n", outcome)
	}
	return nil
}

func runTripActivate(_ *cobra.Command, args []string) error {
	states, done, err := openState()
	if err != nil {
		return err
	}
	defer done()

	trip, err := resolveTrip(states.Snapshot(), args[0])
	if err != nil {
		return err
	}
	if err := states.SetActiveTrip(trip.ID); err != nil {
		return err
	}
	fmt.Printf("  Active trip: %q\n", trip.Name)
	return nil
}

func runTripDelete(_ *cobra.Command, args []string) error {
	states, done, err := openState()
	if err != nil {
		return err
	}
	defer done()

	snap := states.Snapshot()
	trip, err := resolveTrip(snap, args[0])
	if err != nil {
		return err
	}

	nExpenses := len(snap.TripExpenses(trip.ID))
	nItems := len(snap.TripItinerary(trip.ID))
	ok, err := confirm(fmt.Sprintf("Delete trip %q with %d expenses and %d activities?", trip.Name, nExpenses, nItems))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("  Cancelled.")
		return nil
	}

	if err := states.DeleteTrip(trip.ID); err != nil {
		return err
	}
	fmt.Printf("  Deleted trip %q.\n", trip.Name)
	return nil
}
