package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"triptrack/internal/cli"
	"triptrack/internal/model"
)

var itineraryCmd = &cobra.Command{
	Use:     "itinerary",
	Aliases: []string{"it"},
	Short:   "Plan the trip day by day",
}

var (
	flagItTitle    string
	flagItDate     string
	flagItTime     string
	flagItLocation string
	flagItType     string
	flagItNotes    string
)

var itineraryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an activity to the active trip's itinerary",
	RunE:  runItineraryAdd,
}

var itineraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the itinerary grouped by day",
	RunE:  runItineraryList,
}

var itineraryDeleteCmd = &cobra.Command{
	Use:   "delete <item-id>",
	Short: "Remove an activity by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runItineraryDelete,
}

func init() {
	itineraryAddCmd.Flags().StringVar(&flagItTitle, "title", "", "Activity title (required)")
	itineraryAddCmd.Flags().StringVar(&flagItDate, "date", "", "Day, YYYY-MM-DD (required)")
	itineraryAddCmd.Flags().StringVar(&flagItTime, "time", "", "Time of day, HH:MM")
	itineraryAddCmd.Flags().StringVar(&flagItLocation, "location", "", "Where it happens")
	itineraryAddCmd.Flags().StringVar(&flagItType, "type", string(model.ActivityOther), "Type: "+activityTypeList())
	itineraryAddCmd.Flags().StringVar(&flagItNotes, "notes", "", "Free-form notes")

	itineraryCmd.AddCommand(itineraryAddCmd, itineraryListCmd, itineraryDeleteCmd)
	rootCmd.AddCommand(itineraryCmd)
}

func activityTypeList() string {
	names := make([]string, len(model.ActivityTypes))
	for i, a := range model.ActivityTypes {
		names[i] = string(a)
	}
	return strings.Join(names, "|")
}

func runItineraryAdd(_ *cobra.Command, _ []string) error {
	if flagItTitle == "" {
		return errors.New("--title is required")
	}
	if flagItDate == "" {
		return errors.New("--date is required")
	}
	if _, err := time.ParseInLocation(model.DateLayout, flagItDate, time.Local); err != nil {
		return fmt.Errorf("invalid date %q: want YYYY-MM-DD", flagItDate)
	}
	if flagItTime != "" {
		if _, err := time.Parse("15:04", flagItTime); err != nil {
			return fmt.Errorf("invalid time %q: want HH:MM", flagItTime)
		}
	}
	activity := model.ActivityType(strings.ToLower(flagItType))
	if !activity.Valid() {
		return fmt.Errorf("unknown activity type %q, want one of %s", flagItType, activityTypeList())
	}

	states, done, err := openState()
	if err != nil {
		return err
	}
	defer done()

	trip, err := requireActiveTrip(states.Snapshot())
	if err != nil {
		return err
	}

	item, err := states.AddItineraryItem(model.ItineraryItem{
		TripID:   trip.ID,
		Title:    flagItTitle,
		Date:     flagItDate,
		Time:     flagItTime,
		Location: flagItLocation,
		Type:     activity,
		Notes:    flagItNotes,
	})
	if err != nil {
		return err
	}
	fmt.Printf("  Added %q on %s.\n", item.Title, cli.FormatDate(item.Date))
	return nil
}

func runItineraryList(_ *cobra.Command, _ []string) error {
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

	items := snap.TripItinerary(trip.ID)
	if len(items) == 0 {
		fmt.Println("  Nothing planned yet. Add activities with `triptrack itinerary add`.")
		return nil
	}

	sort.SliceStable(items, func(a, b int) bool {
		if items[a].Date != items[b].Date {
			return items[a].Date < items[b].Date
		}
		return items[a].Time < items[b].Time
	})

	fmt.Println(cli.RenderTitle(fmt.Sprintf("Itinerary · %s", trip.Name)))
	lastDate := ""
	for _, it := range items {
		if it.Date != lastDate {
			fmt.Printf("\n  %s\n", cli.FormatDate(it.Date))
			lastDate = it.Date
		}
		at := it.Time
		if at == "" {
			at = "--:--"
		}
		line := fmt.Sprintf("    %s  %s [%s]", at, it.Title, it.Type)
		if it.Location != "" {
			line += " @ " + it.Location
		}
		fmt.Println(line)
		if it.Notes != "" {
			fmt.Printf("           %s\n", it.Notes)
		}
		fmt.Printf("           id %s\n", it.ID)
	}
	return nil
}

func runItineraryDelete(_ *cobra.Command, args []string) error {
	states, done, err := openState()
	if err != nil {
		return err
	}
	defer done()

	if err := states.DeleteItineraryItem(args[0]); err != nil {
		return err
	}
	fmt.Println("  Activity removed.")
	return nil
}
