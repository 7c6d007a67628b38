package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"triptrack/internal/cli"
	"triptrack/internal/config"
	"triptrack/internal/countdown"
	"triptrack/internal/weather"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active trip's countdown and destination weather",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
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

	cd := countdown.Compute(time.Now(), trip)
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s · %s", trip.Name, trip.Destination)))
	fmt.Printf("  %s – %s · %s\n", cli.FormatDate(trip.StartDate), cli.FormatDate(trip.EndDate), cli.StatusLabel(cd.Status))
	if cd.Passed {
		fmt.Printf("\n  %s\n", cd.Label)
	} else {
		fmt.Printf("\n  %s  %s\n", cd.Label, cli.FormatCountdown(cd))
	}

	client := weather.NewClient(config.WeatherKey(snap.Settings))
	if client == nil {
		fmt.Printf("\n  Weather: -- (no API key configured)\n")
		return nil
	}
	cond, err := client.Current(context.Background(), trip.Destination)
	if err != nil {
		fmt.Printf("\n  Weather: -- (unavailable)\n")
		return nil
	}
	fmt.Printf("\n  Weather in %s: %.0f°C, %s\n", trip.Destination, cond.TempC, cond.Description)
	return nil
}
