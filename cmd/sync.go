package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"triptrack/internal/cli"
	"triptrack/internal/sheets"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push to or pull from the configured spreadsheet",
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push every trip and expense to the sheet",
	RunE:  runSyncPush,
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull sheet rows and merge them into local data",
	RunE:  runSyncPull,
}

func init() {
	syncCmd.AddCommand(syncPushCmd, syncPullCmd)
	rootCmd.AddCommand(syncCmd)
}

func runSyncPush(_ *cobra.Command, _ []string) error {
	states, done, err := openState()
	if err != nil {
		return err
	}
	defer done()

	engine := sheets.NewEngine(states)
	attempted, failed, err := engine.PushAll(context.Background())
	if errors.Is(err, sheets.ErrNotConfigured) {
		return errors.New("spreadsheet sync is not configured; set a sheet id and API key first")
	}
	if err != nil {
		return err
	}

	if failed > 0 {
		fmt.Println(cli.WarnStyle.Render(fmt.Sprintf("  Pushed %d of %d rows; %d failed.", attempted-failed, attempted, failed)))
		return nil
	}
	fmt.Printf("  Pushed %d rows.\n", attempted)
	return nil
}

func runSyncPull(_ *cobra.Command, _ []string) error {
	states, done, err := openState()
	if err != nil {
		return err
	}
	defer done()

	engine := sheets.NewEngine(states)
	if err := engine.PullMerge(context.Background()); err != nil {
		if errors.Is(err, sheets.ErrNotConfigured) {
			return errors.New("spreadsheet sync is not configured; set a sheet id and API key first")
		}
		return err
	}

	snap := states.Snapshot()
	fmt.Printf("  Merged sheet data: %d trips, %d expenses locally.\n", len(snap.Trips), len(snap.Expenses))
	return nil
}
